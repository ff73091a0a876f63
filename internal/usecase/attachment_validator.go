package usecase

import (
	"path/filepath"
	"strings"
)

// Receipt proofs must be images; anything else (pdf, txt, ...) is refused
// before any upload is attempted.
var acceptedAttachmentExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// IsAcceptableAttachment reports whether fileName names an acceptable receipt
// image. Pure string inspection of the extension, case-insensitive; the file
// content is never read.
func IsAcceptableAttachment(fileName string) bool {
	_, ok := acceptedAttachmentExts[strings.ToLower(filepath.Ext(fileName))]
	return ok
}

func attachmentContentType(fileName string) string {
	return acceptedAttachmentExts[strings.ToLower(filepath.Ext(fileName))]
}

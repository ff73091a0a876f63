package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAttachment  = errors.New("invalid attachment extension")
	ErrInvalidExpenseType = errors.New("invalid expense type")
	ErrInvalidBillName    = errors.New("invalid bill name")
)

// defaultPct is applied when the form leaves the pct field blank or
// unparseable. The record must always carry a numeric pct.
const defaultPct = 20

// BillForm is the raw form input of a new bill submission. Everything is
// textual: the form widgets do the only numeric validation there is, and
// malformed text travels through unchanged wherever the record shape allows.
type BillForm struct {
	Type       string
	Name       string
	Amount     string
	Date       string
	Vat        string
	Pct        string
	Commentary string
	FileURL    string
	FileName   string
}

// Attachment is the stored receipt reference cached between file selection
// and submit.
type Attachment struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

// IBillSubmissionUseCase covers the new-bill path:
//   - UploadAttachment at file-selection time; a rejected file never reaches
//     storage.
//   - SubmitBill at submit time, with the cached attachment reference.

type IBillSubmissionUseCase interface {
	UploadAttachment(ctx context.Context, fileName string, content io.Reader) (Attachment, error)
	SubmitBill(ctx context.Context, form BillForm, user entities.User) ([]entities.Bill, error)
}

type BillSubmissionUseCase struct {
	repo    interfaces.IBillRepository
	storage interfaces.IAttachmentStorage
}

var _ IBillSubmissionUseCase = (*BillSubmissionUseCase)(nil)

func NewBillSubmissionUseCase(repo interfaces.IBillRepository, storage interfaces.IAttachmentStorage) *BillSubmissionUseCase {
	return &BillSubmissionUseCase{repo: repo, storage: storage}
}

// UploadAttachment validates the extension first and only then stores the
// receipt image. The returned URL/name are what the client carries to submit.
func (u *BillSubmissionUseCase) UploadAttachment(ctx context.Context, fileName string, content io.Reader) (Attachment, error) {
	fileName = strings.TrimSpace(fileName)
	if !IsAcceptableAttachment(fileName) {
		log.Printf("[newbill][usecase] attachment refused file_name=%q", fileName)
		return Attachment{}, ErrInvalidAttachment
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	url, err := u.storage.Put(ctx, key, attachmentContentType(fileName), content)
	if err != nil {
		log.Printf("[newbill][usecase] attachment upload failed file_name=%q err=%v", fileName, err)
		return Attachment{}, err
	}
	log.Printf("[newbill][usecase] attachment stored file_name=%q key=%s", fileName, key)
	return Attachment{FileURL: url, FileName: fileName}, nil
}

// SubmitBill normalizes the form into a pending bill carrying the user's
// email and persists it. A submission without an attachment is not an error
// here: the record goes out with empty fileUrl/fileName and it is up to the
// store side to refuse an incomplete bill if it chooses to.
//
// On success the updated collection is returned so the caller can move
// straight to the listing view. On failure the form is untouched and the
// employee may retry.
func (u *BillSubmissionUseCase) SubmitBill(ctx context.Context, form BillForm, user entities.User) ([]entities.Bill, error) {
	b, err := normalizeBill(form, user)
	if err != nil {
		log.Printf("[newbill][usecase] submit rejected err=%v", err)
		return nil, err
	}

	bills, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[newbill][usecase] create failed email=%s err=%v", user.Email, err)
		return nil, err
	}
	log.Printf("[newbill][usecase] bill created email=%s name=%q date=%s", user.Email, b.Name, b.Date)
	return bills, nil
}

func normalizeBill(form BillForm, user entities.User) (entities.Bill, error) {
	expType := strings.TrimSpace(form.Type)
	if !isExpenseType(expType) {
		return entities.Bill{}, ErrInvalidExpenseType
	}
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return entities.Bill{}, ErrInvalidBillName
	}

	// No numeric validation beyond what the widgets enforce: an unparseable
	// amount becomes 0 rather than blocking the submission.
	amount, _ := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)

	return entities.Bill{
		Type:       expType,
		Name:       name,
		Amount:     amount,
		Date:       normalizeDate(form.Date),
		Vat:        strings.TrimSpace(form.Vat),
		Pct:        normalizePct(form.Pct),
		Commentary: strings.TrimSpace(form.Commentary),
		FileURL:    strings.TrimSpace(form.FileURL),
		FileName:   strings.TrimSpace(form.FileName),
		Status:     entities.BillStatusPending,
		Email:      user.Email,
	}, nil
}

func isExpenseType(t string) bool {
	for _, e := range entities.ExpenseTypes {
		if e == t {
			return true
		}
	}
	return false
}

// normalizeDate reformats parseable dates to zero-padded YYYY-MM-DD, the only
// representation under which the listing's string ordering is chronological.
// Unparseable input is passed through for the store to judge.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02", "2006-1-2"} {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return raw
}

func normalizePct(raw string) int {
	pct, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultPct
	}
	return pct
}

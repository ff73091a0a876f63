package request

import (
	"strings"

	"billed_service/internal/usecase"
)

// NewBillRequest mirrors the submission form field-for-field. Every numeric
// field stays textual on purpose: the input widgets are the only numeric
// validation there is, and the use case normalizes what it can (pct defaults
// to 20 when blank) while passing the rest through.
type NewBillRequest struct {
	Type       string `json:"type" form:"type"`
	Name       string `json:"name" form:"name"`
	Amount     string `json:"amount" form:"amount"`
	Date       string `json:"date" form:"date"`
	Vat        string `json:"vat" form:"vat"`
	Pct        string `json:"pct" form:"pct"`
	Commentary string `json:"commentary" form:"commentary"`
	FileURL    string `json:"fileUrl" form:"fileUrl"`
	FileName   string `json:"fileName" form:"fileName"`
}

func (r NewBillRequest) ToForm() usecase.BillForm {
	return usecase.BillForm{
		Type:       r.Type,
		Name:       r.Name,
		Amount:     r.Amount,
		Date:       r.Date,
		Vat:        r.Vat,
		Pct:        r.Pct,
		Commentary: r.Commentary,
		FileURL:    r.FileURL,
		FileName:   r.FileName,
	}
}

// ReviewRequest is the optional admin annotation sent with accept/refuse.
type ReviewRequest struct {
	CommentAdmin string `json:"commentAdmin"`
}

func (r ReviewRequest) ResolveCommentAdmin() string {
	return strings.TrimSpace(r.CommentAdmin)
}

package entities

// BillStatus represents the review lifecycle of an expense bill.
//
// Domain notes:
//   - Employees only ever create bills in the pending status.
//   - accepted/refused are set by the admin review path, never by the
//     submission path; employees observe them on re-fetch.

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

// ExpenseTypes is the fixed category set offered by the submission form.
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

// Bill is one employee expense bill ("note de frais") persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle:
//   - draft: no ID and no FileURL; built from form input at submission time.
//   - persisted: ID assigned by the store, FileURL set by the attachment
//     upload. Never mutated by the employee after persistence; admin review
//     updates Status/CommentAdmin server-side.
//
// Date is kept as a zero-padded YYYY-MM-DD string so that plain string
// comparison orders bills chronologically. Vat stays textual: the form does
// no numeric validation beyond the input widget, and whatever the employee
// typed is passed through to the store unchanged.

type Bill struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Name         string     `json:"name"`
	Amount       float64    `json:"amount"`
	Date         string     `json:"date"`
	Vat          string     `json:"vat"`
	Pct          int        `json:"pct"`
	Commentary   string     `json:"commentary"`
	FileURL      string     `json:"fileUrl"`
	FileName     string     `json:"fileName"`
	Status       BillStatus `json:"status"`
	CommentAdmin string     `json:"commentAdmin,omitempty"`
	Email        string     `json:"email"`
}

// Persisted reports whether the bill has been accepted by the remote store.
func (b Bill) Persisted() bool {
	return b.ID != ""
}

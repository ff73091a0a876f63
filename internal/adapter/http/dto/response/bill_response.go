package response

import (
	"fmt"
	"time"

	"billed_service/internal/domain/entities"
)

// frMonths are the abbreviated French month names used by the original views
// ("4 Avr. 21").
var frMonths = [12]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai", "Juin",
	"Juil.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

var statusLabels = map[entities.BillStatus]string{
	entities.BillStatusPending:  "En attente",
	entities.BillStatusAccepted: "Accepté",
	entities.BillStatusRefused:  "Refusé",
}

// BillRow is one row of the bills view: the raw date keeps the sortable
// form, FormattedDate is what gets displayed, FileURL feeds the inspect
// overlay.
type BillRow struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Name          string  `json:"name"`
	Date          string  `json:"date"`
	FormattedDate string  `json:"formattedDate"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"statusLabel"`
	CommentAdmin  string  `json:"commentAdmin,omitempty"`
	FileURL       string  `json:"fileUrl"`
	FileName      string  `json:"fileName"`
}

// BillsView is the whole listing payload. On a store failure Error carries
// the message text verbatim and Bills stays empty.
type BillsView struct {
	Bills []BillRow `json:"bills"`
	Error string    `json:"error,omitempty"`
}

// AttachmentResponse echoes the stored receipt reference the client caches
// until submit.
type AttachmentResponse struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

func FromBill(b entities.Bill) BillRow {
	return BillRow{
		ID:            b.ID,
		Type:          b.Type,
		Name:          b.Name,
		Date:          b.Date,
		FormattedDate: FormatDateFR(b.Date),
		Amount:        b.Amount,
		Status:        string(b.Status),
		StatusLabel:   statusLabels[b.Status],
		CommentAdmin:  b.CommentAdmin,
		FileURL:       b.FileURL,
		FileName:      b.FileName,
	}
}

func FromBills(bills []entities.Bill) []BillRow {
	rows := make([]BillRow, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, FromBill(b))
	}
	return rows
}

// FormatDateFR renders a YYYY-MM-DD date the way the views display it,
// e.g. "2021-04-04" -> "4 Avr. 21". Unparseable dates come back untouched.
func FormatDateFR(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s %02d", d.Day(), frMonths[d.Month()-1], d.Year()%100)
}

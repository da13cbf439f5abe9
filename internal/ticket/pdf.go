package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/timezone"
)

// The core PDF fonts are cp1252; arrows and the rupee sign are not in it.
var pdfSafe = strings.NewReplacer("→", "->", "₹", "Rs. ")

// BuildETicketPDF renders a confirmed booking and returns the document with
// a download file name.
func BuildETicketPDF(conf models.BookingConfirmation) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("VoloBus E-Ticket "+conf.ReferenceCode, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VoloBus E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID : %s", conf.ReferenceCode),
		fmt.Sprintf("Route      : %s", conf.Route),
		fmt.Sprintf("Date       : %s", travelDate(conf.Date)),
		fmt.Sprintf("Departure  : %s", timezone.FormatClock(conf.DepartureTime)),
		fmt.Sprintf("Bus        : %s (%s)", conf.OperatorName, conf.Category),
		fmt.Sprintf("Seats      : %s", strings.Join(conf.Seats, ", ")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, pdfSafe.Replace(s))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range conf.Passengers {
		pdf.Cell(0, 6, pdfSafe.Replace(fmt.Sprintf("%d) %s, %s, %s - seat %s", i+1, p.Name, p.Age, p.Gender, p.SeatNumber)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, pdfSafe.Replace("Total: "+conf.TotalFormatted))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry a valid photo ID and show this ticket while boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), fmt.Sprintf("VOLOBUS_%s.pdf", conf.ReferenceCode), nil
}

// travelDate renders a YYYY-MM-DD search date as "24 Oct, 2024". Anything
// else is printed as given, or "-" when blank.
func travelDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	d, err := timezone.ParseCalendarDate(s)
	if err != nil {
		return s
	}
	return timezone.FormatDisplayDate(d)
}

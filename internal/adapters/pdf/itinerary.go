package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tripplanner/internal/domain"
)

// Itinerary is everything rendered into the downloadable trip plan.
type Itinerary struct {
	City        string
	Days        int
	Guests      int
	Budget      string
	GeneratedAt time.Time
	Result      domain.TripResult
}

// Render lays the itinerary out on A4 and returns the PDF bytes.
func Render(it Itinerary) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("") // utf-8 names to cp1252

	// header bar
	doc.SetFillColor(18, 52, 86)
	doc.Rect(0, 0, 210, 28, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(20, 8)
	doc.CellFormat(170, 10, tr("Trip to "+it.City), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(20, 18)
	doc.CellFormat(170, 6, fmt.Sprintf("%d days, %d guests, budget %s", it.Days, it.Guests, tr(it.Budget)), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.SetY(35)

	section := func(title string) {
		doc.SetFillColor(18, 52, 86)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.Ln(2)
	}
	table := func(widths []float64, head []string, rows [][]string) {
		doc.SetFont("Helvetica", "B", 9)
		for i, h := range head {
			doc.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Helvetica", "", 9)
		for _, r := range rows {
			for i, c := range r {
				doc.CellFormat(widths[i], 6, tr(c), "", 0, "L", false, 0, "")
			}
			doc.Ln(-1)
		}
		doc.Ln(4)
	}

	res := it.Result

	section("Weather")
	var rows [][]string
	for _, w := range res.Weather {
		rows = append(rows, []string{w.DateTime, fmt.Sprintf("%.1f C", w.Temperature), w.Description, fmt.Sprintf("%.0f%%", w.Humidity)})
	}
	table([]float64{50, 30, 60, 30}, []string{"Time", "Temp", "Conditions", "Humidity"}, rows)

	section("Hotels")
	rows = rows[:0]
	for _, h := range res.Hotels {
		rows = append(rows, []string{h.Name, fmt.Sprintf("%.1f", h.Rating), fmt.Sprintf("INR %.0f", h.PricePerNight), fmt.Sprintf("INR %.0f", h.TotalCost)})
	}
	table([]float64{80, 20, 35, 35}, []string{"Hotel", "Rating", "Per night", "Total"}, rows)

	section("Restaurants")
	rows = rows[:0]
	for _, r := range res.Restaurants {
		rows = append(rows, []string{r.Name, r.Cuisine, r.Rating.String(), r.Price})
	}
	table([]float64{70, 40, 25, 35}, []string{"Restaurant", "Cuisine", "Rating", "Price"}, rows)

	if len(res.Attractions) > 0 {
		section("Day plan")
		rows = rows[:0]
		for _, a := range res.Attractions {
			rows = append(rows, []string{fmt.Sprintf("Day %d", a.Day), a.Name, fmt.Sprintf("%.2f", a.Rating), fmt.Sprintf("INR %.0f", a.EntranceFee)})
		}
		table([]float64{25, 85, 25, 35}, []string{"Day", "Attraction", "Reviews", "Entry"}, rows)
	}

	doc.SetY(-22)
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(150, 150, 150)
	doc.CellFormat(0, 8, "Generated "+it.GeneratedAt.Format("02 Jan 2006, 15:04 MST")+" - prices are estimates", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

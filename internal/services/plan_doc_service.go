package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"travelgateway/internal/domain/models"
	"travelgateway/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// PlanDocService renders the stored travel plan as a PDF.
type PlanDocService struct {
	Travel    TravelService
	RequestID string
}

func (s PlanDocService) GeneratePlanPDF() ([]byte, string, error) {
	rec, err := s.Travel.GetStoredPlan()
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "plan_pdf", "city="+rec.City)
	return buildPlanPDF(rec)
}

func buildPlanPDF(rec models.TravelPlanRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Travel Plan - "+rec.City), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("TRAVEL PLAN: "+strings.ToUpper(rec.City)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("From       : %s", safe(rec.StartDate, "-")),
		fmt.Sprintf("To         : %s", safe(rec.EndDate, "-")),
		fmt.Sprintf("Travellers : %s", safe(scalarText(rec.NumTravelers), "-")),
		fmt.Sprintf("Activities : %s", safe(strings.Join(rec.SelectedActivities, ", "), "-")),
	}
	for _, line := range header {
		pdf.MultiCell(0, 7, tr(line), "", "", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Itinerary")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range planLines(rec.TravelPlan, 0) {
		pdf.MultiCell(0, 6, tr(line), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("travel-plan-%s.pdf", safeFilenamePart(rec.City))
	return buf.Bytes(), filename, nil
}

// planLines flattens an arbitrary decoded JSON plan into indented text lines.
func planLines(v any, depth int) []string {
	indent := strings.Repeat("    ", depth)
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			if text, ok := scalar(t[k]); ok {
				out = append(out, fmt.Sprintf("%s%s: %s", indent, k, text))
				continue
			}
			out = append(out, indent+k+":")
			out = append(out, planLines(t[k], depth+1)...)
		}
		return out
	case []any:
		var out []string
		for _, item := range t {
			if text, ok := scalar(item); ok {
				out = append(out, indent+"- "+text)
				continue
			}
			out = append(out, planLines(item, depth)...)
			out = append(out, "")
		}
		return out
	case string:
		var out []string
		for _, l := range strings.Split(t, "\n") {
			out = append(out, indent+l)
		}
		return out
	default:
		text, _ := scalar(v)
		return []string{indent + text}
	}
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case map[string]any, []any:
		return "", false
	case nil:
		return "-", true
	case string:
		return t, true
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), true
		}
		return string(b), true
	}
}

func scalarText(v any) string {
	text, ok := scalar(v)
	if !ok {
		b, _ := json.Marshal(v)
		return string(b)
	}
	return text
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "plan"
	}
	return b.String()
}

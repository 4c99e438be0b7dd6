package services

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"travelgateway/internal/domain"
)

func TestPlanDocServiceGenerate(t *testing.T) {
	gen := &fakeGenerator{plan: map[string]any{
		"days": []any{
			map[string]any{"day": 1.0, "items": []any{"Louvre", "Café de Flore"}},
		},
		"tips": []any{"Buy a museum pass"},
	}}
	travel := newService(gen)
	docs := PlanDocService{Travel: travel, RequestID: "test"}

	if _, _, err := docs.GeneratePlanPDF(); !domain.IsNotFound(err) {
		t.Fatalf("expected not found before generation, got %v", err)
	}

	in := validPlanInput()
	in.City = "São Paulo"
	if err := travel.GenerateAndStorePlan(context.Background(), in); err != nil {
		t.Fatal(err)
	}

	pdf, filename, err := docs.GeneratePlanPDF()
	if err != nil {
		t.Fatalf("GeneratePlanPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "travel-plan-so-paulo.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestPlanLines(t *testing.T) {
	plan := map[string]any{
		"tips": []any{"pack light"},
		"days": []any{map[string]any{"day": 1.0, "title": "Arrival"}},
	}
	got := planLines(plan, 0)
	want := []string{
		"days:",
		"    day: 1",
		"    title: Arrival",
		"",
		"tips:",
		"    - pack light",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("planLines = %#v\nwant %#v", got, want)
	}

	if got := planLines("Day 1\nDay 2", 0); !reflect.DeepEqual(got, []string{"Day 1", "Day 2"}) {
		t.Fatalf("text plan = %#v", got)
	}
}

package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/example/algorecall/pkg/models"
	"github.com/xuri/excelize/v2"
)

func TestExportRoundTrip(t *testing.T) {
	problems := []models.Problem{
		{
			Title:          "Two Sum",
			URL:            "https://leetcode.com/problems/two-sum/",
			Platform:       "leetcode",
			Tags:           []string{"array", "hash table"},
			Stage:          2,
			NextReviewDate: time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC),
			LastReviewed:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		},
	}
	concepts := []models.Concept{{Tag: "array", Score: 35}}

	data, err := Export(problems, concepts)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported workbook should open: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("Problems", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if title != "Two Sum" {
		t.Errorf("A2 = %q, want the problem title", title)
	}

	tags, _ := f.GetCellValue("Problems", "D2")
	if tags != "array, hash table" {
		t.Errorf("D2 = %q, want joined tags", tags)
	}

	next, _ := f.GetCellValue("Problems", "F2")
	if next != "2026-03-17" {
		t.Errorf("F2 = %q, want the next review date", next)
	}

	tag, _ := f.GetCellValue("Concepts", "A2")
	score, _ := f.GetCellValue("Concepts", "B2")
	if tag != "array" || score != "35" {
		t.Errorf("concept row = (%q, %q)", tag, score)
	}
}

func TestExportEmptySet(t *testing.T) {
	data, err := Export(nil, nil)
	if err != nil {
		t.Fatalf("Export of an empty set: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("empty workbook should still open: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Problems", "A1")
	if header != "Title" {
		t.Errorf("A1 = %q, want the header row", header)
	}
}

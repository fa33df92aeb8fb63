package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/example/algorecall/pkg/models"
	"github.com/xuri/excelize/v2"
)

const (
	problemSheet = "Problems"
	conceptSheet = "Concepts"
	dateFormat   = "2006-01-02"
)

// Export builds an xlsx workbook with the tracked problems and concept
// scores and returns its bytes, ready to be sent as a document.
func Export(problems []models.Problem, concepts []models.Concept) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", problemSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %v", err)
	}

	headers := []interface{}{"Title", "URL", "Platform", "Tags", "Stage", "Next Review", "Last Reviewed"}
	if err := writeRow(f, problemSheet, 1, headers); err != nil {
		return nil, err
	}
	for i, p := range problems {
		row := []interface{}{
			p.Title,
			p.URL,
			p.Platform,
			strings.Join(p.Tags, ", "),
			p.Stage,
			p.NextReviewDate.Format(dateFormat),
			p.LastReviewed.Format(dateFormat),
		}
		if err := writeRow(f, problemSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(conceptSheet); err != nil {
		return nil, fmt.Errorf("failed to create concepts sheet: %v", err)
	}
	if err := writeRow(f, conceptSheet, 1, []interface{}{"Tag", "Score"}); err != nil {
		return nil, err
	}
	for i, c := range concepts {
		if err := writeRow(f, conceptSheet, i+2, []interface{}{c.Tag, c.Score}); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %v", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %v", cell, err)
		}
	}
	return nil
}

package parsers

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
)

// XLSXParser parses Excel lineup sheets. Only the first sheet is read.
type XLSXParser struct{}

func (p *XLSXParser) Parse(content []byte) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, nil, ErrNoRows
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return parseRows(rows)
}

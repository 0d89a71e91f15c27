package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
)

// CSVParser parses comma-separated lineup sheets.
type CSVParser struct{}

func (p *CSVParser) Parse(content []byte) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return parseRows(rows)
}

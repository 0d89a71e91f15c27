// Package parsers turns uploaded lineup sheets into slots and substitutes.
// Sheets are three columns: batting order (or "SUB"), player name, position
// code. A header row is skipped when detected.
package parsers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported lineup sheet format")
	ErrNoRows            = errors.New("lineup sheet has no rows")
)

// Parser parses one sheet format.
type Parser interface {
	Parse(content []byte) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error)
}

// ForFilename picks a parser by file extension.
func ForFilename(filename string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return &CSVParser{}, nil
	case ".xlsx":
		return &XLSXParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

const subMarker = "SUB"

// parseRows converts raw rows into slots and substitutes, shared by all
// formats.
func parseRows(rows [][]string) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error) {
	var starters []lineuptypes.LineupSlot
	var subs []lineuptypes.Substitute

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		orderField := strings.TrimSpace(row[0])
		name := ""
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		position := ""
		if len(row) > 2 {
			position = strings.ToUpper(strings.TrimSpace(row[2]))
		}

		if orderField == "" && name == "" {
			continue
		}
		if i == 0 && isHeader(orderField) {
			continue
		}

		if strings.EqualFold(orderField, subMarker) {
			subs = append(subs, lineuptypes.Substitute{PlayerName: name})
			continue
		}

		order, err := strconv.Atoi(orderField)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: invalid batting order %q", i+1, orderField)
		}
		if order < lineuptypes.MinOrder || order > lineuptypes.DHOrder {
			return nil, nil, fmt.Errorf("row %d: batting order %d out of range", i+1, order)
		}
		pos := lineuptypes.FieldingPosition(position)
		if !pos.IsValid() {
			return nil, nil, fmt.Errorf("row %d: invalid position %q", i+1, position)
		}
		starters = append(starters, lineuptypes.LineupSlot{
			Order:      order,
			PlayerName: name,
			Position:   pos,
		})
	}

	if len(starters) == 0 && len(subs) == 0 {
		return nil, nil, ErrNoRows
	}
	return starters, subs, nil
}

func isHeader(first string) bool {
	_, err := strconv.Atoi(first)
	return err != nil && !strings.EqualFold(first, subMarker)
}

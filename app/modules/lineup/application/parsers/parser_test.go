package parsers

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
)

func TestForFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
		wantErr  bool
	}{
		{filename: "lineup.csv", want: &CSVParser{}},
		{filename: "Lineup.CSV", want: &CSVParser{}},
		{filename: "lineup.xlsx", want: &XLSXParser{}},
		{filename: "lineup.pdf", wantErr: true},
		{filename: "lineup", wantErr: true},
	}
	for _, tt := range tests {
		parser, err := ForFilename(tt.filename)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ForFilename(%q) error = %v, want ErrUnsupportedFormat", tt.filename, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFilename(%q) error: %v", tt.filename, err)
			continue
		}
		if fmt.Sprintf("%T", parser) != fmt.Sprintf("%T", tt.want) {
			t.Errorf("ForFilename(%q) = %T, want %T", tt.filename, parser, tt.want)
		}
	}
}

func TestCSVParser(t *testing.T) {
	sheet := "Order,Player,Position\n1,Ava,ss\n2,Ben,CF\nSUB,Jo,\n"

	starters, subs, err := (&CSVParser{}).Parse([]byte(sheet))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(starters) != 2 {
		t.Fatalf("got %d starters, want 2", len(starters))
	}
	if starters[0].Order != 1 || starters[0].PlayerName != "Ava" {
		t.Errorf("starter 1 = %+v", starters[0])
	}
	if starters[0].Position != lineuptypes.PositionShortstop {
		t.Errorf("position codes should be upcased, got %q", starters[0].Position)
	}
	if len(subs) != 1 || subs[0].PlayerName != "Jo" {
		t.Errorf("subs = %+v, want one entry Jo", subs)
	}
}

func TestCSVParser_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
	}{
		{name: "order not a number past header", sheet: "1,Ava,SS\nx,Ben,CF\n"},
		{name: "order out of range", sheet: "11,Ava,SS\n"},
		{name: "unknown position", sheet: "1,Ava,QB\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := (&CSVParser{}).Parse([]byte(tt.sheet)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestCSVParser_EmptySheet(t *testing.T) {
	_, _, err := (&CSVParser{}).Parse([]byte("Order,Player,Position\n\n"))
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("error = %v, want ErrNoRows", err)
	}
}

func TestXLSXParser(t *testing.T) {
	workbook := excelize.NewFile()
	rows := [][]interface{}{
		{"Order", "Player", "Position"},
		{1, "Ava", "SS"},
		{2, "Ben", "CF"},
		{"SUB", "Jo", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := workbook.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	starters, subs, err := (&XLSXParser{}).Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(starters) != 2 || len(subs) != 1 {
		t.Fatalf("got %d starters and %d subs, want 2 and 1", len(starters), len(subs))
	}
	if starters[1].PlayerName != "Ben" || starters[1].Position != lineuptypes.PositionCenterField {
		t.Errorf("starter 2 = %+v", starters[1])
	}
}

func TestXLSXParser_NotAWorkbook(t *testing.T) {
	if _, _, err := (&XLSXParser{}).Parse([]byte("not a zip")); err == nil {
		t.Error("expected error for malformed workbook")
	}
}

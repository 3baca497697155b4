package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.PrintArea
		wantErr  bool
	}{
		{"A1:D10", models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"$B$2:$C$3", models.PrintArea{R1: 2, C1: 2, R2: 3, C2: 3}, false},
		{"D10:A1", models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"A1", models.PrintArea{}, true},
		{"A1:ZZZZ1", models.PrintArea{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	sheet, areas := parsePrintAreaReference("'Class A'!$A$1:$C$4,'Class A'!$E$1:$F$2")
	if sheet != "Class A" {
		t.Errorf("Expected sheet %q, got %q", "Class A", sheet)
	}
	if len(areas) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(areas))
	}
	if areas[1] != (models.PrintArea{R1: 1, C1: 5, R2: 2, C2: 6}) {
		t.Errorf("Unexpected second area %+v", areas[1])
	}
}

func TestWorkbookPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "x")
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$4",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "area.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	area, ok := wb.PrintArea("Sheet1")
	if !ok {
		t.Fatal("Expected a print area for Sheet1")
	}
	if *area != (models.PrintArea{R1: 1, C1: 1, R2: 4, C2: 3}) {
		t.Errorf("Unexpected print area %+v", *area)
	}
	if _, ok := wb.PrintArea("Sheet2"); ok {
		t.Error("Expected no print area for Sheet2")
	}
}

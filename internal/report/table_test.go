package report

import (
	"bytes"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	table := NewTable(Column{Header: "Word"}, Column{Header: "Primary"}, Column{Header: "Secondary"})
	table.Row("thumb", "0M", "TM")
	table.Row("Mazurkiewicz", "MSRKTS", "MTSRKFX")

	want := []string{
		"Word          Primary  Secondary",
		"thumb         0M       TM",
		"Mazurkiewicz  MSRKTS   MTSRKFX",
	}
	lines := table.Lines()
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestTableRightAlign(t *testing.T) {
	table := NewTable(Column{Header: "Pos", Align: AlignRight}, Column{Header: "Word"}, Column{Header: "N", Align: AlignRight})
	table.Row("0", "日本", "1")
	table.Row("12", "ab", "10")

	want := []string{
		"Pos  Word   N",
		"  0  日本   1",
		" 12  ab    10",
	}
	for i, line := range table.Lines() {
		if line != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestTableStyledCells(t *testing.T) {
	styled := "\x1b[1myes\x1b[0m"
	table := NewTable(Column{}, Column{})
	table.Row("Rhyme", styled)
	table.Row("Alliterate", "no")

	lines := table.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected no header line for unnamed columns, got %q", lines)
	}
	if lines[0] != "Rhyme       "+styled {
		t.Fatalf("unexpected styled row: %q", lines[0])
	}
	if lines[1] != "Alliterate  no" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestTableRowCells(t *testing.T) {
	table := NewTable(Column{Header: "A"}, Column{Header: "B"})
	table.Row("x")
	table.Row("y", "z", "dropped")
	lines := table.Lines()
	if lines[1] != "x  " || lines[2] != "y  z" {
		t.Fatalf("unexpected rows: %q", lines)
	}
}

func TestTableEmpty(t *testing.T) {
	if lines := NewTable().Lines(); lines != nil {
		t.Fatalf("expected nil for a table without columns, got %v", lines)
	}
}

func TestTableWriteTo(t *testing.T) {
	table := NewTable(Column{Header: "A"})
	table.Row("b")
	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if buf.String() != "A\nb\n" || n != 4 {
		t.Fatalf("unexpected output: %q (%d bytes)", buf.String(), n)
	}
}

func TestVerdictPlain(t *testing.T) {
	if Verdict(true, false) != "yes" || Verdict(false, false) != "no" {
		t.Fatalf("unexpected plain verdicts")
	}
}

func TestShouldUseColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("expected NO_COLOR to disable color")
	}
	t.Setenv("NO_COLOR", "")
	if ShouldUseColor(&bytes.Buffer{}, false) {
		t.Fatalf("expected non-file writers to be uncolored")
	}
	if !ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("expected force to enable color")
	}
}

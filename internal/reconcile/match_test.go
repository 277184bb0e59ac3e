package reconcile

import (
	"testing"

	"github.com/google/uuid"
)

func sheetWithRows(filename string, header bool, names ...string) *ParsedSpreadsheet {
	rows := make([]RowValues, 0, len(names))
	for _, n := range names {
		rows = append(rows, RowValues{n, "x", "x"})
	}
	return &ParsedSpreadsheet{
		SourceID:  uuid.New(),
		Filename:  filename,
		Rows:      rows,
		HeaderRow: header,
	}
}

func TestRowMatchesTiers(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		nameField string
		want      bool
	}{
		// Tier 1: exact normalized equality.
		{"exact", "Jane Doe", "Jane Doe", true},
		{"exact differing case and punctuation", "JANE-DOE", "jane doe", true},

		// Tier 2: containment with length tolerance.
		{"containment within tolerance", "Priya Shah", "Priya S", true},
		{"containment at tolerance boundary", "abcdef", "abc", true},
		{"containment beyond tolerance", "Raj", "Rajeshkumar Iyer", false},

		// Tier 3: first-word exact.
		{"first word exact", "John Kumar", "John Patel", true},
		{"first word exact case folded", "JOHN Kumar", "john Patel", true},

		// Tier 4: first-word prefix.
		{"first word prefix", "John Doe", "Johnathan Doe", true},
		{"first word prefix too short", "Jon Doe", "Jonathan Smith", false},
		{"first word no prefix", "Maria Lopez", "Marcus Brown", false},

		// No rule fires.
		{"no match", "Alice Brown", "Bob Carter", false},
		{"empty name field", "Amy Tan", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowMatches(NormalizeName(tt.candidate), firstToken(tt.candidate), tt.nameField)
			if got != tt.want {
				t.Errorf("rowMatches(%q, %q) = %v, want %v", tt.candidate, tt.nameField, got, tt.want)
			}
		})
	}
}

func TestFindMatchFirstMatchWins(t *testing.T) {
	// Both rows satisfy a rule for "John Doe"; the scan must commit to the
	// earlier row even though the later one is the stronger match.
	sheet := sheetWithRows("a.csv", false, "Johnathan Smith", "John Doe")

	m, ok := FindMatch("John Doe", []*ParsedSpreadsheet{sheet})
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Row[0] != "Johnathan Smith" {
		t.Errorf("matched %q, want the first qualifying row %q", m.Row[0], "Johnathan Smith")
	}
}

func TestFindMatchUploadOrderAcrossSheets(t *testing.T) {
	first := sheetWithRows("first.csv", false, "Priya S")
	second := sheetWithRows("second.csv", false, "Priya Shah")

	m, ok := FindMatch("Priya Shah", []*ParsedSpreadsheet{first, second})
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Filename != "first.csv" {
		t.Errorf("matched in %q, want the earlier-uploaded %q", m.Filename, "first.csv")
	}
	if m.SheetID != first.SourceID {
		t.Error("match provenance must carry the matched sheet's id")
	}
}

func TestFindMatchSkipsHeaderRow(t *testing.T) {
	// "Full Name" would collide with a candidate actually named Full Name;
	// more importantly the header is not candidate data.
	sheet := sheetWithRows("a.csv", true, "Full Name", "Jane Doe")

	m, ok := FindMatch("Jane Doe", []*ParsedSpreadsheet{sheet})
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Row[0] != "Jane Doe" {
		t.Errorf("matched %q, want %q", m.Row[0], "Jane Doe")
	}

	if _, ok := FindMatch("Full Name", []*ParsedSpreadsheet{sheetWithRows("b.csv", true, "Full Name")}); ok {
		t.Error("header row must be skipped during matching")
	}
}

func TestFindMatchNoMatch(t *testing.T) {
	sheet := sheetWithRows("a.csv", false, "Bob Carter", "Carol Danvers")

	if _, ok := FindMatch("Alice Brown", []*ParsedSpreadsheet{sheet}); ok {
		t.Error("expected no match")
	}
}

func TestFindMatchEmptyCandidateName(t *testing.T) {
	sheet := sheetWithRows("a.csv", false, "Bob Carter")

	if _, ok := FindMatch("", []*ParsedSpreadsheet{sheet}); ok {
		t.Error("empty extracted name must never match")
	}
}

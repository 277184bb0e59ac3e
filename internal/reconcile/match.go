package reconcile

import (
	"strings"

	"github.com/google/uuid"
)

// Match is the row a candidate was reconciled to, with its provenance.
type Match struct {
	Row      RowValues
	SheetID  uuid.UUID
	Filename string
}

// containmentTolerance is the maximum normalized length difference allowed
// by the containment rule.
const containmentTolerance = 3

// FindMatch scans parsed spreadsheets in upload order, rows in order
// (skipping a detected header row), and commits to the first row satisfying
// any rule in tier order: exact normalized equality, containment with length
// tolerance, first-word exact, first-word prefix. This is deliberately
// first-match-wins over an ordered scan, not a best-score search.
func FindMatch(candidateName string, sheets []*ParsedSpreadsheet) (Match, bool) {
	if strings.TrimSpace(candidateName) == "" {
		return Match{}, false
	}
	candNorm := NormalizeName(candidateName)
	candFirst := firstToken(candidateName)

	for _, sheet := range sheets {
		for i, row := range sheet.Rows {
			if i == 0 && sheet.HeaderRow {
				continue
			}
			if len(row) == 0 {
				continue
			}
			if rowMatches(candNorm, candFirst, row[0]) {
				return Match{Row: row, SheetID: sheet.SourceID, Filename: sheet.Filename}, true
			}
		}
	}
	return Match{}, false
}

// rowMatches applies the four rules in strict order against the row's full
// name cell, stopping at the first that fires.
func rowMatches(candNorm, candFirst, nameField string) bool {
	fieldNorm := NormalizeName(nameField)

	// Tier 1: exact.
	if candNorm != "" && candNorm == fieldNorm {
		return true
	}

	// Tier 2: containment with tolerance. Both sides must be non-empty,
	// otherwise the empty string would trivially contain into short fields.
	if candNorm != "" && fieldNorm != "" {
		diff := len(candNorm) - len(fieldNorm)
		if diff < 0 {
			diff = -diff
		}
		if diff <= containmentTolerance &&
			(strings.Contains(candNorm, fieldNorm) || strings.Contains(fieldNorm, candNorm)) {
			return true
		}
	}

	fieldFirst := firstToken(nameField)
	if candFirst == "" || fieldFirst == "" {
		return false
	}

	// Tier 3: first-word exact.
	if candFirst == fieldFirst {
		return true
	}

	// Tier 4: first-word prefix, both tokens at least 4 chars.
	if len(candFirst) >= 4 && len(fieldFirst) >= 4 &&
		(strings.HasPrefix(candFirst, fieldFirst) || strings.HasPrefix(fieldFirst, candFirst)) {
		return true
	}

	return false
}

// firstToken returns the lowercased first whitespace-delimited token.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

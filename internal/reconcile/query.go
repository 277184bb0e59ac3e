package reconcile

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StatusFilter narrows a record view by match state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusMatched   StatusFilter = "matched"
	StatusUnmatched StatusFilter = "unmatched"
)

// SortKey selects the ordering of a record view.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByUploadDate   SortKey = "uploadDate"
	SortByMatchedFirst SortKey = "matchedFirst"
)

// Query returns a filtered, sorted view over a record list. The input slice
// is never mutated. Search is a case-insensitive substring match against the
// candidate-facing text fields; a record is included if any of them contains
// the term.
func Query(records []CandidateRecord, searchTerm string, status StatusFilter, key SortKey) []CandidateRecord {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]CandidateRecord, 0, len(records))
	for _, r := range records {
		switch status {
		case StatusMatched:
			if !r.Matched {
				continue
			}
		case StatusUnmatched:
			if r.Matched {
				continue
			}
		}
		if term != "" && !recordContains(r, term) {
			continue
		}
		out = append(out, r)
	}

	switch key {
	case SortByName:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByUploadDate:
		// Most recent upload first.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UploadedAt.After(out[j].UploadedAt)
		})
	case SortByMatchedFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Matched && !out[j].Matched
		})
	}
	return out
}

func recordContains(r CandidateRecord, lowerTerm string) bool {
	for _, f := range []string{
		r.Name, r.Email, r.Mobile, r.Sector, r.Category,
		r.City, r.Designation, r.Department, r.CurrentCTC, r.Languages,
	} {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}

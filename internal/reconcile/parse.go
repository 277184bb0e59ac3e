package reconcile

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// csvCellRe tokenizes a comma-delimited line: a cell is either a
// double-quoted run or a maximal run of non-comma characters.
var csvCellRe = regexp.MustCompile(`"[^"]*"|[^,]+`)

// ParseSpreadsheet parses raw spreadsheet bytes into positional rows. The
// format is inferred from the filename extension: .csv takes the delimited
// text path, .xlsx/.xls the workbook path. Any undecodable file is a per-file
// parse error; callers skip the file and continue with the rest of the batch.
func ParseSpreadsheet(sourceID uuid.UUID, filename string, data []byte) (*ParsedSpreadsheet, error) {
	var (
		rows []RowValues
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = parseDelimitedText(data)
	case ".xlsx", ".xls":
		rows, err = parseWorkbook(data)
	default:
		err = fmt.Errorf("unsupported spreadsheet format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return &ParsedSpreadsheet{
		SourceID:  sourceID,
		Filename:  filename,
		Rows:      rows,
		HeaderRow: detectHeaderRow(rows),
	}, nil
}

// detectHeaderRow reports whether row 0 looks like a "Full Name" style
// header: its first cell, lowercased, contains the substring "full".
func detectHeaderRow(rows []RowValues) bool {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(rows[0][0]), "full")
}

func parseDelimitedText(data []byte) ([]RowValues, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("not valid text")
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	// Delimiter sniffing inspects only the first line.
	tabDelimited := len(lines) > 0 && strings.Contains(lines[0], "\t")

	var rows []RowValues
	for _, line := range lines {
		var cells RowValues
		if tabDelimited {
			for _, c := range strings.Split(line, "\t") {
				cells = append(cells, strings.TrimSpace(c))
			}
		} else {
			for _, tok := range csvCellRe.FindAllString(line, -1) {
				if strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) && len(tok) >= 2 {
					tok = tok[1 : len(tok)-1]
				}
				cells = append(cells, strings.TrimSpace(tok))
			}
		}
		// Guard against blank trailing lines and stray fragments.
		if countNonEmpty(cells) < 2 {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func parseWorkbook(data []byte) ([]RowValues, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	// Only the first sheet participates in reconciliation.
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var rows []RowValues
	for _, r := range raw {
		cells := make(RowValues, len(r))
		copy(cells, r)
		if countNonEmpty(cells) == 0 {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func countNonEmpty(cells RowValues) int {
	n := 0
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}

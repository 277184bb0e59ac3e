package reconcile

import "strings"

// MergeRecord combines one resume descriptor, its filename-extracted name and
// an optional matched row into a single candidate record. Precedence per
// field: spreadsheet cell if non-empty, then the resume-derived value (name
// only), then the sentinel. Cell contents are taken as-is; no field-level
// validation happens here.
func MergeRecord(resume ResumeDescriptor, extractedName string, m *Match) CandidateRecord {
	var row RowValues
	if m != nil {
		row = m.Row
	}

	rec := CandidateRecord{
		Name:            fallback(cell(row, colFullName), extractedName),
		Gender:          fallback(cell(row, colGender), ""),
		DateOfBirth:     fallback(cell(row, colDateOfBirth), ""),
		Mobile:          fallback(cell(row, colMobile), ""),
		Email:           fallback(cell(row, colEmail), ""),
		LinkedIn:        fallback(cell(row, colLinkedIn), ""),
		Facebook:        fallback(cell(row, colFacebook), ""),
		Twitter:         fallback(cell(row, colTwitter), ""),
		Instagram:       fallback(cell(row, colInstagram), ""),
		City:            fallback(cell(row, colCity), ""),
		State:           fallback(cell(row, colState), ""),
		Languages:       fallback(cell(row, colLanguages), ""),
		MaritalStatus:   fallback(cell(row, colMaritalStatus), ""),
		Sector:          fallback(cell(row, colSector), ""),
		Category:        fallback(cell(row, colCategory), ""),
		Product:         fallback(cell(row, colProduct), ""),
		Channel:         fallback(cell(row, colChannel), ""),
		Designation:     fallback(cell(row, colDesignation), ""),
		Department:      fallback(cell(row, colDepartment), ""),
		CurrentCTC:      fallback(cell(row, colCurrentCTC), ""),
		ExpectedCTC:     fallback(cell(row, colExpectedCTC), ""),
		NoticePeriod:    fallback(cell(row, colNoticePeriod), ""),
		TotalExperience: fallback(cell(row, colTotalExperience), ""),
		JobChangeStatus: fallback(cell(row, colJobChangeStatus), ""),

		SourceResumeID: resume.ID,
		UploadedAt:     resume.UploadedAt,
		CSVFileName:    Sentinel,
	}

	if m != nil {
		rec.Matched = true
		rec.MatchedSpreadsheetID = m.SheetID
		rec.CSVFileName = m.Filename
	}
	return rec
}

// cell returns the trimmed value at idx, or "" when the row is short.
func cell(row RowValues, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// fallback applies the per-field precedence: primary, then secondary, then
// the sentinel. Never returns an empty string.
func fallback(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	return Sentinel
}

// Package reconcile reassociates uploaded resume documents with rows from
// independently uploaded candidate-detail spreadsheets. Neither batch carries
// a shared identifier, so the association is reconstructed from the resume's
// filename and the text of spreadsheet rows alone.
package reconcile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sentinel fills any record field with no value from either source.
const Sentinel = "N/A"

// ResumeDescriptor identifies an uploaded resume document. The engine only
// reads descriptors; resume bytes are never fetched or parsed here.
type ResumeDescriptor struct {
	ID               uuid.UUID `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	SizeBytes        int64     `json:"size_bytes"`
	UploadedAt       time.Time `json:"uploaded_at"`
	Status           string    `json:"status"`
}

// SpreadsheetDescriptor identifies an uploaded candidate-detail file. Raw
// bytes are fetched lazily through the FileStore.
type SpreadsheetDescriptor struct {
	ID               uuid.UUID `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	SizeBytes        int64     `json:"size_bytes"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// RowValues is one spreadsheet row as a fixed-order sequence of string cells,
// positioned against the canonical column schema.
type RowValues []string

// ParsedSpreadsheet is the immutable parse result of one spreadsheet file.
type ParsedSpreadsheet struct {
	SourceID uuid.UUID
	Filename string
	Rows     []RowValues
	// HeaderRow reports whether row 0 was detected as a "Full Name" style
	// header. The row stays in Rows; the matcher skips it.
	HeaderRow bool
}

// CandidateRecord is one merged candidate view produced by a reconciliation
// pass. Every field is populated; Sentinel stands in where neither source
// provided a value. Records are never mutated after a pass.
type CandidateRecord struct {
	Name            string `json:"name"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"date_of_birth"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	LinkedIn        string `json:"linkedin"`
	Facebook        string `json:"facebook"`
	Twitter         string `json:"twitter"`
	Instagram       string `json:"instagram"`
	City            string `json:"city"`
	State           string `json:"state"`
	Languages       string `json:"languages"`
	MaritalStatus   string `json:"marital_status"`
	Sector          string `json:"sector"`
	Category        string `json:"category"`
	Product         string `json:"product"`
	Channel         string `json:"channel"`
	Designation     string `json:"designation"`
	Department      string `json:"department"`
	CurrentCTC      string `json:"current_ctc"`
	ExpectedCTC     string `json:"expected_ctc"`
	NoticePeriod    string `json:"notice_period"`
	TotalExperience string `json:"total_experience"`
	JobChangeStatus string `json:"job_change_status"`

	Matched              bool      `json:"matched"`
	MatchedSpreadsheetID uuid.UUID `json:"matched_spreadsheet_id,omitempty"`
	CSVFileName          string    `json:"csv_file_name"`
	SourceResumeID       uuid.UUID `json:"source_resume_id"`
	UploadedAt           time.Time `json:"uploaded_at"`
}

// MatchStats summarizes one reconciliation pass.
type MatchStats struct {
	Total            int `json:"total"`
	Matched          int `json:"matched"`
	Unmatched        int `json:"unmatched"`
	MatchRatePercent int `json:"match_rate_percent"`
}

// Result is the full output of one reconciliation pass.
type Result struct {
	Records []CandidateRecord `json:"records"`
	Stats   MatchStats        `json:"stats"`
}

// FileStore is the external collaborator supplying file listings and raw
// bytes. FetchBytes is only ever called for spreadsheet files.
type FileStore interface {
	ListResumes(ctx context.Context) ([]ResumeDescriptor, error)
	ListSpreadsheets(ctx context.Context) ([]SpreadsheetDescriptor, error)
	FetchBytes(ctx context.Context, fileID uuid.UUID) ([]byte, error)
}

package reconcile

import "testing"

func TestExtractNameFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"underscores and noise word", "John_Doe_Resume.pdf", "John Doe"},
		{"hyphens two noise words", "jane-cv-updated.docx", "Jane"},
		{"doc extension", "Priya_Shah.doc", "Priya Shah"},
		{"extension case insensitive", "Priya_Shah.PDF", "Priya Shah"},
		{"noise word case insensitive", "amit_RESUME_FINAL.pdf", "Amit"},
		{"role words removed", "Rahul_Verma_QA_Engineer.pdf", "Rahul Verma"},
		{"version token removed", "nina_patel_v2.docx", "Nina Patel"},
		{"digits stripped", "john2doe_resume.pdf", "Johndoe"},
		{"title cased", "jOHN_dOE.pdf", "John Doe"},
		{"only noise tokens", "resume_final_v1.pdf", ""},
		{"empty filename", "", ""},
		{"no extension", "Asha Rao", "Asha Rao"},
		{"noise word inside name untouched", "Marquez_Developer.pdf", "Marquez"},
		{"cv not removed mid-word", "McVey_Resume.pdf", "Mcvey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNameFromFilename(tt.filename)
			if got != tt.want {
				t.Errorf("ExtractNameFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

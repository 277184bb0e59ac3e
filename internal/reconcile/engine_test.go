package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeStore struct {
	resumes    []ResumeDescriptor
	sheets     []SpreadsheetDescriptor
	bytes      map[uuid.UUID][]byte
	listErr    error
	fetchFails map[uuid.UUID]error

	mu      sync.Mutex
	fetched []uuid.UUID
}

func (s *fakeStore) ListResumes(ctx context.Context) ([]ResumeDescriptor, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.resumes, nil
}

func (s *fakeStore) ListSpreadsheets(ctx context.Context) ([]SpreadsheetDescriptor, error) {
	return s.sheets, nil
}

func (s *fakeStore) FetchBytes(ctx context.Context, fileID uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	s.fetched = append(s.fetched, fileID)
	s.mu.Unlock()
	if err, ok := s.fetchFails[fileID]; ok {
		return nil, err
	}
	data, ok := s.bytes[fileID]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func resumeDesc(filename string, at time.Time) ResumeDescriptor {
	return ResumeDescriptor{
		ID:               uuid.New(),
		OriginalFilename: filename,
		SizeBytes:        1024,
		UploadedAt:       at,
		Status:           "uploaded",
	}
}

func TestReconcileEndToEnd(t *testing.T) {
	now := time.Now()
	sheetID := uuid.New()
	csv := "Full Name,Gender,DOB,Mobile,Email\n" +
		"John Doe,Male,1990-01-01,9876543210,john@example.com\n" +
		"Priya S,Female,1992-05-10,9123456789,priya@example.com\n"

	store := &fakeStore{
		resumes: []ResumeDescriptor{
			resumeDesc("John_Doe_Resume.pdf", now),
			resumeDesc("Priya_Shah.docx", now),
			resumeDesc("Unmatched_Person.pdf", now),
		},
		sheets: []SpreadsheetDescriptor{
			{ID: sheetID, OriginalFilename: "candidates.csv", UploadedAt: now},
		},
		bytes: map[uuid.UUID][]byte{sheetID: []byte(csv)},
	}

	result, err := NewEngine(store).Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Stats.Total != 3 || result.Stats.Matched != 2 || result.Stats.Unmatched != 1 {
		t.Fatalf("stats = %+v, want total=3 matched=2 unmatched=1", result.Stats)
	}
	if result.Stats.MatchRatePercent != 67 {
		t.Errorf("rate = %d, want 67", result.Stats.MatchRatePercent)
	}

	byName := map[string]CandidateRecord{}
	for _, r := range result.Records {
		byName[r.Name] = r
	}

	john, ok := byName["John Doe"]
	if !ok {
		t.Fatalf("no John Doe record in %v", result.Records)
	}
	if !john.Matched || john.Email != "john@example.com" || john.MatchedSpreadsheetID != sheetID {
		t.Errorf("john = %+v, want matched row with spreadsheet fields", john)
	}
	if john.CSVFileName != "candidates.csv" {
		t.Errorf("john csv file = %q", john.CSVFileName)
	}

	// "Priya Shah" reconciles to the "Priya S" row; the spreadsheet's name
	// cell wins over the extracted name.
	priya, ok := byName["Priya S"]
	if !ok {
		t.Fatalf("no Priya record in %v", result.Records)
	}
	if !priya.Matched || priya.Mobile != "9123456789" {
		t.Errorf("priya = %+v", priya)
	}

	un, ok := byName["Unmatched Person"]
	if !ok {
		t.Fatalf("no unmatched record in %v", result.Records)
	}
	if un.Matched {
		t.Error("expected unmatched record")
	}
	for field, v := range map[string]string{
		"sector": un.Sector,
		"city":   un.City,
		"ctc":    un.CurrentCTC,
	} {
		if v != Sentinel {
			t.Errorf("unmatched %s = %q, want sentinel", field, v)
		}
	}
}

func TestReconcileListingErrorIsFatal(t *testing.T) {
	store := &fakeStore{listErr: errors.New("db down")}

	if _, err := NewEngine(store).Reconcile(context.Background()); err == nil {
		t.Fatal("expected listing failure to abort the pass")
	}
}

func TestReconcilePerFileFailureIsolation(t *testing.T) {
	now := time.Now()
	badFetch := uuid.New()
	badParse := uuid.New()
	good := uuid.New()

	store := &fakeStore{
		resumes: []ResumeDescriptor{resumeDesc("Jane_Doe.pdf", now)},
		sheets: []SpreadsheetDescriptor{
			{ID: badFetch, OriginalFilename: "first.csv", UploadedAt: now},
			{ID: badParse, OriginalFilename: "second.xlsx", UploadedAt: now},
			{ID: good, OriginalFilename: "third.csv", UploadedAt: now},
		},
		bytes: map[uuid.UUID][]byte{
			badParse: []byte("not a workbook"),
			good:     []byte("Jane Doe,Female\n"),
		},
		fetchFails: map[uuid.UUID]error{badFetch: errors.New("network")},
	}

	result, err := NewEngine(store).Reconcile(context.Background())
	if err != nil {
		t.Fatalf("per-file failures must not abort the pass: %v", err)
	}
	if result.Stats.Matched != 1 {
		t.Errorf("stats = %+v, want the surviving file to still match", result.Stats)
	}
	if result.Records[0].MatchedSpreadsheetID != good {
		t.Error("match must come from the surviving spreadsheet")
	}
}

func TestReconcileEmptyBatch(t *testing.T) {
	store := &fakeStore{}

	result, err := NewEngine(store).Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if result.Stats.Total != 0 || result.Stats.MatchRatePercent != 0 {
		t.Errorf("stats = %+v, want zeros with no division error", result.Stats)
	}
	if len(result.Records) != 0 {
		t.Errorf("records = %v, want none", result.Records)
	}
}

func TestReconcileNeverFetchesResumeBytes(t *testing.T) {
	now := time.Now()
	sheetID := uuid.New()
	store := &fakeStore{
		resumes: []ResumeDescriptor{resumeDesc("Jane_Doe.pdf", now)},
		sheets:  []SpreadsheetDescriptor{{ID: sheetID, OriginalFilename: "c.csv", UploadedAt: now}},
		bytes:   map[uuid.UUID][]byte{sheetID: []byte("Jane Doe,Female\n")},
	}

	if _, err := NewEngine(store).Reconcile(context.Background()); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	for _, id := range store.fetched {
		if id != sheetID {
			t.Errorf("fetched unexpected file %v; only spreadsheet bytes may be fetched", id)
		}
	}
}

package reconcile

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ParseOutcome is the per-file result of fetching and parsing one
// spreadsheet. A failed file carries its error and contributes zero rows; it
// never aborts the rest of the batch.
type ParseOutcome struct {
	SourceID uuid.UUID
	Filename string
	Sheet    *ParsedSpreadsheet
	Err      error
}

// Engine runs reconciliation passes against a FileStore.
type Engine struct {
	store FileStore
}

func NewEngine(store FileStore) *Engine {
	return &Engine{store: store}
}

// Reconcile lists both collections and runs one full pass. A listing failure
// aborts the pass with no partial result; per-file fetch and parse failures
// only remove that file's rows from consideration.
func (e *Engine) Reconcile(ctx context.Context) (*Result, error) {
	resumes, err := e.store.ListResumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}
	sheets, err := e.store.ListSpreadsheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing spreadsheets: %w", err)
	}
	return e.ReconcilePass(ctx, resumes, sheets)
}

// ReconcilePass reconciles the given resume descriptors against the given
// spreadsheet descriptors, producing a fresh record list and stats.
func (e *Engine) ReconcilePass(ctx context.Context, resumes []ResumeDescriptor, sheetDescs []SpreadsheetDescriptor) (*Result, error) {
	outcomes := e.fetchAndParseAll(ctx, sheetDescs)

	parsed := make([]*ParsedSpreadsheet, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			log.Printf("skipping spreadsheet %s (%s): %v", o.Filename, o.SourceID, o.Err)
			continue
		}
		parsed = append(parsed, o.Sheet)
	}

	records := make([]CandidateRecord, 0, len(resumes))
	for _, resume := range resumes {
		name := ExtractNameFromFilename(resume.OriginalFilename)
		m, ok := FindMatch(name, parsed)
		if ok {
			records = append(records, MergeRecord(resume, name, &m))
		} else {
			records = append(records, MergeRecord(resume, name, nil))
		}
	}

	return &Result{
		Records: records,
		Stats:   ComputeStats(records),
	}, nil
}

// fetchAndParseAll fetches all spreadsheet bytes concurrently so total
// latency is bounded by the slowest single fetch, then parses each. Outcomes
// come back in descriptor (upload) order regardless of fetch completion
// order.
func (e *Engine) fetchAndParseAll(ctx context.Context, descs []SpreadsheetDescriptor) []ParseOutcome {
	outcomes := make([]ParseOutcome, len(descs))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range descs {
		i, d := i, d
		g.Go(func() error {
			outcomes[i] = ParseOutcome{SourceID: d.ID, Filename: d.OriginalFilename}
			data, err := e.store.FetchBytes(gctx, d.ID)
			if err != nil {
				outcomes[i].Err = fmt.Errorf("fetch bytes: %w", err)
				return nil
			}
			sheet, err := ParseSpreadsheet(d.ID, d.OriginalFilename, data)
			if err != nil {
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Sheet = sheet
			return nil
		})
	}
	// Per-file failures are recorded in outcomes, never returned.
	_ = g.Wait()
	return outcomes
}

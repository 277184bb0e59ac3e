package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateReconciliationResults = `-- name: CreateOrUpdateReconciliationResults :exec
INSERT INTO reconciliation_results (
report, job_id)
VALUES ( $1, $2)
ON CONFLICT (job_id)
DO UPDATE SET
    report = EXCLUDED.report,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateReconciliationResultsParams struct {
	Report json.RawMessage
	JobID  uuid.UUID
}

func (q *Queries) CreateOrUpdateReconciliationResults(ctx context.Context, arg CreateOrUpdateReconciliationResultsParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateReconciliationResults, arg.Report, arg.JobID)
	return err
}

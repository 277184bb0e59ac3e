package database

import (
	"context"

	"github.com/google/uuid"
)

const getSpreadsheetsByJob = `-- name: GetSpreadsheetsByJob :many
SELECT id, original_filename, mime, size_bytes, storage_provider, object_key, storage_url, upload_status, created_at, job_id FROM spreadsheets WHERE job_id=$1 ORDER BY created_at
`

func (q *Queries) GetSpreadsheetsByJob(ctx context.Context, jobID uuid.UUID) ([]Spreadsheet, error) {
	rows, err := q.db.QueryContext(ctx, getSpreadsheetsByJob, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Spreadsheet
	for rows.Next() {
		var i Spreadsheet
		if err := rows.Scan(
			&i.ID,
			&i.OriginalFilename,
			&i.Mime,
			&i.SizeBytes,
			&i.StorageProvider,
			&i.ObjectKey,
			&i.StorageUrl,
			&i.UploadStatus,
			&i.CreatedAt,
			&i.JobID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

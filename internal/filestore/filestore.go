// Package filestore provides the file listing and byte-fetch collaborators
// the reconciliation engine consumes: a production store backed by Postgres
// metadata and R2 object storage, and a local-directory store for tooling.
package filestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/hireloop/reconcileworker/internal/database"
	"github.com/hireloop/reconcileworker/internal/reconcile"
)

// Store serves one job's uploaded files: listings from the database, bytes
// from the object store.
type Store struct {
	db     *database.Queries
	s3     *s3.Client
	bucket string
	jobID  uuid.UUID

	mu   sync.Mutex
	keys map[uuid.UUID]string // file id -> object key, filled by listings
}

func New(db *database.Queries, client *s3.Client, bucket string, jobID uuid.UUID) *Store {
	return &Store{
		db:     db,
		s3:     client,
		bucket: bucket,
		jobID:  jobID,
		keys:   make(map[uuid.UUID]string),
	}
}

func (s *Store) ListResumes(ctx context.Context) ([]reconcile.ResumeDescriptor, error) {
	resumes, err := s.db.GetResumesByJob(ctx, s.jobID)
	if err != nil {
		return nil, fmt.Errorf("error getting resumes for job %v: %w", s.jobID, err)
	}
	out := make([]reconcile.ResumeDescriptor, 0, len(resumes))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range resumes {
		s.keys[r.ID] = r.ObjectKey
		out = append(out, reconcile.ResumeDescriptor{
			ID:               r.ID,
			OriginalFilename: r.OriginalFilename,
			SizeBytes:        r.SizeBytes,
			UploadedAt:       r.CreatedAt,
			Status:           r.UploadStatus,
		})
	}
	return out, nil
}

func (s *Store) ListSpreadsheets(ctx context.Context) ([]reconcile.SpreadsheetDescriptor, error) {
	sheets, err := s.db.GetSpreadsheetsByJob(ctx, s.jobID)
	if err != nil {
		return nil, fmt.Errorf("error getting spreadsheets for job %v: %w", s.jobID, err)
	}
	out := make([]reconcile.SpreadsheetDescriptor, 0, len(sheets))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range sheets {
		s.keys[sh.ID] = sh.ObjectKey
		out = append(out, reconcile.SpreadsheetDescriptor{
			ID:               sh.ID,
			OriginalFilename: sh.OriginalFilename,
			SizeBytes:        sh.SizeBytes,
			UploadedAt:       sh.CreatedAt,
		})
	}
	return out, nil
}

func (s *Store) FetchBytes(ctx context.Context, fileID uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	key, ok := s.keys[fileID]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown file id %v: not returned by a listing", fileID)
	}

	out, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/reconcileworker/internal/reconcile"
)

// LocalStore serves files from two local directories. It backs the CLI so a
// pass can run against files on disk without any infrastructure.
type LocalStore struct {
	ResumeDir      string
	SpreadsheetDir string

	paths map[uuid.UUID]string
}

func NewLocal(resumeDir, spreadsheetDir string) *LocalStore {
	return &LocalStore{
		ResumeDir:      resumeDir,
		SpreadsheetDir: spreadsheetDir,
		paths:          make(map[uuid.UUID]string),
	}
}

func (s *LocalStore) ListResumes(ctx context.Context) ([]reconcile.ResumeDescriptor, error) {
	entries, err := listDir(s.ResumeDir)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}
	out := make([]reconcile.ResumeDescriptor, 0, len(entries))
	for _, e := range entries {
		id := uuid.New()
		s.paths[id] = e.path
		out = append(out, reconcile.ResumeDescriptor{
			ID:               id,
			OriginalFilename: e.name,
			SizeBytes:        e.size,
			UploadedAt:       e.modTime,
			Status:           "uploaded",
		})
	}
	return out, nil
}

func (s *LocalStore) ListSpreadsheets(ctx context.Context) ([]reconcile.SpreadsheetDescriptor, error) {
	entries, err := listDir(s.SpreadsheetDir)
	if err != nil {
		return nil, fmt.Errorf("listing spreadsheets: %w", err)
	}
	out := make([]reconcile.SpreadsheetDescriptor, 0, len(entries))
	for _, e := range entries {
		id := uuid.New()
		s.paths[id] = e.path
		out = append(out, reconcile.SpreadsheetDescriptor{
			ID:               id,
			OriginalFilename: e.name,
			SizeBytes:        e.size,
			UploadedAt:       e.modTime,
		})
	}
	return out, nil
}

func (s *LocalStore) FetchBytes(ctx context.Context, fileID uuid.UUID) ([]byte, error) {
	path, ok := s.paths[fileID]
	if !ok {
		return nil, fmt.Errorf("unknown file id %v", fileID)
	}
	return os.ReadFile(path)
}

type dirEntry struct {
	name    string
	path    string
	size    int64
	modTime time.Time
}

func listDir(dir string) ([]dirEntry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []dirEntry
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, err
		}
		out = append(out, dirEntry{
			name:    de.Name(),
			path:    filepath.Join(dir, de.Name()),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
	}
	// Directory order stands in for upload order.
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

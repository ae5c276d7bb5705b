package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/shared/filestorages"
)

var (
	ErrLineChunkAlreadyExist = errors.New("line chunk already exists")
)

// LineChunkStore archives every ingested chunk of raw log lines before any of
// them reaches the parser. The archive doubles as the ingestion dedup ledger:
// Put refuses to overwrite, so a chunk id that was already accepted surfaces
// as ErrLineChunkAlreadyExist and the caller can reject the replay without
// double counting a single request.
//
// The create-if-not-exists semantics mirror a conditional PUT on object
// storage (If-None-Match: * on S3), which keeps the dedup property intact if
// the file storage is ever swapped for a bucket.
//
//go:generate mockgen -source=line_chunk_store.go -destination=./mocks/line_chunk_store_mock.go -package=mocks
type LineChunkStore interface {
	Put(ctx context.Context, chunk *models.LineChunk) error
}

type lineChunkStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLineChunkStore(fileStorage filestorages.FileStorage) LineChunkStore {
	return &lineChunkStore{
		fileStorage: fileStorage,
		dir:         "raw-chunks",
	}
}

func (s *lineChunkStore) Put(ctx context.Context, chunk *models.LineChunk) error {
	jsonData, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("failed to marshal line chunk: %w", err)
	}

	key := s.key(chunk)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrLineChunkAlreadyExist
		}
		return fmt.Errorf("failed to put line chunk: %w", err)
	}

	return nil
}

func (s *lineChunkStore) key(chunk *models.LineChunk) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, chunk.SourceID, chunk.ChunkID)
}

package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/parsers"
	"hotpath-analytics/internal/shared/loggers"
	"hotpath-analytics/internal/shared/metrics"
	"hotpath-analytics/internal/shared/ulid"
	"hotpath-analytics/internal/stores"
	"hotpath-analytics/internal/streams"
)

const (
	maxChunkBytes = 2 * 1024 * 1024
)

const (
	ContentTypePlainText = "text/plain"
)

// IngestResult represents the result of a chunk ingestion operation.
type IngestResult struct {
	ChunkID  string
	Accepted int
	Rejected int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestChunk archives a chunk of raw access log lines and feeds every
	// parseable line into the record stream.
	IngestChunk(ctx context.Context, sourceID string, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error)
	// IngestLines feeds already-split lines into the record stream without
	// archiving them. Unparseable lines are counted as rejected, not failed.
	IngestLines(ctx context.Context, lines []string) (*IngestResult, error)
}

type ingestionService struct {
	parser     parsers.AccessLogParser
	chunkStore stores.LineChunkStore
	producer   streams.AccessEventProducer
}

func NewIngestionService(parser parsers.AccessLogParser, chunkStore stores.LineChunkStore, producer streams.AccessEventProducer) IngestionService {
	return &ingestionService{
		parser:     parser,
		chunkStore: chunkStore,
		producer:   producer,
	}
}

func (s *ingestionService) IngestChunk(ctx context.Context, sourceID string, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting chunk with source ID: %s, idempotency key: %s, content type: %s", sourceID, idempotencyKey, contentType)

	lines, err := s.validateLineChunk(sourceID, contentType, r)
	if err != nil {
		return nil, err
	}

	chunkID := strings.TrimSpace(idempotencyKey)
	if chunkID == "" {
		chunkID = ulid.New()
	}

	lineChunk := &models.LineChunk{
		ChunkID:  chunkID,
		SourceID: sourceID,
		Lines:    lines,
	}

	// Archive the raw chunk before parsing anything. The archive write is
	// also the idempotency check: a replayed chunk id is rejected here and
	// none of its lines are counted a second time.
	err = s.chunkStore.Put(ctx, lineChunk)
	if err != nil {
		if errors.Is(err, stores.ErrLineChunkAlreadyExist) {
			svcError := errChunkAlreadyProcessed(err)
			metricChunkIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		return nil, errInternalLineChunkStoreFailed(err)
	}

	result, err := s.IngestLines(ctx, lines)
	if err != nil {
		return nil, err
	}
	result.ChunkID = chunkID

	metricChunkIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *ingestionService) IngestLines(ctx context.Context, lines []string) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	result := &IngestResult{}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := s.parser.Parse(line)
		if err != nil {
			// One malformed line must not fail the rest of the chunk.
			result.Rejected++
			logger.Debug().Err(err).Msg("rejected unparseable log line")
			continue
		}

		if err := s.producer.Produce(ctx, record); err != nil {
			return nil, errInternalAccessEventProducerFailed(err)
		}
		result.Accepted++
	}

	return result, nil
}

func (s *ingestionService) validateLineChunk(sourceID string, contentType string, r io.Reader) ([]string, error) {
	if sourceID == "" {
		return nil, errValidationFailed("sourceID is required", nil)
	}

	// Handle nil reader
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	// Read with size limit
	buf, err := s.readWithLimit(r, maxChunkBytes)
	if err != nil {
		return nil, errValidationFailed("chunk too large: must be <= 2MB", nil)
	}

	// Normalize content type to lowercase for comparison (using contains so
	// charset parameters still match)
	contentTypeLower := strings.ToLower(contentType)
	if !strings.Contains(contentTypeLower, ContentTypePlainText) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported content type: %q", contentType), nil)
	}

	lines := s.splitLines(buf)
	if len(lines) == 0 {
		return nil, errValidationFailed("log lines cannot be empty", nil)
	}

	return lines, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	limitedReader := io.LimitReader(r, int64(max)+1)
	buf, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, err
	}

	// If we read more than max bytes, the chunk is too large
	if len(buf) > max {
		return nil, errValidationFailed("chunk too large", nil)
	}

	return buf, nil
}

// splitLines splits buf into non-blank lines, tolerating CRLF endings.
func (s *ingestionService) splitLines(buf []byte) []string {
	rawLines := strings.Split(string(buf), "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

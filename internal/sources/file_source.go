package sources

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hotpath-analytics/internal/ingestors"
	"hotpath-analytics/internal/shared/loggers"
	"hotpath-analytics/internal/streams"

	"github.com/fsnotify/fsnotify"
)

// FileSource feeds a web-server access log from local disk into the record
// stream. Two modes:
//
//   - replay (follow=false): read the whole file once, seal the record stream
//     so every window downstream closes, then exit. Used for backfills and
//     finished logs.
//   - follow (follow=true): keep reading as the server appends, surviving
//     logrotate-style renames. The stream is never sealed; shutdown seals it.
//
// Lines are handed to the ingestion service in batches, so a malformed line is
// rejected there without stopping the tail.
type FileSource struct {
	path     string
	sourceID string
	follow   bool

	ingestion ingestors.IngestionService
	producer  streams.AccessEventProducer

	logger loggers.Logger

	file   *os.File
	reader *bufio.Reader
	// partial buffers an unterminated trailing line between reads. The writer
	// may still be in the middle of it; it only counts once its newline lands.
	partial string

	accepted int
	rejected int
}

func NewFileSource(
	path string,
	sourceID string,
	follow bool,
	ingestion ingestors.IngestionService,
	producer streams.AccessEventProducer,
	logger loggers.Logger,
) *FileSource {
	return &FileSource{
		path:      path,
		sourceID:  sourceID,
		follow:    follow,
		ingestion: ingestion,
		producer:  producer,
		logger:    logger.With().Str(loggers.FieldSourceID, sourceID).Logger(),
	}
}

// Run blocks until the file is fully replayed (replay mode) or ctx is canceled
// (follow mode).
func (s *FileSource) Run(ctx context.Context) error {
	ctx = s.logger.WithContext(ctx)

	if err := s.open(); err != nil {
		return err
	}
	defer s.file.Close()

	if s.follow {
		return s.followAppends(ctx)
	}

	if err := s.drain(ctx); err != nil {
		return err
	}
	if err := s.flushPartial(ctx); err != nil {
		return err
	}

	// End of input: sealing broadcasts the closing boundary so the last
	// windows report even though no later record will arrive.
	s.producer.Seal(ctx)
	s.logger.Info().
		Int("accepted", s.accepted).
		Int("rejected", s.rejected).
		Msg("finished replaying log file")
	return nil
}

func (s *FileSource) open() error {
	file, err := os.Open(s.path)
	if err != nil {
		return errInternalFileOpenFailed(s.path, err)
	}
	s.file = file
	s.reader = bufio.NewReader(file)
	return nil
}

// drain reads every complete line currently in the file and ingests them.
func (s *FileSource) drain(ctx context.Context) error {
	lines, err := s.readAvailable()
	if err != nil {
		return err
	}
	return s.ingest(ctx, lines)
}

// readAvailable reads until EOF, carrying an unterminated trailing line over
// to the next read.
func (s *FileSource) readAvailable() ([]string, error) {
	var lines []string
	for {
		chunk, err := s.reader.ReadString('\n')
		if err == io.EOF {
			s.partial += chunk
			return lines, nil
		}
		if err != nil {
			return nil, errInternalReadFailed(s.path, err)
		}

		line := strings.TrimRight(s.partial+chunk, "\r\n")
		s.partial = ""
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
}

// flushPartial ingests the trailing unterminated line, if any. Called when no
// further append can complete it: end of a replay or an old file after
// rotation.
func (s *FileSource) flushPartial(ctx context.Context) error {
	line := strings.TrimRight(s.partial, "\r\n")
	s.partial = ""
	if strings.TrimSpace(line) == "" {
		return nil
	}
	return s.ingest(ctx, []string{line})
}

func (s *FileSource) ingest(ctx context.Context, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	result, err := s.ingestion.IngestLines(ctx, lines)
	if err != nil {
		return err
	}

	metricLinesReadTotal.WithLabelValues(s.sourceID).Add(float64(len(lines)))
	s.accepted += result.Accepted
	s.rejected += result.Rejected
	return nil
}

// followAppends blocks on filesystem notifications and drains the file after
// each append. It watches the parent directory rather than the file itself so
// a logrotate rename does not silently detach the watch. Truncate-in-place
// rotation is not detected; rename-based rotation is.
func (s *FileSource) followAppends(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errInternalWatchFailed(s.path, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return errInternalWatchFailed(s.path, err)
	}

	// Drain only after the watch is in place. An append during the drain
	// either lands in it or raises an event that triggers the next one, so no
	// line can fall between first read and watch registration.
	if err := s.drain(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != s.path {
				continue
			}
			if event.Has(fsnotify.Create) {
				if err := s.reopen(ctx); err != nil {
					return err
				}
				continue
			}
			if event.Has(fsnotify.Write) {
				if err := s.drain(ctx); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// reopen handles a logrotate swap. The renamed file stays readable through the
// old descriptor, so its remaining lines are drained and the partial flushed
// before switching to the fresh file at the same path.
func (s *FileSource) reopen(ctx context.Context) error {
	if err := s.drain(ctx); err != nil {
		return err
	}
	if err := s.flushPartial(ctx); err != nil {
		return err
	}
	s.file.Close()

	if err := s.open(); err != nil {
		return err
	}

	metricRotationsTotal.WithLabelValues(s.sourceID).Inc()
	s.logger.Info().Msg("log file rotated, following new file")

	// The fresh file may already hold lines written before the create event
	// reached us.
	return s.drain(ctx)
}

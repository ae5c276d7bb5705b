package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/shared/filestorages"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

// ReportStore archives one JSON document per closed window under
// reports/<windowEnd unix seconds>.json and serves the HTTP read path. Reads
// go through a TTL cache of recent reports, so polling clients rarely touch
// the filesystem.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, report *models.RankedReport) error
	// Get returns the report for the given window end, or ErrReportNotFound.
	Get(ctx context.Context, windowEnd time.Time) (*models.RankedReport, error)
	// Latest returns the report with the highest window end, or
	// ErrReportNotFound when nothing has been archived yet.
	Latest(ctx context.Context) (*models.RankedReport, error)
	// List returns the window ends of all archived reports, ascending.
	List(ctx context.Context) ([]time.Time, error)
}

const latestCacheKey = "latest"

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string

	cache    *cache.Cache
	latestMu sync.Mutex
}

func NewReportStore(fileStorage filestorages.FileStorage, cacheTTL time.Duration) ReportStore {
	return &reportStore{
		fileStorage: fileStorage,
		dir:         "reports",
		cache:       cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *reportStore) Put(ctx context.Context, report *models.RankedReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	key := s.key(report.WindowEnd)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put report: %w", err)
	}

	s.cache.Set(key, report, cache.DefaultExpiration)
	s.refreshLatest(report)
	return nil
}

func (s *reportStore) Get(ctx context.Context, windowEnd time.Time) (*models.RankedReport, error) {
	key := s.key(windowEnd)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.RankedReport), nil
	}

	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var report models.RankedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	s.cache.Set(key, &report, cache.DefaultExpiration)
	return &report, nil
}

func (s *reportStore) Latest(ctx context.Context) (*models.RankedReport, error) {
	if cached, ok := s.cache.Get(latestCacheKey); ok {
		return cached.(*models.RankedReport), nil
	}

	windowEnds, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(windowEnds) == 0 {
		return nil, ErrReportNotFound
	}

	report, err := s.Get(ctx, windowEnds[len(windowEnds)-1])
	if err != nil {
		return nil, err
	}
	s.refreshLatest(report)
	return report, nil
}

func (s *reportStore) List(ctx context.Context) ([]time.Time, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	windowEnds := make([]time.Time, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimSuffix(path.Base(key), ".json")
		sec, err := strconv.ParseInt(name, 10, 64)
		if err != nil {
			continue
		}
		windowEnds = append(windowEnds, time.Unix(sec, 0).UTC())
	}
	sort.Slice(windowEnds, func(i, j int) bool { return windowEnds[i].Before(windowEnds[j]) })

	return windowEnds, nil
}

func (s *reportStore) key(windowEnd time.Time) string {
	return fmt.Sprintf("%s/%d.json", s.dir, windowEnd.Unix())
}

func (s *reportStore) refreshLatest(report *models.RankedReport) {
	s.latestMu.Lock()
	defer s.latestMu.Unlock()

	if cached, ok := s.cache.Get(latestCacheKey); ok {
		if !report.WindowEnd.After(cached.(*models.RankedReport).WindowEnd) {
			return
		}
	}
	s.cache.Set(latestCacheKey, report, cache.DefaultExpiration)
}

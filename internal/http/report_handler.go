package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/rankers"
	"hotpath-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

const (
	queryParamFormat = "format"
	formatText       = "text"
)

// reportHandler serves archived ranked reports, either the latest one or by
// window end. Reports default to JSON; ?format=text returns the same framed
// text block the console sink prints.
type reportHandler struct {
	reportStore stores.ReportStore
	renderer    *rankers.ReportRenderer
	latest      bool
}

// NewLatestReportHandler serves GET /reports/latest.
func NewLatestReportHandler(reportStore stores.ReportStore, renderer *rankers.ReportRenderer) AppHttpHandler {
	return &reportHandler{
		reportStore: reportStore,
		renderer:    renderer,
		latest:      true,
	}
}

// NewReportHandler serves GET /reports/{windowEnd}, windowEnd in unix seconds.
func NewReportHandler(reportStore stores.ReportStore, renderer *rankers.ReportRenderer) AppHttpHandler {
	return &reportHandler{
		reportStore: reportStore,
		renderer:    renderer,
	}
}

func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.lookup(r)
	if err != nil {
		return err
	}

	if r.URL.Query().Get(queryParamFormat) == formatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := io.WriteString(w, h.renderer.Render(report))
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(report)
}

func (h *reportHandler) lookup(r *http.Request) (*models.RankedReport, error) {
	if h.latest {
		report, err := h.reportStore.Latest(r.Context())
		return report, h.mapStoreError(err)
	}

	windowEndParam := chi.URLParam(r, "windowEnd")
	sec, err := strconv.ParseInt(windowEndParam, 10, 64)
	if err != nil {
		return nil, errInvalidWindowEnd(windowEndParam, err)
	}

	report, err := h.reportStore.Get(r.Context(), time.Unix(sec, 0).UTC())
	return report, h.mapStoreError(err)
}

func (h *reportHandler) mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, stores.ErrReportNotFound) {
		return errReportNotFound(err)
	}
	return errInternalReportStoreFailed(err)
}

// ReportListResponse lists the window ends of every archived report.
type ReportListResponse struct {
	WindowEnds []time.Time `json:"windowEnds"`
}

type reportListHandler struct {
	reportStore stores.ReportStore
}

// NewReportListHandler serves GET /reports.
func NewReportListHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &reportListHandler{
		reportStore: reportStore,
	}
}

func (h *reportListHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	windowEnds, err := h.reportStore.List(r.Context())
	if err != nil {
		return errInternalReportStoreFailed(err)
	}
	if windowEnds == nil {
		windowEnds = []time.Time{}
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(ReportListResponse{WindowEnds: windowEnds})
}

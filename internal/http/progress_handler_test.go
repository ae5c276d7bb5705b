package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotpath-analytics/internal/eventtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressHandler_Handle_BeforeFirstRecord(t *testing.T) {
	t.Parallel()

	assigner := eventtime.NewAssigner(10 * time.Second)
	handler := NewProgressHandler(assigner)

	req := httptest.NewRequest(http.MethodGet, "/progress", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response ProgressResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, int64(-1), response.WatermarkUnixMilli)
}

func TestProgressHandler_Handle_AfterObservation(t *testing.T) {
	t.Parallel()

	assigner := eventtime.NewAssigner(10 * time.Second)
	handler := NewProgressHandler(assigner)

	eventTime := time.Date(2021, 5, 10, 12, 1, 55, 0, time.UTC)
	assigner.Observe(eventTime)

	req := httptest.NewRequest(http.MethodGet, "/progress", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.NoError(t, err)

	var response ProgressResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, eventTime.Add(-10*time.Second).UnixMilli(), response.WatermarkUnixMilli)
	assert.Equal(t, "2021-05-10T12:01:45Z", response.Watermark)
}

package http

import (
	"encoding/json"
	"net/http"

	"hotpath-analytics/internal/eventtime"
)

// ProgressResponse describes how far event time has advanced. A watermark of
// -1 millisecond means no record has been observed yet.
type ProgressResponse struct {
	Watermark          string `json:"watermark"`
	WatermarkUnixMilli int64  `json:"watermarkUnixMilli"`
}

type progressHandler struct {
	assigner *eventtime.Assigner
}

// NewProgressHandler serves GET /progress.
func NewProgressHandler(assigner *eventtime.Assigner) AppHttpHandler {
	return &progressHandler{
		assigner: assigner,
	}
}

func (h *progressHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	watermark := h.assigner.Current()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(ProgressResponse{
		Watermark:          watermark.String(),
		WatermarkUnixMilli: watermark.UnixMilli(),
	})
}

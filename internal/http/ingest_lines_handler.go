package http

import (
	"encoding/json"
	"net/http"

	"hotpath-analytics/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// IngestLinesResponse reports what happened to each line of an accepted chunk.
type IngestLinesResponse struct {
	ChunkID  string `json:"chunkId"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
}

type ingestLinesHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestLinesHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestLinesHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /loglines requests.
func (h *ingestLinesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestChunk(r.Context(), sourceID(r), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(IngestLinesResponse{
		ChunkID:  result.ChunkID,
		Accepted: result.Accepted,
		Rejected: result.Rejected,
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/repository"
)

// TranscriptHandler serves archived session transcripts.
type TranscriptHandler struct {
	transcripts repository.TranscriptRepo
}

// NewTranscriptHandler creates a new transcript handler.
func NewTranscriptHandler(transcripts repository.TranscriptRepo) *TranscriptHandler {
	return &TranscriptHandler{transcripts: transcripts}
}

// Get handles GET /v1/transcripts/{sessionId}
func (h *TranscriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	transcript, err := h.transcripts.GetBySessionID(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if transcript == nil {
		writeError(w, http.StatusNotFound, "transcript not found")
		return
	}

	writeJSON(w, http.StatusOK, transcript)
}

// List handles GET /v1/transcripts
func (h *TranscriptHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := int64(20)
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	transcripts, err := h.transcripts.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"transcripts": transcripts})
}

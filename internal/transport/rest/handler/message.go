package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/service"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/store"
)

// MessageHandler handles the coaching exchange endpoint.
type MessageHandler struct {
	exchangeSvc *service.ExchangeService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(exchangeSvc *service.ExchangeService) *MessageHandler {
	return &MessageHandler{exchangeSvc: exchangeSvc}
}

// Post handles POST /v1/sessions/{id}/messages
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.exchangeSvc.HandleUtterance(r.Context(), id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, model.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

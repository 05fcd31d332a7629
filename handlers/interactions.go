// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/panel"
	"github.com/danielhkuo/quickly-tally/voting"
)

type InteractionHandler struct {
	svc     *voting.Service
	builder *panel.Builder
}

func NewInteractionHandler(svc *voting.Service, builder *panel.Builder) *InteractionHandler {
	return &InteractionHandler{svc: svc, builder: builder}
}

// Handle handles POST /interactions
// Dispatches a panel button press to the handler for its control kind
func (h *InteractionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, middleware.HeaderUserID+" header required")
		return
	}

	var req models.InteractionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CustomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "custom_id is required")
		return
	}

	in, err := h.builder.Decode(req.CustomID)
	if err != nil {
		slog.Warn("rejected control", "error", err, "user_id", userID, "custom_id", req.CustomID)
		middleware.JSONResponse(w, http.StatusBadRequest, ephemeral(msgInvalidControl))
		return
	}

	switch in.Kind {
	case models.ControlSelect:
		h.selectOption(w, r, userID, in)
	case models.ControlPrev, models.ControlNext:
		h.turnPage(w, r, userID, in)
	case models.ControlRemaining:
		h.showRemaining(w, r, userID)
	}
}

func (h *InteractionHandler) selectOption(w http.ResponseWriter, r *http.Request, userID string, in panel.Interaction) {
	receipt, err := h.svc.RecordVote(r.Context(), userID, in.Key)
	if err != nil {
		h.writeVotingError(w, r, userID, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ephemeral(formatVoteConfirmation(receipt)))
}

func (h *InteractionHandler) turnPage(w http.ResponseWriter, r *http.Request, userID string, in panel.Interaction) {
	page, err := h.builder.Transition(in.Page, in.Kind)
	if err != nil {
		// Only reachable with a control the panel never offered
		slog.Warn("invalid page transition", "error", err, "user_id", userID, "page", in.Page)
		middleware.JSONResponse(w, http.StatusBadRequest, ephemeral(msgInvalidControl))
		return
	}

	p, err := h.builder.Render(page)
	if err != nil {
		slog.Error("failed to render panel", "error", err, "page", page)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render panel")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.InteractionResponse{
		Type:      models.ResponsePanel,
		Ephemeral: true,
		Content:   p.Header,
		Panel:     &p,
	})
}

func (h *InteractionHandler) showRemaining(w http.ResponseWriter, r *http.Request, userID string) {
	remaining, err := h.svc.RemainingVotes(r.Context(), userID)
	if err != nil {
		h.writeVotingError(w, r, userID, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ephemeral(formatRemaining(remaining)))
}

// writeVotingError turns service errors into private notices
func (h *InteractionHandler) writeVotingError(w http.ResponseWriter, r *http.Request, userID string, err error) {
	switch {
	case errors.Is(err, voting.ErrQuotaUnset):
		middleware.JSONResponse(w, http.StatusOK, ephemeral(msgQuotaUnset))
	case errors.Is(err, voting.ErrQuotaExceeded):
		middleware.JSONResponse(w, http.StatusOK, ephemeral(msgQuotaExceeded))
	default:
		slog.Error("interaction failed", "error", err, "user_id", userID,
			"request_id", middleware.RequestID(r.Context()))
		middleware.JSONResponse(w, http.StatusInternalServerError, ephemeral(msgPersistence))
	}
}

func ephemeral(content string) models.InteractionResponse {
	return models.InteractionResponse{
		Type:      models.ResponseMessage,
		Ephemeral: true,
		Content:   content,
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/panel"
	"github.com/danielhkuo/quickly-tally/voting"
)

type CommandHandler struct {
	svc     *voting.Service
	builder *panel.Builder
}

func NewCommandHandler(svc *voting.Service, builder *panel.Builder) *CommandHandler {
	return &CommandHandler{svc: svc, builder: builder}
}

// StartVote handles POST /commands/start-vote
// Returns a fresh panel on the first category
func (h *CommandHandler) StartVote(w http.ResponseWriter, r *http.Request) {
	p, err := h.builder.Render(0)
	if err != nil {
		slog.Error("failed to render panel", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render panel")
		return
	}

	slog.Info("panel created", "panel_id", p.ID, "user_id", middleware.CallerID(r))

	middleware.JSONResponse(w, http.StatusCreated, models.InteractionResponse{
		Type:    models.ResponsePanel,
		Content: p.Header,
		Panel:   &p,
	})
}

// SetLimit handles POST /commands/set-limit
func (h *CommandHandler) SetLimit(w http.ResponseWriter, r *http.Request) {
	var req models.SetLimitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Limit == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit is required")
		return
	}

	err := h.svc.SetQuota(r.Context(), req.UserID, *req.Limit)
	if errors.Is(err, voting.ErrInvalidQuota) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be zero or more")
		return
	}
	if err != nil {
		slog.Error("failed to set quota", "error", err, "user_id", req.UserID,
			"request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgPersistence)
		return
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		name = req.UserID
	}

	slog.Info("limit set", "user_id", req.UserID, "limit", *req.Limit, "operator", middleware.CallerID(r))

	middleware.JSONResponse(w, http.StatusOK, models.SetLimitResponse{
		UserID:  req.UserID,
		Limit:   *req.Limit,
		Message: formatLimitSet(name, *req.Limit),
	})
}

// ResultsByCategory handles GET /commands/results-by-category
func (h *CommandHandler) ResultsByCategory(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Tally(r.Context())
	if err != nil {
		slog.Error("failed to tally votes", "error", err,
			"request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgPersistence)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Content: formatReport(report),
		Report:  report,
	})
}

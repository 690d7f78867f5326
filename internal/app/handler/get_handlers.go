package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/middleware"
	"github.com/atinyakov/second-brain/internal/models"
)

type GetHandler struct {
	contents service.ContentServiceIface
	shares   service.ShareServiceIface
	stats    service.StatsServiceIface
	logger   *zap.Logger
}

func NewGet(contents service.ContentServiceIface, shares service.ShareServiceIface, stats service.StatsServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		contents: contents,
		shares:   shares,
		stats:    stats,
		logger:   l,
	}
}

// Contents handles GET /contents and lists the caller's own content.
func (h *GetHandler) Contents(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeMessage(res, http.StatusUnauthorized, "unauthorized")
		return
	}

	contents, err := h.contents.ListOwn(ctx, userID)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}
	if contents == nil {
		contents = []models.Content{}
	}

	writeJSON(res, http.StatusOK, models.ContentsResponse{
		Response: models.Response{Success: true, Msg: "All documents retrieved successfully"},
		Contents: contents,
	})
}

// SharedBrain handles the public GET /brain/{shareLink}.
func (h *GetHandler) SharedBrain(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	hash := chi.URLParam(req, "shareLink")
	if hash == "" {
		writeMessage(res, http.StatusNotFound, "not found")
		return
	}

	brain, err := h.shares.Resolve(ctx, hash)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}
	if brain.Contents == nil {
		brain.Contents = []models.Content{}
	}

	writeJSON(res, http.StatusOK, models.SharedBrainResponse{
		Response:    models.Response{Success: true},
		SharedBrain: *brain,
	})
}

func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := h.stats.PingContext(ctx); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		writeMessage(res, http.StatusInternalServerError, "storage unavailable")
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Stats handles GET /api/internal/stats.
func (h *GetHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	stats, err := h.stats.GetStats(ctx)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, stats)
}

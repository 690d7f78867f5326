package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/middleware"
)

type DeleteHandler struct {
	contents service.ContentServiceIface
	logger   *zap.Logger
}

func NewDelete(contents service.ContentServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		contents: contents,
		logger:   l,
	}
}

// DeleteContent handles DELETE /delete-content/{contentId}. Only the owner
// may delete an item.
func (h *DeleteHandler) DeleteContent(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeMessage(res, http.StatusUnauthorized, "unauthorized")
		return
	}

	contentID := chi.URLParam(req, "contentId")
	if contentID == "" {
		writeMessage(res, http.StatusNotFound, "not found")
		return
	}

	if err := h.contents.DeleteOwn(ctx, userID, contentID); err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeMessage(res, http.StatusOK, "Content deleted successfully")
}

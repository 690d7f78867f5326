package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/middleware"
	"github.com/atinyakov/second-brain/internal/models"
)

type PostHandler struct {
	users    service.UserServiceIface
	contents service.ContentServiceIface
	shares   service.ShareServiceIface
	logger   *zap.Logger
}

func NewPost(users service.UserServiceIface, contents service.ContentServiceIface, shares service.ShareServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		users:    users,
		contents: contents,
		shares:   shares,
		logger:   l,
	}
}

// Signup handles POST /signup.
func (h *PostHandler) Signup(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var creds models.Credentials
	if err := decodeJSONBody(res, req, &creds); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	if _, err := h.users.Signup(ctx, creds); err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeMessage(res, http.StatusOK, "New user created successfully.")
}

// Signin handles POST /signin and returns a session token.
func (h *PostHandler) Signin(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var creds models.Credentials
	if err := decodeJSONBody(res, req, &creds); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	token, err := h.users.Signin(ctx, creds)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.SigninResponse{
		Response: models.Response{Success: true, Msg: "User sign in successfully"},
		Token:    token,
	})
}

// CreateContent handles POST /content.
func (h *PostHandler) CreateContent(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeMessage(res, http.StatusUnauthorized, "unauthorized")
		return
	}

	var request models.ContentRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	if _, err := h.contents.Create(ctx, userID, request); err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeMessage(res, http.StatusOK, "New content added")
}

// Share handles POST /brain/share. {"share":true} returns the share token,
// {"share":false} removes it.
func (h *PostHandler) Share(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeMessage(res, http.StatusUnauthorized, "unauthorized")
		return
	}

	var request models.ShareRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}
	if err := service.ValidateRequest(request); err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	if !*request.Share {
		if err := h.shares.Disable(ctx, userID); err != nil {
			writeServiceError(res, err, h.logger)
			return
		}

		writeJSON(res, http.StatusOK, models.ShareResponse{
			Response: models.Response{Success: true, Msg: "Sharing disabled"},
			Disabled: true,
		})
		return
	}

	hash, err := h.shares.Enable(ctx, userID)
	if err != nil {
		writeServiceError(res, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.ShareResponse{
		Response: models.Response{Success: true, Msg: "Sharing enabled"},
		Token:    hash,
	})
}

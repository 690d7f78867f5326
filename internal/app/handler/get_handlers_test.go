package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/app/handler"
	"github.com/atinyakov/second-brain/internal/middleware"
	"github.com/atinyakov/second-brain/internal/mocks"
	"github.com/atinyakov/second-brain/internal/models"
	"github.com/atinyakov/second-brain/internal/storage"
)

type getMocks struct {
	contents *mocks.MockContentServiceIface
	shares   *mocks.MockShareServiceIface
	stats    *mocks.MockStatsServiceIface
}

func newTestGetHandler(t *testing.T) (*handler.GetHandler, getMocks) {
	ctrl := gomock.NewController(t)

	m := getMocks{
		contents: mocks.NewMockContentServiceIface(ctrl),
		shares:   mocks.NewMockShareServiceIface(ctrl),
		stats:    mocks.NewMockStatsServiceIface(ctrl),
	}

	return handler.NewGet(m.contents, m.shares, m.stats, zap.NewNop()), m
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestContents(t *testing.T) {
	t.Run("own contents", func(t *testing.T) {
		h, m := newTestGetHandler(t)
		m.contents.EXPECT().ListOwn(gomock.Any(), "user-123").Return([]models.Content{
			{ID: "c1", Title: "talk", Type: "video", Link: "https://youtu.be/x", Tags: []string{"go"}, UserID: "user-123"},
		}, nil)

		req := middleware.InjectUserID(httptest.NewRequest(http.MethodGet, "/api/v1/contents", nil), "user-123")
		rr := httptest.NewRecorder()
		h.Contents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.ContentsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Contents, 1)
		assert.Equal(t, "c1", resp.Contents[0].ID)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		h, m := newTestGetHandler(t)
		m.contents.EXPECT().ListOwn(gomock.Any(), "user-123").Return(nil, nil)

		req := middleware.InjectUserID(httptest.NewRequest(http.MethodGet, "/api/v1/contents", nil), "user-123")
		rr := httptest.NewRecorder()
		h.Contents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"contents":[]`)
	})

	t.Run("without identity", func(t *testing.T) {
		h, _ := newTestGetHandler(t)

		rr := httptest.NewRecorder()
		h.Contents(rr, httptest.NewRequest(http.MethodGet, "/api/v1/contents", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSharedBrain(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		h, m := newTestGetHandler(t)
		m.shares.EXPECT().Resolve(gomock.Any(), "hash-1").Return(&models.SharedBrain{
			Username: "a@x.com",
			Contents: []models.Content{{ID: "c1", Title: "talk"}},
		}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/brain/hash-1", nil), "shareLink", "hash-1")
		rr := httptest.NewRecorder()
		h.SharedBrain(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.SharedBrainResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "a@x.com", resp.Username)
		require.Len(t, resp.Contents, 1)
	})

	t.Run("unknown hash", func(t *testing.T) {
		h, m := newTestGetHandler(t)
		m.shares.EXPECT().Resolve(gomock.Any(), "nope").Return(nil, storage.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/brain/nope", nil), "shareLink", "nope")
		rr := httptest.NewRecorder()
		h.SharedBrain(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPingDB(t *testing.T) {
	h, m := newTestGetHandler(t)

	m.stats.EXPECT().PingContext(gomock.Any()).Return(nil)
	rr := httptest.NewRecorder()
	h.PingDB(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	m.stats.EXPECT().PingContext(gomock.Any()).Return(errors.New("down"))
	rr = httptest.NewRecorder()
	h.PingDB(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStats(t *testing.T) {
	h, m := newTestGetHandler(t)
	m.stats.EXPECT().GetStats(gomock.Any()).Return(&storage.Stats{Users: 2, Contents: 5, ShareLinks: 1}, nil)

	rr := httptest.NewRecorder()
	h.Stats(rr, httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"users":2,"contents":5,"share_links":1}`, rr.Body.String())
}

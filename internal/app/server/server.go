// Package server assembles the HTTP router of the second brain API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/app/handler"
	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/middleware"
)

// Services bundles everything the router dispatches to.
type Services struct {
	Auth     service.AuthIface
	Users    service.UserServiceIface
	Contents service.ContentServiceIface
	Shares   service.ShareServiceIface
	Stats    service.StatsServiceIface
}

// Init builds the router. Protected routes go through the auth gate, the
// stats route through the trusted subnet filter.
func Init(svc Services, trustedSubnet string, logger *zap.Logger) *chi.Mux {
	post := handler.NewPost(svc.Users, svc.Contents, svc.Shares, logger)
	get := handler.NewGet(svc.Contents, svc.Shares, svc.Stats, logger)
	del := handler.NewDelete(svc.Contents, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGzipRequest)
	r.Use(middleware.WithGzipResponse)
	r.Use(middleware.WithRecover(logger))

	r.Get("/ping", get.PingDB)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", post.Signup)
		r.Post("/signin", post.Signin)
		r.Get("/brain/{shareLink}", get.SharedBrain)

		r.Group(func(r chi.Router) {
			r.Use(middleware.WithJWT(svc.Auth))

			r.Post("/content", post.CreateContent)
			r.Get("/contents", get.Contents)
			r.Delete("/delete-content/{contentId}", del.DeleteContent)
			r.Post("/brain/share", post.Share)
		})
	})

	r.With(middleware.WithSubnet(trustedSubnet)).Get("/api/internal/stats", get.Stats)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}

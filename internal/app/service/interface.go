package service

import (
	"context"

	"github.com/atinyakov/second-brain/internal/models"
	"github.com/atinyakov/second-brain/internal/storage"
)

//go:generate mockgen -destination=../../mocks/mock_storage.go -package=mocks . Storage
//go:generate mockgen -destination=../../mocks/mock_service.go -package=mocks . AuthIface,UserServiceIface,ContentServiceIface,ShareServiceIface,StatsServiceIface

// Storage is the persistence contract shared by the memory, PostgreSQL and
// gorm backends.
type Storage interface {
	CreateUser(context.Context, storage.UserRecord) (*storage.UserRecord, error)
	FindUserByUsername(context.Context, string) (*storage.UserRecord, error)
	FindUserByID(context.Context, string) (*storage.UserRecord, error)

	CreateContent(context.Context, storage.ContentRecord) (*storage.ContentRecord, error)
	FindContentByUserID(context.Context, string) ([]storage.ContentRecord, error)
	FindContentByID(context.Context, string) (*storage.ContentRecord, error)
	DeleteContent(ctx context.Context, id string, userID string) error

	FindOrCreateTag(context.Context, string) (*storage.TagRecord, error)
	FindTagsByIDs(context.Context, []string) ([]storage.TagRecord, error)

	FindOrCreateShareLink(context.Context, storage.ShareLinkRecord) (*storage.ShareLinkRecord, error)
	FindShareLinkByHash(context.Context, string) (*storage.ShareLinkRecord, error)
	DeleteShareLinkByUserID(context.Context, string) error

	GetStats(context.Context) (*storage.Stats, error)
	PingContext(context.Context) error
}

// PasswordHasher produces and checks salted one-way digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
}

// AuthIface issues and verifies session tokens.
type AuthIface interface {
	BuildJWTString(userID string) (string, error)
	ParseRawJWT(tokenString string) (*Claims, error)
}

type UserServiceIface interface {
	Signup(context.Context, models.Credentials) (*models.User, error)
	Signin(context.Context, models.Credentials) (string, error)
}

type ContentServiceIface interface {
	Create(ctx context.Context, userID string, req models.ContentRequest) (*models.Content, error)
	ListOwn(ctx context.Context, userID string) ([]models.Content, error)
	DeleteOwn(ctx context.Context, userID string, contentID string) error
}

type ShareServiceIface interface {
	Enable(ctx context.Context, userID string) (string, error)
	Disable(ctx context.Context, userID string) error
	Resolve(ctx context.Context, hash string) (*models.SharedBrain, error)
}

type StatsServiceIface interface {
	GetStats(context.Context) (*storage.Stats, error)
	PingContext(context.Context) error
}

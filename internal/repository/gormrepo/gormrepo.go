// Package gormrepo implements the storage contract with gorm. It is used for
// the MySQL deployment.
package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/atinyakov/second-brain/internal/storage"
)

const shareLinkAttempts = 3

type user struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"`
}

func (user) TableName() string { return "users" }

type content struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Title     string `gorm:"type:varchar(512);not null"`
	Type      string `gorm:"type:varchar(16);not null"`
	Link      string `gorm:"type:text;not null"`
	Tags      string `gorm:"type:text;not null"`
	UserID    string `gorm:"type:varchar(36);index;not null"`
	CreatedAt time.Time
}

func (content) TableName() string { return "contents" }

type tag struct {
	ID   string `gorm:"primaryKey;type:varchar(36)"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

func (tag) TableName() string { return "tags" }

type shareLink struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	Hash   string `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID string `gorm:"type:varchar(36);uniqueIndex;not null"`
}

func (shareLink) TableName() string { return "share_links" }

// Repository is the gorm backed storage.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open connects through dialector and migrates the schema.
func Open(dialector gorm.Dialector, logger *zap.Logger) (*Repository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&user{}, &tag{}, &content{}, &shareLink{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	logger.Info("gorm storage ready", zap.String("dialect", dialector.Name()))
	return New(db, logger), nil
}

// New wraps an already opened gorm connection.
func New(db *gorm.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storage.ErrConflict
	}

	return err
}

func toContentRecord(c content) (storage.ContentRecord, error) {
	rec := storage.ContentRecord{
		ID:     c.ID,
		Title:  c.Title,
		Type:   c.Type,
		Link:   c.Link,
		UserID: c.UserID,
	}

	if err := json.Unmarshal([]byte(c.Tags), &rec.Tags); err != nil {
		return rec, fmt.Errorf("malformed tags for content %s: %w", c.ID, err)
	}

	return rec, nil
}

func (r *Repository) CreateUser(ctx context.Context, u storage.UserRecord) (*storage.UserRecord, error) {
	row := user{ID: uuid.NewString(), Username: u.Username, Password: u.Password}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, mapError(err)
	}

	u.ID = row.ID
	return &u, nil
}

func (r *Repository) findUser(ctx context.Context, column string, value string) (*storage.UserRecord, error) {
	var row user

	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&row).Error; err != nil {
		return nil, mapError(err)
	}

	return &storage.UserRecord{ID: row.ID, Username: row.Username, Password: row.Password}, nil
}

func (r *Repository) FindUserByUsername(ctx context.Context, username string) (*storage.UserRecord, error) {
	return r.findUser(ctx, "username", username)
}

func (r *Repository) FindUserByID(ctx context.Context, id string) (*storage.UserRecord, error) {
	return r.findUser(ctx, "id", id)
}

func (r *Repository) CreateContent(ctx context.Context, c storage.ContentRecord) (*storage.ContentRecord, error) {
	if c.Tags == nil {
		c.Tags = []string{}
	}

	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return nil, err
	}

	row := content{
		ID:     uuid.NewString(),
		Title:  c.Title,
		Type:   c.Type,
		Link:   c.Link,
		Tags:   string(tags),
		UserID: c.UserID,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, mapError(err)
	}

	c.ID = row.ID
	return &c, nil
}

func (r *Repository) FindContentByUserID(ctx context.Context, userID string) ([]storage.ContentRecord, error) {
	var rows []content

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	res := make([]storage.ContentRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toContentRecord(row)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}

	return res, nil
}

func (r *Repository) FindContentByID(ctx context.Context, id string) (*storage.ContentRecord, error) {
	var row content

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, mapError(err)
	}

	rec, err := toContentRecord(row)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *Repository) DeleteContent(ctx context.Context, id string, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&content{})
	if res.Error != nil {
		return mapError(res.Error)
	}

	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *Repository) FindOrCreateTag(ctx context.Context, name string) (*storage.TagRecord, error) {
	db := r.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag{ID: uuid.NewString(), Name: name}).Error
	if err != nil {
		return nil, mapError(err)
	}

	var row tag
	if err := db.Where("name = ?", name).First(&row).Error; err != nil {
		return nil, mapError(err)
	}

	return &storage.TagRecord{ID: row.ID, Name: row.Name}, nil
}

func (r *Repository) FindTagsByIDs(ctx context.Context, ids []string) ([]storage.TagRecord, error) {
	if len(ids) == 0 {
		return []storage.TagRecord{}, nil
	}

	var rows []tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	byID := make(map[string]tag, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	res := make([]storage.TagRecord, 0, len(rows))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			res = append(res, storage.TagRecord{ID: t.ID, Name: t.Name})
		}
	}

	return res, nil
}

// FindOrCreateShareLink inserts with ON DUPLICATE KEY no-op and reads back
// the owner's row, so concurrent callers converge on one link.
func (r *Repository) FindOrCreateShareLink(ctx context.Context, l storage.ShareLinkRecord) (*storage.ShareLinkRecord, error) {
	db := r.db.WithContext(ctx)

	for attempt := 0; attempt < shareLinkAttempts; attempt++ {
		row := shareLink{ID: uuid.NewString(), Hash: l.Hash, UserID: l.UserID}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&row).Error
		if err != nil {
			return nil, mapError(err)
		}

		var existing shareLink
		err = db.Where("user_id = ?", l.UserID).First(&existing).Error
		if err == nil {
			return &storage.ShareLinkRecord{ID: existing.ID, Hash: existing.Hash, UserID: existing.UserID}, nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mapError(err)
		}

		r.logger.Info("share link not persisted, retrying", zap.String("user_id", l.UserID))
	}

	return nil, fmt.Errorf("share link for user %s: %w", l.UserID, storage.ErrConflict)
}

func (r *Repository) FindShareLinkByHash(ctx context.Context, hash string) (*storage.ShareLinkRecord, error) {
	var row shareLink

	if err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&row).Error; err != nil {
		return nil, mapError(err)
	}

	return &storage.ShareLinkRecord{ID: row.ID, Hash: row.Hash, UserID: row.UserID}, nil
}

func (r *Repository) DeleteShareLinkByUserID(ctx context.Context, userID string) error {
	return mapError(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&shareLink{}).Error)
}

func (r *Repository) GetStats(ctx context.Context) (*storage.Stats, error) {
	db := r.db.WithContext(ctx)

	var users, contents, links int64
	if err := db.Model(&user{}).Count(&users).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&content{}).Count(&contents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&shareLink{}).Count(&links).Error; err != nil {
		return nil, err
	}

	return &storage.Stats{Users: int(users), Contents: int(contents), ShareLinks: int(links)}, nil
}

func (r *Repository) PingContext(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Package repository implements the storage contract on top of PostgreSQL
// through database/sql and the pgx driver.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/storage"
)

const (
	maxOpenConnections     = 10
	maxIdleConnections     = 5
	connectionsMaxIdleTime = 2 * time.Minute
	connectionsLifetime    = 30 * time.Minute
	pingTimeout            = 5 * time.Second
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tags (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS contents (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('image', 'video', 'article', 'audio')),
	link TEXT NOT NULL,
	tags TEXT NOT NULL DEFAULT '[]',
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS contents_user_id_idx ON contents (user_id);
CREATE TABLE IF NOT EXISTS share_links (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	hash TEXT UNIQUE NOT NULL,
	user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE
);`

const (
	insertUser          = `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id;`
	selectUserByName    = `SELECT id, username, password FROM users WHERE username = $1;`
	selectUserByID      = `SELECT id, username, password FROM users WHERE id = $1;`
	insertContent       = `INSERT INTO contents (title, type, link, tags, user_id) VALUES ($1, $2, $3, $4, $5) RETURNING id;`
	selectContentByUser = `SELECT id, title, type, link, tags, user_id FROM contents WHERE user_id = $1 ORDER BY created_at, id;`
	selectContentByID   = `SELECT id, title, type, link, tags, user_id FROM contents WHERE id = $1;`
	deleteContent       = `DELETE FROM contents WHERE id = $1 AND user_id = $2;`
	upsertTag           = `INSERT INTO tags (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name;`
	selectTagsByIDs     = `SELECT id, name FROM tags WHERE id IN (%s);`
	insertShareLink     = `INSERT INTO share_links (hash, user_id) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING;`
	selectLinkByUser    = `SELECT id, hash, user_id FROM share_links WHERE user_id = $1;`
	selectLinkByHash    = `SELECT id, hash, user_id FROM share_links WHERE hash = $1;`
	deleteLinkByUser    = `DELETE FROM share_links WHERE user_id = $1;`
	selectStats         = `SELECT (SELECT COUNT(*) FROM users), (SELECT COUNT(*) FROM contents), (SELECT COUNT(*) FROM share_links);`
)

// shareLinkAttempts bounds the insert-then-select loop when a concurrent
// delete removes the row between the two statements.
const shareLinkAttempts = 3

// InitDB opens the connection pool, checks connectivity and creates the
// schema.
func InitDB(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConnections)
	db.SetMaxIdleConns(maxIdleConnections)
	db.SetConnMaxIdleTime(connectionsMaxIdleTime)
	db.SetConnMaxLifetime(connectionsLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Info("Database connected and tables ready")
	return db, nil
}

// BrainRepository stores users, content, tags and share links in PostgreSQL.
type BrainRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewBrainRepository(db *sql.DB, logger *zap.Logger) *BrainRepository {
	return &BrainRepository{
		db:     db,
		logger: logger,
	}
}

// mapError converts driver errors into storage sentinels.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.InvalidTextRepresentation:
			// malformed uuid can never match a row
			return storage.ErrNotFound
		}
	}

	return err
}

func (r *BrainRepository) CreateUser(ctx context.Context, u storage.UserRecord) (*storage.UserRecord, error) {
	err := r.db.QueryRowContext(ctx, insertUser, u.Username, u.Password).Scan(&u.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &u, nil
}

func (r *BrainRepository) findUser(ctx context.Context, query string, arg string) (*storage.UserRecord, error) {
	var u storage.UserRecord

	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &u, nil
}

func (r *BrainRepository) FindUserByUsername(ctx context.Context, username string) (*storage.UserRecord, error) {
	return r.findUser(ctx, selectUserByName, username)
}

func (r *BrainRepository) FindUserByID(ctx context.Context, id string) (*storage.UserRecord, error) {
	return r.findUser(ctx, selectUserByID, id)
}

func (r *BrainRepository) CreateContent(ctx context.Context, c storage.ContentRecord) (*storage.ContentRecord, error) {
	if c.Tags == nil {
		c.Tags = []string{}
	}

	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, insertContent, c.Title, c.Type, c.Link, string(tags), c.UserID).Scan(&c.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (storage.ContentRecord, error) {
	var (
		c    storage.ContentRecord
		tags string
	)

	if err := row.Scan(&c.ID, &c.Title, &c.Type, &c.Link, &tags, &c.UserID); err != nil {
		return c, err
	}

	if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
		return c, fmt.Errorf("malformed tags for content %s: %w", c.ID, err)
	}

	return c, nil
}

func (r *BrainRepository) FindContentByUserID(ctx context.Context, userID string) ([]storage.ContentRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectContentByUser, userID)
	if err != nil {
		if errors.Is(mapError(err), storage.ErrNotFound) {
			return []storage.ContentRecord{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.ContentRecord, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *BrainRepository) FindContentByID(ctx context.Context, id string) (*storage.ContentRecord, error) {
	c, err := scanContent(r.db.QueryRowContext(ctx, selectContentByID, id))
	if err != nil {
		return nil, mapError(err)
	}

	return &c, nil
}

func (r *BrainRepository) DeleteContent(ctx context.Context, id string, userID string) error {
	res, err := r.db.ExecContext(ctx, deleteContent, id, userID)
	if err != nil {
		return mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *BrainRepository) FindOrCreateTag(ctx context.Context, name string) (*storage.TagRecord, error) {
	var t storage.TagRecord

	if err := r.db.QueryRowContext(ctx, upsertTag, name).Scan(&t.ID, &t.Name); err != nil {
		return nil, mapError(err)
	}

	return &t, nil
}

// FindTagsByIDs keeps the order of ids and skips unknown ones.
func (r *BrainRepository) FindTagsByIDs(ctx context.Context, ids []string) ([]storage.TagRecord, error) {
	if len(ids) == 0 {
		return []storage.TagRecord{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(selectTagsByIDs, strings.Join(placeholders, ", ")), args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	byID := make(map[string]storage.TagRecord, len(ids))
	for rows.Next() {
		var t storage.TagRecord
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		byID[t.ID] = t
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	res := make([]storage.TagRecord, 0, len(byID))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			res = append(res, t)
		}
	}

	return res, nil
}

// FindOrCreateShareLink relies on UNIQUE(user_id): a losing concurrent insert
// turns into a no-op and the following select returns the winner's row.
func (r *BrainRepository) FindOrCreateShareLink(ctx context.Context, l storage.ShareLinkRecord) (*storage.ShareLinkRecord, error) {
	for attempt := 0; attempt < shareLinkAttempts; attempt++ {
		if _, err := r.db.ExecContext(ctx, insertShareLink, l.Hash, l.UserID); err != nil {
			return nil, mapError(err)
		}

		var res storage.ShareLinkRecord
		err := r.db.QueryRowContext(ctx, selectLinkByUser, l.UserID).Scan(&res.ID, &res.Hash, &res.UserID)
		if err == nil {
			return &res, nil
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return nil, mapError(err)
		}

		r.logger.Info("share link removed concurrently, retrying", zap.String("user_id", l.UserID))
	}

	return nil, fmt.Errorf("share link for user %s: %w", l.UserID, storage.ErrConflict)
}

func (r *BrainRepository) FindShareLinkByHash(ctx context.Context, hash string) (*storage.ShareLinkRecord, error) {
	var l storage.ShareLinkRecord

	if err := r.db.QueryRowContext(ctx, selectLinkByHash, hash).Scan(&l.ID, &l.Hash, &l.UserID); err != nil {
		return nil, mapError(err)
	}

	return &l, nil
}

func (r *BrainRepository) DeleteShareLinkByUserID(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteLinkByUser, userID); err != nil {
		if errors.Is(mapError(err), storage.ErrNotFound) {
			return nil
		}
		return err
	}

	return nil
}

func (r *BrainRepository) GetStats(ctx context.Context) (*storage.Stats, error) {
	var s storage.Stats

	if err := r.db.QueryRowContext(ctx, selectStats).Scan(&s.Users, &s.Contents, &s.ShareLinks); err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *BrainRepository) PingContext(c context.Context) error {
	return r.db.PingContext(c)
}

// Close closes the connection pool.
func (r *BrainRepository) Close() error {
	return r.db.Close()
}

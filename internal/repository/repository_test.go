package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/storage"
)

// Helper to set up a mock DB and repository
func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *BrainRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return mock, NewBrainRepository(db, zap.NewNop())
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

func TestCreateUser(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(insertUser)).
		WithArgs("a@x.com", "digest").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))

	u, err := repo.CreateUser(context.Background(), storage.UserRecord{Username: "a@x.com", Password: "digest"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "a@x.com", u.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Conflict(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(insertUser)).
		WithArgs("a@x.com", "digest").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"})

	_, err := repo.CreateUser(context.Background(), storage.UserRecord{Username: "a@x.com", Password: "digest"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(selectUserByName)).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).AddRow("user-1", "a@x.com", "digest"))

	u, err := repo.FindUserByUsername(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "digest", u.Password)

	mock.ExpectQuery(q(selectUserByName)).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindUserByUsername(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_MalformedID(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(selectUserByID)).
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation})

	_, err := repo.FindUserByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContent(t *testing.T) {
	mock, repo := setupMockDB(t)

	record := storage.ContentRecord{
		Title:  "Go memory model",
		Type:   "article",
		Link:   "https://go.dev/ref/mem",
		Tags:   []string{"tag-1", "tag-2"},
		UserID: "user-1",
	}

	mock.ExpectQuery(q(insertContent)).
		WithArgs(record.Title, record.Type, record.Link, `["tag-1","tag-2"]`, record.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("content-1"))

	c, err := repo.CreateContent(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "content-1", c.ID)
	assert.Equal(t, record.Tags, c.Tags)

	mock.ExpectQuery(q(insertContent)).
		WithArgs("t", "video", "https://v.com", `[]`, "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("content-2"))

	c, err = repo.CreateContent(context.Background(), storage.ContentRecord{Title: "t", Type: "video", Link: "https://v.com", UserID: "user-1"})
	require.NoError(t, err)
	assert.Empty(t, c.Tags)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindContentByUserID(t *testing.T) {
	mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "title", "type", "link", "tags", "user_id"}).
		AddRow("c-1", "first", "article", "https://a.com", `["t1"]`, "user-1").
		AddRow("c-2", "second", "image", "https://b.com", `[]`, "user-1")

	mock.ExpectQuery(q(selectContentByUser)).
		WithArgs("user-1").
		WillReturnRows(rows)

	result, err := repo.FindContentByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, []string{"t1"}, result[0].Tags)
	assert.Equal(t, "second", result[1].Title)

	mock.ExpectQuery(q(selectContentByUser)).
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "type", "link", "tags", "user_id"}))

	result, err = repo.FindContentByUserID(context.Background(), "user-2")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindContentByID_MalformedTags(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(selectContentByID)).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "type", "link", "tags", "user_id"}).
			AddRow("c-1", "first", "article", "https://a.com", `not json`, "user-1"))

	_, err := repo.FindContentByID(context.Background(), "c-1")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteContent(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(q(deleteContent)).
		WithArgs("c-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteContent(context.Background(), "c-1", "user-1"))

	mock.ExpectExec(q(deleteContent)).
		WithArgs("c-1", "user-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteContent(context.Background(), "c-1", "user-2"), storage.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateTag(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(upsertTag)).
		WithArgs("go").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("tag-1", "go"))

	tag, err := repo.FindOrCreateTag(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, "tag-1", tag.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTagsByIDs(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(`SELECT id, name FROM tags WHERE id IN ($1, $2, $3);`)).
		WithArgs("tag-2", "tag-x", "tag-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("tag-1", "go").
			AddRow("tag-2", "rust"))

	tags, err := repo.FindTagsByIDs(context.Background(), []string{"tag-2", "tag-x", "tag-1"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "rust", tags[0].Name)
	assert.Equal(t, "go", tags[1].Name)

	empty, err := repo.FindTagsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, empty, 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateShareLink(t *testing.T) {
	mock, repo := setupMockDB(t)

	// the owner already has a link: insert is a no-op, select returns it
	mock.ExpectExec(q(insertShareLink)).
		WithArgs("new-hash", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q(selectLinkByUser)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hash", "user_id"}).AddRow("link-1", "old-hash", "user-1"))

	l, err := repo.FindOrCreateShareLink(context.Background(), storage.ShareLinkRecord{Hash: "new-hash", UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "old-hash", l.Hash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateShareLink_RetriesAfterConcurrentDelete(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(q(insertShareLink)).
		WithArgs("hash", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q(selectLinkByUser)).
		WithArgs("user-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(q(insertShareLink)).
		WithArgs("hash", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(q(selectLinkByUser)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hash", "user_id"}).AddRow("link-1", "hash", "user-1"))

	l, err := repo.FindOrCreateShareLink(context.Background(), storage.ShareLinkRecord{Hash: "hash", UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "hash", l.Hash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateShareLink_HashCollision(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(q(insertShareLink)).
		WithArgs("taken", "user-2").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "share_links_hash_key"})

	_, err := repo.FindOrCreateShareLink(context.Background(), storage.ShareLinkRecord{Hash: "taken", UserID: "user-2"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindShareLinkByHash(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(selectLinkByHash)).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindShareLinkByHash(context.Background(), "unknown")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteShareLinkByUserID(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(q(deleteLinkByUser)).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteShareLinkByUserID(context.Background(), "user-1"))

	mock.ExpectExec(q(deleteLinkByUser)).
		WithArgs("user-1").
		WillReturnError(errors.New("connection reset"))

	assert.Error(t, repo.DeleteShareLinkByUserID(context.Background(), "user-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(q(selectStats)).
		WillReturnRows(sqlmock.NewRows([]string{"users", "contents", "share_links"}).AddRow(3, 10, 1))

	s, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Users)
	assert.Equal(t, 10, s.Contents)
	assert.Equal(t, 1, s.ShareLinks)

	assert.NoError(t, mock.ExpectationsWereMet())
}

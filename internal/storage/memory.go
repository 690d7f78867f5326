package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemoryStorage keeps every entity in process memory. When created with
// NewFileBackedStorage every mutation is also appended to a journal that is
// replayed on the next start.
type MemoryStorage struct {
	mu sync.RWMutex

	users     map[string]UserRecord
	usernames map[string]string

	contents     map[string]ContentRecord
	contentOrder []string

	tags     map[string]TagRecord
	tagNames map[string]string

	links      map[string]ShareLinkRecord
	linkOwners map[string]string

	journal *FileStorage
}

// CreateMemoryStorage returns an empty, non-persistent storage.
func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		users:      make(map[string]UserRecord),
		usernames:  make(map[string]string),
		contents:   make(map[string]ContentRecord),
		tags:       make(map[string]TagRecord),
		tagNames:   make(map[string]string),
		links:      make(map[string]ShareLinkRecord),
		linkOwners: make(map[string]string),
	}, nil
}

// NewFileBackedStorage restores the storage from the journal at path and
// keeps appending to it.
func NewFileBackedStorage(path string, logger *zap.Logger) (*MemoryStorage, error) {
	m, _ := CreateMemoryStorage()

	journal, err := NewFileStorage(path)
	if err != nil {
		return nil, err
	}

	events, err := journal.Read()
	if err != nil {
		_ = journal.Close()
		return nil, err
	}

	for _, e := range events {
		if err := m.replay(e); err != nil {
			_ = journal.Close()
			return nil, err
		}
	}

	logger.Info("journal restored", zap.String("path", path), zap.Int("events", len(events)))

	m.journal = journal
	return m, nil
}

func (m *MemoryStorage) replay(e Event) error {
	switch e.Op {
	case opCreateUser:
		var u UserRecord
		if err := json.Unmarshal(e.Payload, &u); err != nil {
			return err
		}
		m.putUser(u)
	case opCreateContent:
		var c ContentRecord
		if err := json.Unmarshal(e.Payload, &c); err != nil {
			return err
		}
		m.putContent(c)
	case opDeleteContent:
		var c ContentRecord
		if err := json.Unmarshal(e.Payload, &c); err != nil {
			return err
		}
		m.removeContent(c.ID)
	case opCreateTag:
		var t TagRecord
		if err := json.Unmarshal(e.Payload, &t); err != nil {
			return err
		}
		m.putTag(t)
	case opCreateShareLink:
		var l ShareLinkRecord
		if err := json.Unmarshal(e.Payload, &l); err != nil {
			return err
		}
		m.putLink(l)
	case opDeleteShareLink:
		var l ShareLinkRecord
		if err := json.Unmarshal(e.Payload, &l); err != nil {
			return err
		}
		m.removeLink(l.UserID)
	default:
		return fmt.Errorf("unknown journal operation %q", e.Op)
	}

	return nil
}

// record must be called with m.mu held for writing.
func (m *MemoryStorage) record(op string, v any) error {
	if m.journal == nil {
		return nil
	}

	return m.journal.Write(op, v)
}

func (m *MemoryStorage) putUser(u UserRecord) {
	m.users[u.ID] = u
	m.usernames[u.Username] = u.ID
}

func (m *MemoryStorage) putContent(c ContentRecord) {
	m.contents[c.ID] = c.clone()
	m.contentOrder = append(m.contentOrder, c.ID)
}

func (m *MemoryStorage) removeContent(id string) {
	delete(m.contents, id)
	for i, v := range m.contentOrder {
		if v == id {
			m.contentOrder = append(m.contentOrder[:i], m.contentOrder[i+1:]...)
			break
		}
	}
}

func (m *MemoryStorage) putTag(t TagRecord) {
	m.tags[t.ID] = t
	m.tagNames[t.Name] = t.ID
}

func (m *MemoryStorage) putLink(l ShareLinkRecord) {
	m.links[l.Hash] = l
	m.linkOwners[l.UserID] = l.Hash
}

func (m *MemoryStorage) removeLink(userID string) {
	if hash, ok := m.linkOwners[userID]; ok {
		delete(m.links, hash)
		delete(m.linkOwners, userID)
	}
}

// CreateUser stores u. Usernames are unique.
func (m *MemoryStorage) CreateUser(_ context.Context, u UserRecord) (*UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.usernames[u.Username]; exists {
		return nil, ErrConflict
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	if err := m.record(opCreateUser, u); err != nil {
		return nil, err
	}
	m.putUser(u)

	return &u, nil
}

func (m *MemoryStorage) FindUserByUsername(_ context.Context, username string) (*UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usernames[username]
	if !ok {
		return nil, ErrNotFound
	}

	u := m.users[id]
	return &u, nil
}

func (m *MemoryStorage) FindUserByID(_ context.Context, id string) (*UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &u, nil
}

func (m *MemoryStorage) CreateContent(_ context.Context, c ContentRecord) (*ContentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := m.contents[c.ID]; exists {
		return nil, ErrConflict
	}

	if err := m.record(opCreateContent, c); err != nil {
		return nil, err
	}
	m.putContent(c)

	res := c.clone()
	return &res, nil
}

// FindContentByUserID returns the user's content in insertion order.
func (m *MemoryStorage) FindContentByUserID(_ context.Context, userID string) ([]ContentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]ContentRecord, 0)
	for _, id := range m.contentOrder {
		if c := m.contents[id]; c.UserID == userID {
			res = append(res, c.clone())
		}
	}

	return res, nil
}

func (m *MemoryStorage) FindContentByID(_ context.Context, id string) (*ContentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.contents[id]
	if !ok {
		return nil, ErrNotFound
	}

	res := c.clone()
	return &res, nil
}

// DeleteContent removes the content only when it belongs to userID.
func (m *MemoryStorage) DeleteContent(_ context.Context, id string, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.contents[id]
	if !ok || c.UserID != userID {
		return ErrNotFound
	}

	if err := m.record(opDeleteContent, ContentRecord{ID: id, UserID: userID}); err != nil {
		return err
	}
	m.removeContent(id)

	return nil
}

// FindOrCreateTag returns the tag called name, creating it on first use.
func (m *MemoryStorage) FindOrCreateTag(_ context.Context, name string) (*TagRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.tagNames[name]; ok {
		t := m.tags[id]
		return &t, nil
	}

	t := TagRecord{ID: uuid.NewString(), Name: name}
	if err := m.record(opCreateTag, t); err != nil {
		return nil, err
	}
	m.putTag(t)

	return &t, nil
}

// FindTagsByIDs returns the known tags among ids; unknown ids are skipped.
func (m *MemoryStorage) FindTagsByIDs(_ context.Context, ids []string) ([]TagRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]TagRecord, 0, len(ids))
	for _, id := range ids {
		if t, ok := m.tags[id]; ok {
			res = append(res, t)
		}
	}

	return res, nil
}

// FindOrCreateShareLink atomically returns the user's existing link or stores
// l as the user's link.
func (m *MemoryStorage) FindOrCreateShareLink(_ context.Context, l ShareLinkRecord) (*ShareLinkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hash, ok := m.linkOwners[l.UserID]; ok {
		existing := m.links[hash]
		return &existing, nil
	}

	if _, taken := m.links[l.Hash]; taken {
		return nil, ErrConflict
	}

	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	if err := m.record(opCreateShareLink, l); err != nil {
		return nil, err
	}
	m.putLink(l)

	return &l, nil
}

func (m *MemoryStorage) FindShareLinkByHash(_ context.Context, hash string) (*ShareLinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.links[hash]
	if !ok {
		return nil, ErrNotFound
	}

	return &l, nil
}

// DeleteShareLinkByUserID is a no-op when the user has no link.
func (m *MemoryStorage) DeleteShareLinkByUserID(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.linkOwners[userID]; !ok {
		return nil
	}

	if err := m.record(opDeleteShareLink, ShareLinkRecord{UserID: userID}); err != nil {
		return err
	}
	m.removeLink(userID)

	return nil
}

func (m *MemoryStorage) GetStats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Stats{
		Users:      len(m.users),
		Contents:   len(m.contents),
		ShareLinks: len(m.links),
	}, nil
}

// PingContext always succeeds for the in-memory storage.
func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}

// Close releases the journal, if any.
func (m *MemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.journal == nil {
		return nil
	}

	err := m.journal.Close()
	m.journal = nil
	return err
}

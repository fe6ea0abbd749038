package storage

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"focusos/models"
)

// MemoryEntryStore is an in-memory EntryStore with the same semantics
// as the Mongo one. Used by tests and by `serve --memory`.
type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries []models.Entry
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{}
}

func (s *MemoryEntryStore) UpsertMerge(_ context.Context, owner, date string, sessions []models.Session, notes string) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		e := &s.entries[i]
		if e.Owner != owner || e.Date != date {
			continue
		}
		e.Sessions = models.MergeSessions(e.Sessions, sessions)
		if notes != "" {
			e.Notes = notes
		}
		e.Rev++
		out := *e
		return &out, nil
	}

	entry := models.Entry{
		ID:       primitive.NewObjectID(),
		Owner:    owner,
		Date:     date,
		Sessions: models.NormalizeSessions(sessions),
		Notes:    notes,
		Rev:      1,
	}
	s.entries = append(s.entries, entry)
	return &entry, nil
}

func (s *MemoryEntryStore) Replace(_ context.Context, owner, entryID string, sessions []models.Session, notes string) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		e := &s.entries[i]
		if e.ID.Hex() != entryID || e.Owner != owner {
			continue
		}
		e.Sessions = models.NormalizeSessions(sessions)
		e.Notes = notes
		e.Rev++
		out := *e
		return &out, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryEntryStore) ListAll(_ context.Context, owner string) ([]models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Entry, 0)
	for _, e := range s.entries {
		if e.Owner == owner {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryEntryStore) DeleteByID(_ context.Context, owner, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID.Hex() == entryID && s.entries[i].Owner == owner {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ EntryStore = (*MemoryEntryStore)(nil)

// MemoryUserStore is the in-memory UserStore counterpart.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(_ context.Context, username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrUserExists
		}
	}
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Password: passwordHash,
		Tracks:   []models.Track{},
		Todos:    []models.Todo{},
	}
	s.users = append(s.users, user)
	return &user, nil
}

func (s *MemoryUserStore) ByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) ByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID.Hex() == id {
			out := u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) UpdateTracks(_ context.Context, id string, tracks []models.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			s.users[i].Tracks = tracks
			return nil
		}
	}
	return ErrUserNotFound
}

func (s *MemoryUserStore) UpdateTodos(_ context.Context, id string, todos []models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			s.users[i].Todos = todos
			return nil
		}
	}
	return ErrUserNotFound
}

var _ UserStore = (*MemoryUserStore)(nil)

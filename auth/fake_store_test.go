package auth

import (
	"context"
	"sync"
	"time"

	"github.com/user/cinelog-go/users"
)

// memStore is an in-memory users store for service and handler tests.
type memStore struct {
	mu      sync.Mutex
	rows    map[int64]users.User
	nextID  int64
	failErr error
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[int64]users.User)}
}

func (m *memStore) Create(_ context.Context, nu users.NewUser) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, u := range m.rows {
		if u.Username == nu.Username {
			return nil, users.ErrUsernameTaken
		}
		if u.Email == nu.Email {
			return nil, users.ErrEmailTaken
		}
	}
	m.nextID++
	now := time.Now()
	u := users.User{ID: m.nextID, Username: nu.Username, Email: nu.Email, PasswordHash: nu.PasswordHash, CreatedAt: now, UpdatedAt: now}
	m.rows[u.ID] = u
	u.PasswordHash = ""
	return &u, nil
}

func (m *memStore) FindByUsername(_ context.Context, username string) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, u := range m.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, users.ErrNotFound
}

func (m *memStore) FindByID(_ context.Context, id int64) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	u, ok := m.rows[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	u.PasswordHash = ""
	return &u, nil
}

func (m *memStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := m.FindByUsername(ctx, username)
	if err == users.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (m *memStore) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return false, m.failErr
	}
	for _, u := range m.rows {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

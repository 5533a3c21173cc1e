// Package inmemory provides map-backed repositories behind the same
// interfaces as the Postgres ones. Used for tests and local experiments;
// not intended for production data.
package inmemory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/dbx"
	"github.com/avasiljevs/itemvault/internal/server/models"
	itemsrepo "github.com/avasiljevs/itemvault/internal/server/repositories/items"
	tokensrepo "github.com/avasiljevs/itemvault/internal/server/repositories/tokens"
	usersrepo "github.com/avasiljevs/itemvault/internal/server/repositories/users"
)

// Manager hands out the shared in-memory repositories. The transaction
// handle is ignored; there is no transactional isolation here.
type Manager struct {
	users  *UsersRepository
	items  *ItemsRepository
	tokens *TokensRepository
}

// NewManager builds a Manager with empty repositories.
func NewManager() *Manager {
	return &Manager{
		users:  &UsersRepository{users: map[string]*models.User{}},
		items:  &ItemsRepository{items: map[string]*models.Item{}},
		tokens: &TokensRepository{tokens: map[string]*models.Token{}},
	}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) usersrepo.Repository   { return m.users }
func (m *Manager) Items(dbx.DBTX) itemsrepo.Repository   { return m.items }
func (m *Manager) Tokens(dbx.DBTX) tokensrepo.Repository { return m.tokens }

// UsersRepository is the in-memory users.Repository.
type UsersRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (r *UsersRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorConflict
		}
	}
	cp := *user
	cp.ID = uuid.NewString()
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *UsersRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UsersRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UsersRepository) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *UsersRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return common.ErrorNotFound
	}
	for _, u := range r.users {
		if u.Email == user.Email && u.ID != user.ID {
			return common.ErrorConflict
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UsersRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, id)
	return nil
}

// ItemsRepository is the in-memory items.Repository.
type ItemsRepository struct {
	mu    sync.Mutex
	items map[string]*models.Item
}

func (r *ItemsRepository) Create(_ context.Context, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	cp.ID = uuid.NewString()
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *ItemsRepository) GetByID(_ context.Context, id string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *ItemsRepository) ListAll(_ context.Context) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Item, 0, len(r.items))
	for _, i := range r.items {
		cp := *i
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ItemsRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Item
	for _, i := range r.items {
		if i.OwnerID == ownerID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ItemsRepository) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *ItemsRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}

// TokensRepository is the in-memory tokens.Repository, keyed by value.
type TokensRepository struct {
	mu     sync.Mutex
	tokens map[string]*models.Token
}

func (r *TokensRepository) Create(_ context.Context, token *models.Token) (*models.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token.Value]; ok {
		return nil, common.ErrorConflict
	}
	cp := *token
	cp.ID = uuid.NewString()
	r.tokens[cp.Value] = &cp
	out := cp
	return &out, nil
}

func (r *TokensRepository) FindByValue(_ context.Context, value string) (*models.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[value]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TokensRepository) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for v, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, v)
		}
	}
	return nil
}

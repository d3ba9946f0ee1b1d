package directory

import (
	"context"
	"sort"
	"sync"
	"time"

	"user-account-center/app/server/constants"
	"user-account-center/app/server/models"

	"github.com/google/uuid"
)

var _ Directory = (*MemDirectory)(nil)

// MemDirectory 为测试用的内存实现，语义与 GormDirectory 保持一致
type MemDirectory struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func NewMem() *MemDirectory {
	return &MemDirectory{users: make(map[uuid.UUID]*models.User)}
}

func (d *MemDirectory) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(user), nil
}

func (d *MemDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, user := range d.users {
		if user.Email == email {
			return clone(user), nil
		}
	}
	return nil, ErrNotFound
}

func (d *MemDirectory) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, user := range d.users {
		if user.Username == username {
			return clone(user), nil
		}
	}
	return nil, ErrNotFound
}

func (d *MemDirectory) Create(ctx context.Context, user *models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conflicts(user.Email, user.Username, uuid.Nil) {
		return ErrConflict
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().In(constants.AppTimezone)
	user.CreatedAt = now
	user.UpdatedAt = now

	d.users[user.ID] = clone(user)
	return nil
}

func (d *MemDirectory) Update(ctx context.Context, id uuid.UUID, patch *Patch) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := clone(user)
	patch.Apply(updated)

	if d.conflicts(updated.Email, updated.Username, id) {
		return nil, ErrConflict
	}

	updated.UpdatedAt = time.Now().In(constants.AppTimezone)
	d.users[id] = updated
	return clone(updated), nil
}

func (d *MemDirectory) Delete(ctx context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[id]; !ok {
		return ErrNotFound
	}
	delete(d.users, id)
	return nil
}

func (d *MemDirectory) List(ctx context.Context, offset int, limit int) ([]models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	all := make([]models.User, 0, len(d.users))
	for _, user := range d.users {
		all = append(all, *clone(user))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	if limit <= 0 {
		return all, nil
	}
	if offset >= len(all) {
		return []models.User{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (d *MemDirectory) Count(ctx context.Context) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return int64(len(d.users)), nil
}

func (d *MemDirectory) conflicts(email, username string, selfID uuid.UUID) bool {
	for _, user := range d.users {
		if user.ID == selfID {
			continue
		}
		if user.Email == email || user.Username == username {
			return true
		}
	}
	return false
}

func clone(user *models.User) *models.User {
	copied := *user
	if user.Settings != nil {
		copied.Settings = make(map[string]string, len(user.Settings))
		for k, v := range user.Settings {
			copied.Settings[k] = v
		}
	}
	return &copied
}

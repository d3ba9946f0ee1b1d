package directory

import (
	"context"
	"testing"

	"user-account-center/app/server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email, username string) *models.User {
	return &models.User{
		Email:          email,
		Username:       username,
		HashedPassword: "hashed",
		Role:           models.RoleUser,
		IsActive:       true,
	}
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	dir := NewMem()

	user := newUser("a@x.com", "alice1")
	require.NoError(t, dir.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := dir.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice1", byID.Username)

	byEmail, err := dir.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := dir.FindByUsername(ctx, "alice1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	// 查找是大小写敏感的
	_, err = dir.FindByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateConflict(t *testing.T) {
	ctx := context.Background()
	dir := NewMem()

	require.NoError(t, dir.Create(ctx, newUser("a@x.com", "alice1")))

	// 邮箱冲突
	err := dir.Create(ctx, newUser("a@x.com", "bobby1"))
	assert.ErrorIs(t, err, ErrConflict)

	// 用户名冲突
	err = dir.Create(ctx, newUser("b@x.com", "alice1"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	dir := NewMem()

	user := newUser("a@x.com", "alice1")
	user.Settings = map[string]string{"theme": "dark"}
	require.NoError(t, dir.Create(ctx, user))

	email := "new@x.com"
	updated, err := dir.Update(ctx, user.ID, &Patch{Email: &email})
	require.NoError(t, err)

	// 只有补丁中的字段被改动
	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, "alice1", updated.Username)
	assert.Equal(t, map[string]string{"theme": "dark"}, updated.Settings)
	assert.False(t, updated.UpdatedAt.Before(user.UpdatedAt))
}

func TestUpdateConflictAndNotFound(t *testing.T) {
	ctx := context.Background()
	dir := NewMem()

	require.NoError(t, dir.Create(ctx, newUser("a@x.com", "alice1")))
	bob := newUser("b@x.com", "bobby1")
	require.NoError(t, dir.Create(ctx, bob))

	username := "alice1"
	_, err := dir.Update(ctx, bob.ID, &Patch{Username: &username})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = dir.Update(ctx, uuid.New(), &Patch{Username: &username})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	dir := NewMem()

	user := newUser("a@x.com", "alice1")
	require.NoError(t, dir.Create(ctx, user))

	require.NoError(t, dir.Delete(ctx, user.ID))
	_, err := dir.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, dir.Delete(ctx, user.ID), ErrNotFound)
}

func TestListAndCount(t *testing.T) {
	ctx := context.Background()
	dir := NewMem()

	require.NoError(t, dir.Create(ctx, newUser("a@x.com", "alice1")))
	require.NoError(t, dir.Create(ctx, newUser("b@x.com", "bobby1")))
	require.NoError(t, dir.Create(ctx, newUser("c@x.com", "carol1")))

	all, err := dir.List(ctx, 0, -1)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := dir.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	count, err := dir.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

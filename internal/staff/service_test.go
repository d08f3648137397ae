package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byEmail   map[string]*Account
	created   *Account
	lastLogin *time.Time
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*Account, error) {
	if a, ok := f.byEmail[email]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*Account, error) {
	return nil, ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, a *Account) error {
	a.ID = "staff-1"
	f.created = a
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, _ string, t time.Time) error {
	f.lastLogin = &t
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Account, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }
func (f *fakeRepo) Delete(_ context.Context, _ string) error            { return nil }

// fakeHasher marks hashes with a prefix so Compare can tell them apart
// without touching bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return ErrInvalidCredentials
	}
	return nil
}

func TestRegister(t *testing.T) {
	repo := &fakeRepo{byEmail: map[string]*Account{}}
	svc := NewService(repo, fakeHasher{})

	a, err := svc.Register(context.Background(), "  Admin@Example.COM ", "secret-password", " Admin ", true)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", a.Email)
	assert.Equal(t, "hashed:secret-password", a.PasswordHash)
	require.NotNil(t, a.DisplayName)
	assert.Equal(t, "Admin", *a.DisplayName)
	assert.True(t, a.IsActive)
	assert.True(t, a.IsAdmin)
}

func TestRegisterValidation(t *testing.T) {
	existing := &Account{ID: "staff-0", Email: "taken@example.com"}
	repo := &fakeRepo{byEmail: map[string]*Account{"taken@example.com": existing}}
	svc := NewService(repo, fakeHasher{})

	_, err := svc.Register(context.Background(), "  ", "secret-password", "", false)
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(context.Background(), "new@example.com", "short", "", false)
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register(context.Background(), "taken@example.com", "secret-password", "", false)
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	account := &Account{
		ID:           "staff-1",
		Email:        "admin@example.com",
		PasswordHash: "hashed:secret-password",
		IsActive:     true,
	}
	repo := &fakeRepo{byEmail: map[string]*Account{"admin@example.com": account}}
	svc := NewService(repo, fakeHasher{})

	a, err := svc.Login(context.Background(), "Admin@Example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "staff-1", a.ID)
	assert.NotNil(t, repo.lastLogin)
}

func TestLoginFailures(t *testing.T) {
	account := &Account{
		ID:           "staff-1",
		Email:        "admin@example.com",
		PasswordHash: "hashed:secret-password",
		IsActive:     true,
	}
	inactive := &Account{
		ID:           "staff-2",
		Email:        "gone@example.com",
		PasswordHash: "hashed:secret-password",
		IsActive:     false,
	}
	repo := &fakeRepo{byEmail: map[string]*Account{
		"admin@example.com": account,
		"gone@example.com":  inactive,
	}}
	svc := NewService(repo, fakeHasher{})

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "unknown@example.com", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "gone@example.com", "secret-password")
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

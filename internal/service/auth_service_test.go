package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/priyanshuKshk/dealer-info-api/internal/models"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

type fakeAdminStore struct {
	byEmail map[string]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{byEmail: make(map[string]*models.Admin)}
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = uuid.New().String()
	cp := *admin
	f.byEmail[admin.Email] = &cp
	return nil
}

func newTestAuthService() (*AuthService, *fakeAdminStore, *utils.TokenIssuer) {
	store := newFakeAdminStore()
	tokens := utils.NewTokenIssuer("test-secret", 24*time.Hour)
	return NewAuthService(store, tokens), store, tokens
}

func TestSignup_IssuesValidAdminToken(t *testing.T) {
	svc, store, tokens := newTestAuthService()

	token, err := svc.Signup(context.Background(), "Priya", "Priya@Example.com", "s3cret")

	require.NoError(t, err)
	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.AdminID)

	// The email is stored lowercased and the password is never kept in
	// the clear.
	admin, ok := store.byEmail["priya@example.com"]
	require.True(t, ok)
	assert.NotEqual(t, "s3cret", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), "Priya", "priya@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "Copycat", "PRIYA@example.com", "other")

	assert.ErrorIs(t, err, utils.ErrEmailRegistered)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, utils.ErrAdminNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	_, err := svc.Signup(context.Background(), "Priya", "priya@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "priya@example.com", "wrong")

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	_, err := svc.Signup(context.Background(), "Priya", "priya@example.com", "s3cret")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "  Priya@Example.com ", "s3cret")

	require.NoError(t, err)
	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

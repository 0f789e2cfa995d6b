package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/teruzahostel/minimarket-backend/pkg/auth"
	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
	"github.com/teruzahostel/minimarket-backend/pkg/security"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "teruza",
		ExpirationMinutes: 30,
	}
}

type fakeUserRepo struct {
	user       *models.User
	lastLogins int
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, _ time.Time) error {
	f.lastLogins++
	return nil
}

type fakeSessions struct {
	created []string
	revoked []string
}

func (f *fakeSessions) Create(_ context.Context, accessID string) error {
	f.created = append(f.created, accessID)
	return nil
}

func (f *fakeSessions) Revoke(_ context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	return nil
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func buildTestService(t *testing.T, user *models.User) (Service, *fakeUserRepo, *fakeSessions) {
	t.Helper()
	repo := &fakeUserRepo{user: user}
	sessions := &fakeSessions{}
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, repo, sessions
}

func TestServiceLogin(t *testing.T) {
	password := "hostel-secret"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@teruza.com",
		PasswordHash: mustHashPassword(t, password),
		Name:         "Teruza Admin",
		IsActive:     true,
	}
	svc, repo, sessions := buildTestService(t, user)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Admin@Teruza.com",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if resp.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %s", resp.TokenType)
	}
	if resp.User == nil || resp.User.Email != user.Email {
		t.Fatalf("expected user in response")
	}
	if repo.lastLogins != 1 {
		t.Fatalf("expected last login to be recorded once, got %d", repo.lastLogins)
	}
	if len(sessions.created) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions.created))
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id claim %s, got %s", user.ID, claims.UserID)
	}
	if claims.ID != sessions.created[0] {
		t.Fatalf("expected jti to match stored session")
	}
}

func TestServiceLoginRejectsBadCredentials(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@teruza.com",
		PasswordHash: mustHashPassword(t, "right"),
		IsActive:     true,
	}
	svc, _, sessions := buildTestService(t, user)

	cases := []LoginRequest{
		{Email: "admin@teruza.com", Password: "wrong"},
		{Email: "unknown@teruza.com", Password: "right"},
		{Email: "  ", Password: "right"},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		var appErr *pkgerrors.Error
		if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized for %+v, got %v", req, err)
		}
	}
	if len(sessions.created) != 0 {
		t.Fatalf("no sessions should be created on failed logins")
	}
}

func TestServiceLoginRejectsInactiveUser(t *testing.T) {
	password := "hostel-secret"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@teruza.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     false,
	}
	svc, _, _ := buildTestService(t, user)

	_, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for inactive user, got %v", err)
	}
}

func TestServiceMeAndLogout(t *testing.T) {
	user := &models.User{
		ID:       uuid.New(),
		Email:    "admin@teruza.com",
		Name:     "Teruza Admin",
		IsActive: true,
	}
	svc, _, sessions := buildTestService(t, user)

	dto, err := svc.Me(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if dto.Name != user.Name {
		t.Fatalf("unexpected name %s", dto.Name)
	}

	_, err = svc.Me(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}

	if err := svc.Logout(context.Background(), "access-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "access-1" {
		t.Fatalf("expected session revocation")
	}
}

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/boxstory/yk/config"
	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/pkg/jwt"
)

// ── fake blacklist ──

type memBlacklist struct {
	mu  sync.Mutex
	ids map[string]time.Duration
}

func newMemBlacklist() *memBlacklist { return &memBlacklist{ids: make(map[string]time.Duration)} }

func (b *memBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ids[jti] = ttl
	return nil
}

func (b *memBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.ids[jti]
	return ok, nil
}

// ── test helpers ──

func setupTestAuthService() (AuthService, *memStore, *jwt.Manager, *memBlacklist) {
	store := newMemStore()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-for-unit-testing",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	bl := newMemBlacklist()
	svc := NewAuthService(newTestRepository(store), jwtMgr, bl, zap.NewNop())
	return svc, store, jwtMgr, bl
}

func createTestUser(store *memStore, email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	store.mu.Lock()
	defer store.mu.Unlock()
	user := &model.User{
		UserID:       store.nextID("user"),
		Name:         "Test Landlord",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleLandlord,
		IsBusiness:   true,
	}
	store.users[user.UserID] = user
	return user
}

// ── Login ──

func TestLogin_Success(t *testing.T) {
	svc, store, jwtMgr, _ := setupTestAuthService()
	user := createTestUser(store, "owner@example.com", "password123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Owner@Example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("expected ExpiresIn=900, got %d", result.ExpiresIn)
	}
	if result.User.ID != user.UserID {
		t.Errorf("expected user %s, got %s", user.UserID, result.User.ID)
	}

	claims, err := jwtMgr.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("access token does not parse: %v", err)
	}
	if claims.UserID != user.UserID || claims.Role != model.RoleLandlord || claims.TokenType != jwt.TokenTypeAccess {
		t.Errorf("unexpected claims %+v", claims)
	}
	if !claims.Business {
		t.Error("business account must carry the business claim")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()
	createTestUser(store, "owner@example.com", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "owner@example.com", Password: "nope"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ── Register ──

func TestRegister_Success(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()

	got, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:       "New Owner",
		Email:      "New@Example.com",
		Password:   "password123",
		Role:       model.RoleLandlord,
		IsBusiness: true,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got.Email != "new@example.com" {
		t.Errorf("email should be normalised, got %s", got.Email)
	}

	stored := store.users[got.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")) != nil {
		t.Error("password must be stored as a bcrypt hash")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()
	createTestUser(store, "owner@example.com", "password123")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Again", Email: "owner@example.com", Password: "password123", Role: model.RoleRealtor,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_AdminNotSelfService(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Root", Email: "root@example.com", Password: "password123", Role: model.RoleAdmin,
	})
	if err == nil {
		t.Fatal("admin registration must be rejected")
	}
}

// ── Refresh / Logout ──

func TestRefresh_RotatesAndRevokes(t *testing.T) {
	svc, store, jwtMgr, bl := setupTestAuthService()
	createTestUser(store, "owner@example.com", "password123")
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "owner@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}

	old, _ := jwtMgr.ParseToken(login.RefreshToken)
	if revoked, _ := bl.IsBlacklisted(ctx, old.ID); !revoked {
		t.Error("used refresh token should be revoked")
	}
	if _, err := svc.Refresh(ctx, login.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reusing a refresh token: expected ErrInvalidToken, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()
	createTestUser(store, "owner@example.com", "password123")

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{Email: "owner@example.com", Password: "password123"})
	if _, err := svc.Refresh(context.Background(), login.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLogout_Blacklists(t *testing.T) {
	svc, _, _, bl := setupTestAuthService()

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if ttl, ok := bl.ids["jti-1"]; !ok || ttl <= 0 {
		t.Errorf("expected jti-1 blacklisted with positive ttl, got %v", ttl)
	}
}

func TestLogout_NoBlacklist(t *testing.T) {
	jwtMgr := jwt.NewManager(&config.AuthConfig{JWTSecret: "test-secret-key-for-unit-testing"})
	svc := NewAuthService(newTestRepository(newMemStore()), jwtMgr, nil, zap.NewNop())

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Minute)); err != nil {
		t.Errorf("logout without redis should not fail: %v", err)
	}
}

func TestMe(t *testing.T) {
	svc, store, _, _ := setupTestAuthService()
	user := createTestUser(store, "owner@example.com", "password123")

	got, err := svc.Me(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if got.Email != "owner@example.com" || !got.IsBusiness {
		t.Errorf("unexpected profile %+v", got)
	}
	if _, err := svc.Me(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := cloneUser(user)
	copy.ID = uint(len(r.users) + 1)
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) Blocked(_ context.Context, _ string) (bool, error) { return l.blocked, nil }
func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}
func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func newTestService(repo ports.UserRepository, limiter LoginLimiter) *AuthService {
	return NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo, nil)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("registration must never create admins")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo, nil)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "pass"})
	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "other@example.com", Password: "pass"})
	if err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo, nil)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Email: "carol@example.com", Password: "pass"})
	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carola", Email: "carol@example.com", Password: "pass"})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newTestService(repo, limiter)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Email: "carol@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if limiter.resets != 1 {
		t.Fatalf("expected failure counter reset, got %d", limiter.resets)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "carol" {
		t.Fatalf("expected sub carol, got %v", claims["sub"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newTestService(repo, limiter)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Email: "dave@example.com", Password: "goodpass"})
	if _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc := newTestService(newStubUserRepo(), nil)

	// Unknown accounts fail identically to wrong passwords.
	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Blocked(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo, &stubLimiter{blocked: true})

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "eve", Email: "eve@example.com", Password: "pass"})
	if _, err := svc.Login(context.Background(), "eve", "pass"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo, nil)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "frank", Email: "frank@example.com", Password: "pass"})
	token, err := svc.Login(context.Background(), "frank", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), token)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Username != "frank" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_CurrentUser_Expired(t *testing.T) {
	svc := newTestService(newStubUserRepo(), nil)

	claims := jwt.MapClaims{
		"sub": "frank",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.CurrentUser(context.Background(), token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_CurrentUser_WrongKey(t *testing.T) {
	svc := newTestService(newStubUserRepo(), nil)

	claims := jwt.MapClaims{"sub": "frank", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.CurrentUser(context.Background(), token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_CurrentUser_SubjectDeleted(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo, nil)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "gone", Email: "gone@example.com", Password: "pass"})
	token, err := svc.Login(context.Background(), "gone", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.users, "gone")

	if _, err := svc.CurrentUser(context.Background(), token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

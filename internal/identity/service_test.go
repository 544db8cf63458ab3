package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
	userrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/user/repository"
)

type mockUserRepo struct {
	findByUsernameFunc func(ctx context.Context, username string) (userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) error {
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	return userdomain.User{}, userrepo.ErrUserNotFound
}

type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash string, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("mismatch")
}

func setupIdentityService(t *testing.T) (*Service, *mockUserRepo) {
	t.Helper()
	mockRepo := &mockUserRepo{}
	log, _ := logger.New("", "test", "info")
	issuer := NewTokenIssuer(testSecret, time.Hour)
	svc := NewService(mockRepo, &mockHasher{}, issuer, log)
	return svc, mockRepo
}

func TestService_Login_Success(t *testing.T) {
	svc, mockRepo := setupIdentityService(t)

	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (userdomain.User, error) {
		return userdomain.User{
			ID:           "user-id-1",
			Username:     "user1",
			PasswordHash: "hashed:secret1234",
		}, nil
	}

	token, err := svc.Login(context.Background(), "user1", "secret1234")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	principal, err := ParseToken(token, []byte(testSecret))
	if err != nil {
		t.Fatalf("expected parseable token, got %v", err)
	}
	if principal.UserID != "user-id-1" || principal.Username != "user1" {
		t.Errorf("unexpected principal %+v", principal)
	}
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupIdentityService(t)

	_, err := svc.Login(context.Background(), "nobody", "secret1234")
	if err == nil {
		t.Fatal("expected error")
	}
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.Code() != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", err)
	}
}

func TestService_Login_BadPassword(t *testing.T) {
	svc, mockRepo := setupIdentityService(t)

	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (userdomain.User, error) {
		return userdomain.User{
			ID:           "user-id-1",
			Username:     "user1",
			PasswordHash: "hashed:secret1234",
		}, nil
	}

	_, err := svc.Login(context.Background(), "user1", "wrong-password")
	if err == nil {
		t.Fatal("expected error")
	}
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.Code() != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", err)
	}
}

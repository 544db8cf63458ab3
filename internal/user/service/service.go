package service

import (
	"context"
	"errors"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/clock"
	commoncrypto "github.com/LEEEUNCHEOL96/sbb-board/internal/common/crypto"
	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
	userrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/user/repository"
)

// UserService attributes authorship and votes, and registers new members.
type UserService struct {
	repo        userrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

func NewUserService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	idGenerator commoncrypto.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		hasher:      hasher,
		idGenerator: idGenerator,
		clock:       clk,
		log:         log,
	}
}

func (s *UserService) GetUser(ctx context.Context, username string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return domain.User{}, commonerrors.ErrUserNotFound
		}
		return domain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return user, nil
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (domain.User, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "signup_attempt",
	}).Info("signup attempt")

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.Errorf("signup failed: password hash error: %v", err)
		return domain.User{}, commonerrors.ErrInternalError.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.Errorf("signup failed: id generation error: %v", err)
		return domain.User{}, commonerrors.ErrInternalError.WithCause(err)
	}

	user := domain.User{
		ID:           domain.ID(id),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "signup_username_exists",
			}).Warn("signup failed: username already exists")
			return domain.User{}, commonerrors.ErrUsernameAlreadyExists
		}
		s.log.Errorf("signup failed: %v", err)
		return domain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "signup_success",
	}).Info("signup success")

	return user, nil
}

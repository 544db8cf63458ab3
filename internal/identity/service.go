package identity

import (
	"context"
	"errors"

	commoncrypto "github.com/LEEEUNCHEOL96/sbb-board/internal/common/crypto"
	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	userrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/user/repository"
)

// Service authenticates board members and issues access tokens. It is the
// identity collaborator the request handlers consume; the board core never
// touches credentials.
type Service struct {
	users  userrepo.Repository
	hasher commoncrypto.PasswordHasher
	issuer *TokenIssuer
	log    *logger.Logger
}

func NewService(
	users userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	issuer *TokenIssuer,
	log *logger.Logger,
) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		log:    log,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": username,
				"action":   "login_unknown_user",
			}).Warn("login failed: unknown user")
			return "", commonerrors.ErrInvalidCredentials
		}
		s.log.Errorf("login failed: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_bad_password",
		}).Warn("login failed: bad password")
		return "", commonerrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(string(user.ID), user.Username)
	if err != nil {
		s.log.Errorf("login failed: token issue error: %v", err)
		return "", commonerrors.ErrInternalError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "login_success",
	}).Info("login success")

	return token, nil
}

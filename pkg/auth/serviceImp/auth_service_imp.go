package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cropadvisor/entities"
	repo "cropadvisor/pkg/auth/repository"
	"cropadvisor/pkg/auth/service"
	"cropadvisor/pkg/auth/session"
)

type authSvc struct {
	r        repo.AccountRepository
	sessions *session.Manager
	cost     int
	dummy    []byte
	log      *zap.Logger
}

// NewAuthService hashes with the given bcrypt cost; zero means bcrypt.DefaultCost.
func NewAuthService(r repo.AccountRepository, sessions *session.Manager, cost int, log *zap.Logger) (service.AuthService, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	// Compared against when the email is unknown so both failure paths cost one bcrypt check.
	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	return &authSvc{r: r, sessions: sessions, cost: cost, dummy: dummy, log: log}, nil
}

func (s *authSvc) Register(ctx context.Context, name, email, password string) (*entities.Account, error) {
	email = strings.TrimSpace(email)
	exists, err := s.r.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, service.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, service.ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &entities.Account{Name: strings.TrimSpace(name), Email: email, PasswordHash: string(hash)}
	if err := s.r.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, service.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	s.log.Info("account registered", zap.Uint("account_id", a.ID))
	return a, nil
}

func (s *authSvc) Authenticate(ctx context.Context, email, password string) (string, *entities.Account, error) {
	a, err := s.r.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", nil, fmt.Errorf("find account: %w", err)
	}

	hash := s.dummy
	if a != nil {
		hash = []byte(a.PasswordHash)
	}
	if cmpErr := bcrypt.CompareHashAndPassword(hash, []byte(password)); cmpErr != nil || a == nil {
		return "", nil, service.ErrInvalidCredentials
	}

	tok, err := s.sessions.Issue(a.ID)
	if err != nil {
		return "", nil, err
	}
	return tok, a, nil
}

func (s *authSvc) RequireSession(ctx context.Context, token string) (*entities.Account, error) {
	if token == "" {
		return nil, service.ErrUnauthenticated
	}
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return nil, service.ErrUnauthenticated
	}
	a, err := s.r.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, service.ErrUnauthenticated
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return a, nil
}

func (s *authSvc) EndSession(ctx context.Context, token string) error {
	claims, err := s.sessions.Parse(token)
	if err != nil {
		// Already invalid; nothing to end.
		return nil
	}
	s.sessions.Revoke(claims)
	s.log.Info("session ended", zap.Uint("account_id", claims.AccountID))
	return nil
}

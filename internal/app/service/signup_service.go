package service

import (
	"context"
	"errors"
	"log"
	"time"

	"canonforces/internal/common"
	"canonforces/internal/common/security"
	"canonforces/internal/domain/model"
	"canonforces/internal/domain/repository"
	"canonforces/internal/identity"
)

const minPasswordLength = 6

// Registry answers the two uniqueness questions gating signup.
type Registry interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	UsernameAlreadyLinked(ctx context.Context, username string) (bool, error)
}

// TokenIssuer mints the session token returned on success.
type TokenIssuer func(userID, role string) (string, error)

// SignupService orchestrates account creation across the identity provider,
// the platform registry, and the user-record store. Every external call is
// awaited before the next; a record must never outlive its provider account,
// so the password path compensates by deleting the account it created
// whenever a later step fails. The federated path never compensates: those
// accounts belong to the provider and must survive for retry.
type SignupService struct {
	provider   identity.Provider
	users      repository.UserRecordRepository
	registry   Registry
	issueToken TokenIssuer
	now        func() time.Time
}

func NewSignupService(provider identity.Provider, users repository.UserRecordRepository, registry Registry) *SignupService {
	return &SignupService{
		provider:   provider,
		users:      users,
		registry:   registry,
		issueToken: security.GenerateToken,
		now:        time.Now,
	}
}

type GoogleSignupRequest struct {
	IDToken  string `json:"id_token"`
	Username string `json:"username"`
}

type SignupResponse struct {
	User       *model.UserRecord `json:"user"`
	Token      string            `json:"token"`
	RedirectTo string            `json:"redirect_to"`
}

// EmailSignup runs the password path. The account is created first because
// the store's authorization rule only answers authenticated callers; the
// uniqueness checks follow, and any failure after creation rolls the account
// back before surfacing the error.
func (s *SignupService) EmailSignup(ctx context.Context, candidate model.SignupCandidate) (*SignupResponse, error) {
	if candidate.Username == "" || candidate.Fullname == "" || candidate.Email == "" || candidate.Password == "" {
		return nil, common.Errorf("all fields are required: %w", common.ErrBadRequest)
	}
	if len(candidate.Password) < minPasswordLength {
		return nil, common.Errorf("password must be at least 6 characters: %w", common.ErrValidation)
	}

	acct, err := s.provider.CreateAccount(ctx, candidate.Email, candidate.Password)
	if err != nil {
		// Nothing was created; surface as-is. Duplicate emails come back
		// already mapped by the provider.
		return nil, s.surface(err)
	}

	// A freshly minted token is required before the store's gated reads.
	if err := s.provider.RefreshToken(ctx, acct); err != nil {
		s.compensate(ctx, acct)
		return nil, s.surface(err)
	}

	exists, err := s.registry.UsernameExists(ctx, candidate.Username)
	if err != nil {
		s.compensate(ctx, acct)
		return nil, s.surface(err)
	}
	if !exists {
		s.compensate(ctx, acct)
		return nil, common.ErrUnknownPlatformUsername
	}

	taken, err := s.registry.UsernameAlreadyLinked(ctx, candidate.Username)
	if err != nil {
		s.compensate(ctx, acct)
		return nil, s.surface(err)
	}
	if taken {
		s.compensate(ctx, acct)
		return nil, common.ErrUsernameAlreadyRegistered
	}

	record := model.NewUserRecord(acct.SubjectID, candidate.Username, candidate.Fullname, candidate.Email, s.now().UnixMilli())
	if err := s.users.Put(ctx, acct, record); err != nil {
		s.compensate(ctx, acct)
		return nil, s.surface(err)
	}

	return s.succeed(record)
}

// GoogleSignup runs the federated path. An existing record short-circuits to
// the dashboard (idempotent re-login). Failures after sign-in leave the
// provider account untouched: the user stays authenticated and can retry.
func (s *SignupService) GoogleSignup(ctx context.Context, req GoogleSignupRequest) (*SignupResponse, error) {
	if req.IDToken == "" {
		return nil, common.ErrPopupCancelled
	}
	if req.Username == "" {
		return nil, common.Errorf("please enter your codeforces username first: %w", common.ErrBadRequest)
	}

	acct, err := s.provider.FederatedSignIn(ctx, req.IDToken)
	if err != nil {
		return nil, s.surface(err)
	}
	if acct.Email == "" {
		return nil, common.Errorf("could not retrieve details from google: %w", common.ErrUnexpected)
	}

	if err := s.provider.RefreshToken(ctx, acct); err != nil {
		return nil, s.surface(err)
	}

	existing, err := s.users.Get(ctx, acct, acct.SubjectID)
	if err == nil {
		return s.succeed(existing)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, s.surface(err)
	}

	exists, err := s.registry.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, s.surface(err)
	}
	if !exists {
		return nil, common.ErrUnknownPlatformUsername
	}

	taken, err := s.registry.UsernameAlreadyLinked(ctx, req.Username)
	if err != nil {
		return nil, s.surface(err)
	}
	if taken {
		return nil, common.ErrUsernameAlreadyRegistered
	}

	record := model.NewUserRecord(acct.SubjectID, req.Username, acct.DisplayName, acct.Email, s.now().UnixMilli())
	if err := s.users.Put(ctx, acct, record); err != nil {
		return nil, s.surface(err)
	}

	return s.succeed(record)
}

func (s *SignupService) succeed(record *model.UserRecord) (*SignupResponse, error) {
	token, err := s.issueToken(record.UserID, model.RoleUser)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &SignupResponse{
		User:       record,
		Token:      token,
		RedirectTo: common.RouteDashboard,
	}, nil
}

// compensate deletes the account the password path created. A failed delete
// is logged, never re-surfaced; the caller already holds the original error.
func (s *SignupService) compensate(ctx context.Context, acct *model.Account) {
	if err := s.provider.DeleteAccount(ctx, acct); err != nil {
		log.Printf("ERROR: failed to delete orphaned account %s: %v", acct.SubjectID, err)
	}
}

// surface keeps taxonomy errors intact and collapses everything else into the
// catch-all. The taxonomy is decided at the collaborator boundaries, so this
// never inspects error shapes.
func (s *SignupService) surface(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail),
		errors.Is(err, common.ErrUnknownPlatformUsername),
		errors.Is(err, common.ErrUsernameAlreadyRegistered),
		errors.Is(err, common.ErrPermissionDenied),
		errors.Is(err, common.ErrPopupCancelled),
		errors.Is(err, common.ErrBadRequest),
		errors.Is(err, common.ErrValidation):
		return err
	default:
		log.Printf("ERROR: signup failed: %v", err)
		return common.ErrUnexpected
	}
}

// Package identity abstracts the external account service behind an explicit
// interface. Failures the workflow must branch on (duplicate email, cancelled
// federated sign-in) are returned as sentinel errors from internal/common,
// decided here at the call boundary rather than by inspecting error shapes
// upstream.
package identity

import (
	"context"

	"canonforces/internal/domain/model"
)

type Provider interface {
	// CreateAccount registers a new email+password account and returns an
	// authenticated session for it. Returns common.ErrDuplicateEmail when the
	// email is already registered.
	CreateAccount(ctx context.Context, email, password string) (*model.Account, error)

	// FederatedSignIn exchanges a broker-issued id token for an authenticated
	// session. Returns common.ErrPopupCancelled when the client reported a
	// cancelled sign-in (empty token).
	FederatedSignIn(ctx context.Context, idToken string) (*model.Account, error)

	// RefreshToken forces a fresh credential for the account. Required before
	// the store's authorization-gated reads; a stale token may be rejected.
	RefreshToken(ctx context.Context, acct *model.Account) error

	// DeleteAccount removes the account. Used only as compensation for
	// password-path accounts this workflow created itself.
	DeleteAccount(ctx context.Context, acct *model.Account) error
}

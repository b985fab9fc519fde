package identity

import (
	"context"
	"testing"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGhostAccount() *model.Account {
	return &model.Account{SubjectID: "ghost"}
}

func TestLocalProviderCreateAndDelete(t *testing.T) {
	p := NewLocalProvider()
	ctx := context.Background()

	acct, err := p.CreateAccount(ctx, "t@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, acct.SubjectID)
	assert.NotEmpty(t, acct.IDToken)

	// Same email again, regardless of case.
	_, err = p.CreateAccount(ctx, "T@Example.com", "hunter22")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	// After deletion the email is free again.
	require.NoError(t, p.DeleteAccount(ctx, acct))
	_, err = p.CreateAccount(ctx, "t@example.com", "hunter22")
	require.NoError(t, err)
}

func TestLocalProviderDeleteUnknownAccount(t *testing.T) {
	p := NewLocalProvider()
	err := p.DeleteAccount(context.Background(), newGhostAccount())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestLocalProviderRefreshRotatesToken(t *testing.T) {
	p := NewLocalProvider()
	acct, err := p.CreateAccount(context.Background(), "t@example.com", "hunter22")
	require.NoError(t, err)

	before := acct.IDToken
	require.NoError(t, p.RefreshToken(context.Background(), acct))
	assert.NotEqual(t, before, acct.IDToken)
}

func TestLocalProviderFederatedSignIn(t *testing.T) {
	p := NewLocalProvider()

	_, err := p.FederatedSignIn(context.Background(), "")
	require.ErrorIs(t, err, common.ErrPopupCancelled)

	_, err = p.FederatedSignIn(context.Background(), "some-token")
	require.Error(t, err)
}

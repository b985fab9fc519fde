package identity

import (
	"context"
	"strings"
	"sync"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider is an in-memory Provider for development and tests. Accounts
// live for the lifetime of the process.
type LocalProvider struct {
	mu       sync.Mutex
	accounts map[string]*localAccount // keyed by lowercase email
}

type localAccount struct {
	subjectID    string
	email        string
	passwordHash []byte
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{accounts: make(map[string]*localAccount)}
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (*model.Account, error) {
	key := strings.ToLower(email)

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.accounts[key]; exists {
		return nil, common.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.Errorf("failed to hash password: %w", err)
	}

	acct := &localAccount{
		subjectID:    uuid.NewString(),
		email:        email,
		passwordHash: hash,
	}
	p.accounts[key] = acct

	return &model.Account{
		SubjectID:    acct.subjectID,
		Email:        email,
		IDToken:      uuid.NewString(),
		RefreshToken: uuid.NewString(),
	}, nil
}

func (p *LocalProvider) FederatedSignIn(ctx context.Context, idToken string) (*model.Account, error) {
	if idToken == "" {
		return nil, common.ErrPopupCancelled
	}
	return nil, common.Errorf("local identity backend does not support federated sign-in: %w", common.ErrUnexpected)
}

func (p *LocalProvider) RefreshToken(ctx context.Context, acct *model.Account) error {
	acct.IDToken = uuid.NewString()
	return nil
}

func (p *LocalProvider) DeleteAccount(ctx context.Context, acct *model.Account) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, stored := range p.accounts {
		if stored.subjectID == acct.SubjectID {
			delete(p.accounts, key)
			return nil
		}
	}
	return common.ErrNotFound
}

package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"
)

// GoogleProvider talks to the Google Identity Toolkit REST API (the service
// backing Firebase Authentication).
type GoogleProvider struct {
	Endpoint      string // https://identitytoolkit.googleapis.com
	TokenEndpoint string // https://securetoken.googleapis.com
	APIKey        string
	Client        *http.Client
}

func NewGoogleProvider(endpoint, tokenEndpoint, apiKey string) *GoogleProvider {
	return &GoogleProvider{
		Endpoint:      endpoint,
		TokenEndpoint: tokenEndpoint,
		APIKey:        apiKey,
		Client:        http.DefaultClient,
	}
}

type toolkitError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type signUpResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

func (p *GoogleProvider) post(ctx context.Context, rawURL string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", rawURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var te toolkitError
		if json.Unmarshal(raw, &te) == nil && te.Error.Message != "" {
			return mapToolkitError(te.Error.Message)
		}
		return fmt.Errorf("identity toolkit http %d: %s", resp.StatusCode, raw)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// mapToolkitError converts the toolkit's string codes into domain errors.
func mapToolkitError(message string) error {
	code := message
	if i := strings.IndexAny(code, " :"); i > 0 {
		code = code[:i]
	}
	switch code {
	case "EMAIL_EXISTS":
		return common.ErrDuplicateEmail
	case "PERMISSION_DENIED", "INSUFFICIENT_PERMISSION":
		return common.ErrPermissionDenied
	default:
		return fmt.Errorf("identity toolkit: %s", message)
	}
}

func (p *GoogleProvider) CreateAccount(ctx context.Context, email, password string) (*model.Account, error) {
	var resp signUpResponse
	err := p.post(ctx, p.Endpoint+"/v1/accounts:signUp?key="+url.QueryEscape(p.APIKey), map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &model.Account{
		SubjectID:    resp.LocalID,
		Email:        resp.Email,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (p *GoogleProvider) FederatedSignIn(ctx context.Context, idToken string) (*model.Account, error) {
	if idToken == "" {
		return nil, common.ErrPopupCancelled
	}
	var resp signUpResponse
	err := p.post(ctx, p.Endpoint+"/v1/accounts:signInWithIdp?key="+url.QueryEscape(p.APIKey), map[string]any{
		"postBody":          "id_token=" + url.QueryEscape(idToken) + "&providerId=google.com",
		"requestUri":        "http://localhost",
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &model.Account{
		SubjectID:    resp.LocalID,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		Federated:    true,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (p *GoogleProvider) RefreshToken(ctx context.Context, acct *model.Account) error {
	var resp struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
	}
	err := p.post(ctx, p.TokenEndpoint+"/v1/token?key="+url.QueryEscape(p.APIKey), map[string]any{
		"grant_type":    "refresh_token",
		"refresh_token": acct.RefreshToken,
	}, &resp)
	if err != nil {
		return err
	}
	acct.IDToken = resp.IDToken
	if resp.RefreshToken != "" {
		acct.RefreshToken = resp.RefreshToken
	}
	return nil
}

func (p *GoogleProvider) DeleteAccount(ctx context.Context, acct *model.Account) error {
	var resp struct{}
	return p.post(ctx, p.Endpoint+"/v1/accounts:delete?key="+url.QueryEscape(p.APIKey), map[string]any{
		"idToken": acct.IDToken,
	}, &resp)
}

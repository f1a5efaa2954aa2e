package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexmarten/strive/internal/repository"
)

// Provider identifies a federated sign-in flow.
type Provider string

const (
	ProviderGoogle Provider = "google.com"
	ProviderGithub Provider = "github.com"
)

// ParseProvider validates a federated provider id.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderGoogle, ProviderGithub:
		return Provider(s), nil
	}
	return "", fmt.Errorf("unknown provider %q (valid: %s, %s)", s, ProviderGoogle, ProviderGithub)
}

// Account is the opaque user handle returned by the provider. The rest
// of the application treats it purely as a presence signal and never
// depends on provider-specific fields.
type Account struct {
	UID      string
	Email    string
	Provider string
}

// Client is the identity-provider surface consumed by the app.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignUp(ctx context.Context, email, password string) (*Account, error)
	SignInWithProvider(ctx context.Context, provider Provider, idToken string) (*Account, error)
	SendPasswordReset(ctx context.Context, email string) error
	SignOut(ctx context.Context) error
	// CurrentUser resolves the locally stored session into an account,
	// or nil when signed out.
	CurrentUser(ctx context.Context) (*Account, error)
}

// restClient implements Client against a Firebase-compatible identity
// toolkit REST API. The session token lives in local storage so auth
// state survives across invocations.
type restClient struct {
	cfg      Config
	http     *http.Client
	sessions repository.SettingsRepo
	observer Observer
}

// NewRESTClient creates a Client for the configured endpoint.
func NewRESTClient(cfg Config, sessions repository.SettingsRepo, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &restClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		sessions: sessions,
		observer: observer,
	}
}

type authResponse struct {
	IDToken    string `json:"idToken"`
	Email      string `json:"email"`
	LocalID    string `json:"localId"`
	ProviderID string `json:"providerId"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type lookupResponse struct {
	Users []struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	} `json:"users"`
}

func (c *restClient) SignIn(ctx context.Context, email, password string) (*Account, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	resp, err := c.call(ctx, "signInWithPassword", "", body)
	if err != nil {
		return nil, err
	}
	return c.storeSession(ctx, resp, "password")
}

func (c *restClient) SignUp(ctx context.Context, email, password string) (*Account, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	resp, err := c.call(ctx, "signUp", "", body)
	if err != nil {
		return nil, err
	}
	return c.storeSession(ctx, resp, "password")
}

func (c *restClient) SignInWithProvider(ctx context.Context, provider Provider, idToken string) (*Account, error) {
	post := url.Values{}
	post.Set("id_token", idToken)
	post.Set("providerId", string(provider))
	body := map[string]any{
		"postBody":          post.Encode(),
		"requestUri":        "http://localhost",
		"returnSecureToken": true,
	}
	resp, err := c.call(ctx, "signInWithIdp", string(provider), body)
	if err != nil {
		return nil, err
	}
	return c.storeSession(ctx, resp, string(provider))
}

func (c *restClient) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	_, err := c.call(ctx, "sendOobCode", "", body)
	return err
}

func (c *restClient) SignOut(ctx context.Context) error {
	// Sign-out is purely local: discard the stored session token.
	return c.sessions.ClearSessionToken(ctx)
}

func (c *restClient) CurrentUser(ctx context.Context) (*Account, error) {
	token, err := c.sessions.SessionToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	raw, err := c.post(ctx, "lookup", "", map[string]any{"idToken": token})
	if err != nil {
		return nil, err
	}

	var resp lookupResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding lookup response: %w", err)
	}
	if len(resp.Users) == 0 {
		return nil, nil
	}
	return &Account{UID: resp.Users[0].LocalID, Email: resp.Users[0].Email}, nil
}

func (c *restClient) storeSession(ctx context.Context, resp *authResponse, provider string) (*Account, error) {
	if err := c.sessions.SetSessionToken(ctx, resp.IDToken); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &Account{UID: resp.LocalID, Email: resp.Email, Provider: provider}, nil
}

// call posts to an accounts: operation and decodes the auth response.
func (c *restClient) call(ctx context.Context, op, provider string, body map[string]any) (*authResponse, error) {
	raw, err := c.post(ctx, op, provider, body)
	if err != nil {
		return nil, err
	}
	var resp authResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", op, err)
	}
	return &resp, nil
}

func (c *restClient) post(ctx context.Context, op, provider string, body map[string]any) ([]byte, error) {
	if !c.cfg.Enabled {
		return nil, ErrDisabled
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", op, err)
	}

	// The API key never reaches the observer.
	opURL := fmt.Sprintf("%s/v1/accounts:%s", strings.TrimRight(c.cfg.Endpoint, "/"), op)
	endpoint := fmt.Sprintf("%s?key=%s", opURL, url.QueryEscape(c.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		c.emit(op, provider, opURL, start, false, "unreachable")
		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.emit(op, provider, opURL, start, false, "read")
		return nil, fmt.Errorf("reading %s response: %w", op, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		code := providerErrorCode(raw)
		c.emit(op, provider, opURL, start, false, code)
		return nil, providerError(op, code)
	}

	c.emit(op, provider, opURL, start, true, "")
	return raw, nil
}

func (c *restClient) emit(op, provider, endpoint string, start time.Time, success bool, code string) {
	c.observer.OnCallComplete(CallEvent{
		Op:        op,
		Provider:  provider,
		Endpoint:  endpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   success,
		ErrorCode: code,
	})
}

func providerErrorCode(raw []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Error.Message == "" {
		return "unknown"
	}
	return resp.Error.Message
}

func providerError(op, code string) error {
	switch {
	case strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	default:
		return fmt.Errorf("%s failed: %s", op, code)
	}
}

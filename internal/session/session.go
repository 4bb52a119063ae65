// Package session holds process-wide auth state: an explicit provider with
// a three-state lifecycle (Unknown, Authenticated, Anonymous) injected into
// pages instead of looked up ambiently.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/token"
)

// State is the provider's lifecycle position. Unknown only exists before
// Restore finishes.
type State int

const (
	Unknown State = iota
	Authenticated
	Anonymous
)

// API is the slice of the backend client the provider needs.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, req api.SignupRequest) error
	Me(ctx context.Context) (model.User, error)
}

// Provider owns the current user and the persisted token. Readers never
// observe a partial user: the value is nil or fully populated.
type Provider struct {
	api    API
	tokens token.Store
	log    *zap.Logger

	mu    sync.Mutex
	state State
	user  *model.User
}

// New returns a provider in the Unknown state. Call Restore before
// routing.
func New(a API, tokens token.Store, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{api: a, tokens: tokens, log: log, state: Unknown}
}

// State returns the current lifecycle state.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Loading reports whether the startup restore is still pending.
func (p *Provider) Loading() bool { return p.State() == Unknown }

// User returns the current user, or nil when anonymous or unknown.
func (p *Provider) User() *model.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	return &u
}

// IsAdmin reports whether the current user carries the admin role.
func (p *Provider) IsAdmin() bool {
	u := p.User()
	return u != nil && u.Role == model.RoleAdmin
}

// Restore resolves the Unknown state at startup. A persisted token is
// validated by fetching the current user; a failed fetch clears the token
// and lands on Anonymous without surfacing an error to the user.
func (p *Provider) Restore(ctx context.Context) {
	tok, err := p.tokens.Load()
	if err != nil || tok == "" {
		p.set(Anonymous, nil)
		return
	}
	u, err := p.api.Me(ctx)
	if err != nil {
		p.log.Debug("session restore failed, clearing token", zap.Error(err))
		_ = p.tokens.Clear()
		p.set(Anonymous, nil)
		return
	}
	p.set(Authenticated, &u)
}

// Login authenticates, persists the token, then fetches the current user.
// On any failure the provider's state is left unchanged; callers must not
// assume success.
func (p *Provider) Login(ctx context.Context, email, password string) error {
	tok, err := p.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := p.tokens.Save(tok); err != nil {
		return err
	}
	u, err := p.api.Me(ctx)
	if err != nil {
		return err
	}
	p.set(Authenticated, &u)
	return nil
}

// Signup registers and then delegates to Login with the same credentials.
// Signup never grants a session by itself; a failed signup leaves any
// prior session untouched.
func (p *Provider) Signup(ctx context.Context, req api.SignupRequest) error {
	if err := p.api.Signup(ctx, req); err != nil {
		return err
	}
	return p.Login(ctx, req.Email, req.Password)
}

// Logout clears the persisted token and the user synchronously. No server
// call is made.
func (p *Provider) Logout() {
	_ = p.tokens.Clear()
	p.set(Anonymous, nil)
}

// TokenExpiry reads the expiry claim from the persisted token without
// verifying the signature. Display-only; the server stays the authority.
func (p *Provider) TokenExpiry() (time.Time, bool) {
	tok, err := p.tokens.Load()
	if err != nil || tok == "" {
		return time.Time{}, false
	}
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (p *Provider) set(s State, u *model.User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
	p.user = u
}

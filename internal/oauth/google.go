// Package oauth wires the Google sign-in redirect flow (goth/gothic) and the
// cookie session that remembers who signed in.
package oauth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"recipeshare/internal/config"
)

const (
	// ProviderName is the goth provider key for Google.
	ProviderName = "google"
	// SessionName is the cookie holding the signed-in profile.
	SessionName = "recipeshare_session"

	sessionMaxAge = 86400 * 30
)

// Profile is what the session remembers about a signed-in user.
type Profile struct {
	UserID  int64  `json:"-"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Provider owns the session store and the redirect targets of the flow.
type Provider struct {
	store      sessions.Store
	enabled    bool
	successURL string
	failureURL string
}

// Setup builds the session store, shares it with gothic and registers the
// Google provider when a real client id is configured.
func Setup(cfg config.OAuthConfig) *Provider {
	secret := cfg.SessionSecret
	if secret == "" {
		// sessions will not survive a restart
		secret = uuid.NewString() + uuid.NewString()
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(sessionMaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = strings.HasPrefix(cfg.CallbackURL, "https://")
	gothic.Store = store

	p := &Provider{
		store:      store,
		enabled:    cfg.Enabled(),
		successURL: cfg.SuccessURL,
		failureURL: cfg.FailureURL,
	}
	if p.enabled {
		gp := google.New(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.CallbackURL, "email", "profile")
		// token exchange and profile fetch show up as client spans
		gp.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
		goth.UseProviders(gp)
	}
	return p
}

// Enabled reports whether the redirect routes should be mounted.
func (p *Provider) Enabled() bool { return p.enabled }

// SuccessURL is where the browser lands after a completed sign-in.
func (p *Provider) SuccessURL() string { return p.successURL }

// FailureURL is where the browser lands when sign-in fails.
func (p *Provider) FailureURL() string { return p.failureURL }

func withProvider(r *http.Request) *http.Request {
	return gothic.GetContextWithProvider(r, ProviderName)
}

// BeginAuth redirects the browser to Google's consent screen.
func (p *Provider) BeginAuth(w http.ResponseWriter, r *http.Request) {
	gothic.BeginAuthHandler(w, withProvider(r))
}

// CompleteAuth exchanges the callback code for the Google profile.
func (p *Provider) CompleteAuth(w http.ResponseWriter, r *http.Request) (goth.User, error) {
	return gothic.CompleteUserAuth(w, withProvider(r))
}

// SaveProfile stores prof in the session cookie.
func (p *Provider) SaveProfile(w http.ResponseWriter, r *http.Request, prof Profile) error {
	s, err := p.store.Get(r, SessionName)
	if err != nil && s == nil {
		return err
	}
	s.Values["user_id"] = prof.UserID
	s.Values["name"] = prof.Name
	s.Values["email"] = prof.Email
	s.Values["picture"] = prof.Picture
	return s.Save(r, w)
}

// LoadProfile reads the signed-in profile. ok is false when nobody is signed in.
func (p *Provider) LoadProfile(r *http.Request) (prof Profile, ok bool) {
	s, err := p.store.Get(r, SessionName)
	if err != nil || s == nil {
		return Profile{}, false
	}
	email, _ := s.Values["email"].(string)
	if email == "" {
		return Profile{}, false
	}
	prof.Email = email
	prof.UserID, _ = s.Values["user_id"].(int64)
	prof.Name, _ = s.Values["name"].(string)
	prof.Picture, _ = s.Values["picture"].(string)
	return prof, true
}

// Clear expires the session cookie and any gothic state.
func (p *Provider) Clear(w http.ResponseWriter, r *http.Request) error {
	s, err := p.store.Get(r, SessionName)
	if err == nil && s != nil {
		s.Values = map[any]any{}
		s.Options.MaxAge = -1
		if err := s.Save(r, w); err != nil {
			return err
		}
	}
	return gothic.Logout(w, withProvider(r))
}

package session

import (
	"crypto/sha256"
	"io"
	"net/http"
	"time"

	"sendero-web/internal/pkg/errs"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/hkdf"
)

const (
	MinSecretLength = 32
	DefaultMaxAge   = 7 * 24 * time.Hour

	keyAuthenticated   = "authenticated"
	keyAuthenticatedAt = "authenticated_at"
)

var (
	ErrSecretMissing  = errs.New("SESSION_SECRET is not set")
	ErrSecretTooShort = errs.New("SESSION_SECRET must be at least 32 characters")
)

type Options struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Manager seals session state into a client-held cookie. There is no
// server-side session table; expiry is carried by the cookie itself.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

func NewManager(secret string, opts Options) (*Manager, error) {
	if secret == "" {
		return nil, ErrSecretMissing
	}
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	hashKey, err := deriveKey(secret, "sendero-session-hash", 64)
	if err != nil {
		return nil, errs.Wrap(err, "derive session hash key")
	}
	blockKey, err := deriveKey(secret, "sendero-session-block", 32)
	if err != nil {
		return nil, errs.Wrap(err, "derive session block key")
	}

	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}

	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	// Sets both the cookie Max-Age and the codec's timestamp validation window.
	store.MaxAge(int(opts.MaxAge.Seconds()))

	return &Manager{store: store, name: opts.CookieName}, nil
}

func (m *Manager) CookieName() string {
	return m.name
}

// Load always returns a usable session. A missing, expired or tampered
// cookie yields an empty session together with the decode error.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	raw, err := m.store.Get(r, m.name)
	if raw == nil {
		raw = sessions.NewSession(m.store, m.name)
	}
	return &Session{raw: raw}, err
}

type State struct {
	Authenticated   bool
	AuthenticatedAt time.Time
}

type Session struct {
	raw *sessions.Session
}

func (s *Session) State() State {
	authenticated, _ := s.raw.Values[keyAuthenticated].(bool)
	var at time.Time
	if ms, ok := s.raw.Values[keyAuthenticatedAt].(int64); ok && ms > 0 {
		at = time.UnixMilli(ms)
	}
	return State{Authenticated: authenticated, AuthenticatedAt: at}
}

func (s *Session) IsAuthenticated() bool {
	return s.State().Authenticated
}

// MarkAuthenticated has no effect on the client until Save is called.
func (s *Session) MarkAuthenticated(at time.Time) {
	s.raw.Values[keyAuthenticated] = true
	s.raw.Values[keyAuthenticatedAt] = at.UnixMilli()
}

// Clear has no effect on the client until Save is called.
func (s *Session) Clear() {
	s.raw.Values[keyAuthenticated] = false
	s.raw.Values[keyAuthenticatedAt] = int64(0)
}

func (s *Session) Save(r *http.Request, w http.ResponseWriter) error {
	if err := s.raw.Save(r, w); err != nil {
		return errs.Wrap(err, "save session cookie")
	}
	return nil
}

func deriveKey(secret, info string, size int) ([]byte, error) {
	h := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	out := make([]byte, size)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, err
	}
	return out, nil
}

package dash

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/WillDaSilva/logfire/internal/credentials"
	"github.com/WillDaSilva/logfire/internal/runenv"
)

// DefaultDataDir is the default token discovery path.
const DefaultDataDir = ".logfire"

// settings is one generation of configuration state. Configure replaces the
// whole value atomically under the session mutex.
type settings struct {
	token   string
	dataDir string
	baseURL string
}

func defaultSettings() settings {
	return settings{dataDir: DefaultDataDir}
}

// Session owns the configuration state and memoized token shared by queries.
// One session per process is the normal arrangement (see Default); separate
// sessions are independent.
//
// Configuration writers are assumed infrequent and single-flow; concurrent
// readers are safe, resolution after the first being a pure cache read.
type Session struct {
	env    runenv.Context
	client *http.Client
	source credentials.Source

	out         io.Writer
	notebookOut io.Writer

	mu          sync.Mutex
	cfg         settings
	gen         uint64 // bumped by Configure; guards the token cache
	configured  bool
	cachedToken string
	tokenCached bool
}

// NewSession creates a Session for the detected execution context, with
// default settings installed and no token resolved yet.
func NewSession(opts ...Option) *Session {
	s := &Session{
		env:    runenv.Detect(),
		client: &http.Client{Timeout: 30 * time.Second},
		source: credentials.DefaultSource{},
		cfg:    defaultSettings(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Env reports the execution context the session was created for.
func (s *Session) Env() runenv.Context { return s.env }

// Configure replaces the session configuration and invalidates the memoized
// token, so a later query never uses a stale credential for a changed
// configuration. Values not set by an option revert to their defaults.
//
// In the sandboxed environment Configure returns immediately without
// mutation. This is deliberate, not an error: the hosting page manages
// credentials itself, and the no-op keeps call sites portable between
// environments.
func (s *Session) Configure(opts ...ConfigOption) {
	if s.env.Sandboxed {
		return
	}

	next := defaultSettings()
	for _, o := range opts {
		o(&next)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = next
	s.configured = true
	s.gen++
	s.cachedToken = ""
	s.tokenCached = false
}

// Token resolves the Logfire token for the current configuration, memoized
// until the next Configure call.
//
// It fails with *EnvironmentError in the sandbox: token resolution must never
// run there, the hosting page injects credentials through its own channel.
// When the session was never explicitly configured, a one-time implicit
// Configure with defaults keeps the API usable without setup. When the
// discovery chain finds nothing, it fails with *ConfigurationError naming
// both remediation paths.
func (s *Session) Token(ctx context.Context) (string, error) {
	if s.env.Sandboxed {
		return "", &EnvironmentError{Op: "token resolution"}
	}

	s.mu.Lock()
	if !s.configured {
		s.cfg = defaultSettings()
		s.configured = true
		s.gen++
	}
	if s.tokenCached {
		tok := s.cachedToken
		s.mu.Unlock()
		return tok, nil
	}
	explicit, dataDir, gen := s.cfg.token, s.cfg.dataDir, s.gen
	s.mu.Unlock()

	tok, err := s.source.Resolve(ctx, explicit, dataDir)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", &ConfigurationError{
			msg: "no Logfire token provided or found in the default locations; " +
				"set the " + credentials.EnvVar + " environment variable, " +
				"or pass one with dash.Configure",
		}
	}

	s.mu.Lock()
	// Cache only if no Configure landed while we were resolving.
	if s.gen == gen {
		s.cachedToken = tok
		s.tokenCached = true
	}
	s.mu.Unlock()
	return tok, nil
}

// Default session shared by the package-level functions, preserving the
// "configure once, use everywhere" ergonomics of the module API.
var (
	defaultOnce    sync.Once
	defaultSession *Session
)

// Default returns the process-wide session, created on first use.
func Default() *Session {
	defaultOnce.Do(func() {
		defaultSession = NewSession()
	})
	return defaultSession
}

// Configure sets the arguments used to obtain the Logfire token on the
// default session. See Session.Configure.
func Configure(opts ...ConfigOption) { Default().Configure(opts...) }

// Query runs a raw SQL query on the default session. See Session.Query.
func Query(ctx context.Context, sql string) ([]Row, error) { return Default().Query(ctx, sql) }

// RawQuery runs a raw SQL query on the default session and returns the tagged
// result. See Session.RawQuery.
func RawQuery(ctx context.Context, sql string) (QueryResult, error) {
	return Default().RawQuery(ctx, sql)
}

// Show displays an item through the default session. See Session.Show.
func Show(item any) error { return Default().Show(item) }

package dash

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/WillDaSilva/logfire/internal/runenv"
)

// fakeSource is a token-loading collaborator that records how it was called.
type fakeSource struct {
	token string
	err   error

	calls        int
	lastExplicit string
	lastDataDir  string
}

func (f *fakeSource) Resolve(ctx context.Context, explicit string, dataDir string) (string, error) {
	f.calls++
	f.lastExplicit = explicit
	f.lastDataDir = dataDir
	return f.token, f.err
}

func localSession(src *fakeSource) *Session {
	return NewSession(WithEnv(runenv.Context{}), WithTokenSource(src))
}

func sandboxSession(src *fakeSource) *Session {
	return NewSession(WithEnv(runenv.Context{Sandboxed: true}), WithTokenSource(src))
}

func TestTokenMemoization(t *testing.T) {
	src := &fakeSource{token: "tok-1"}
	s := localSession(src)
	ctx := context.Background()

	first, err := s.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	second, err := s.Token(ctx)
	if err != nil {
		t.Fatalf("Token() second call error = %v", err)
	}
	if first != "tok-1" || second != "tok-1" {
		t.Errorf("Token() = %q then %q, want %q both times", first, second, "tok-1")
	}
	if src.calls != 1 {
		t.Errorf("token source called %d times, want 1 (memoized)", src.calls)
	}
}

func TestConfigureInvalidatesToken(t *testing.T) {
	src := &fakeSource{token: "tok-1"}
	s := localSession(src)
	ctx := context.Background()

	if _, err := s.Token(ctx); err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	src.token = "tok-2"
	s.Configure(WithDataDir("/alt/dir"))

	got, err := s.Token(ctx)
	if err != nil {
		t.Fatalf("Token() after Configure error = %v", err)
	}
	if got != "tok-2" {
		t.Errorf("Token() after Configure = %q, want %q", got, "tok-2")
	}
	if src.calls != 2 {
		t.Errorf("token source called %d times, want 2 (cache invalidated)", src.calls)
	}
	if src.lastDataDir != "/alt/dir" {
		t.Errorf("discovery path = %q, want %q", src.lastDataDir, "/alt/dir")
	}
}

func TestConfigureInvalidatesBeforeFirstResolution(t *testing.T) {
	src := &fakeSource{token: "tok-1"}
	s := localSession(src)

	// Invalidation must land even though no query triggered resolution yet.
	s.Configure(WithToken("explicit"), WithDataDir("/alt/dir"))

	if _, err := s.Token(context.Background()); err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if src.lastExplicit != "explicit" || src.lastDataDir != "/alt/dir" {
		t.Errorf("source called with (%q, %q), want (%q, %q)",
			src.lastExplicit, src.lastDataDir, "explicit", "/alt/dir")
	}
}

func TestConfigureReplacesWholeConfiguration(t *testing.T) {
	src := &fakeSource{token: "tok-1"}
	s := localSession(src)

	s.Configure(WithToken("explicit"), WithDataDir("/alt/dir"))
	// A second Configure without options reverts everything to defaults.
	s.Configure()

	if _, err := s.Token(context.Background()); err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if src.lastExplicit != "" {
		t.Errorf("explicit token = %q, want it reset to empty", src.lastExplicit)
	}
	if src.lastDataDir != DefaultDataDir {
		t.Errorf("discovery path = %q, want default %q", src.lastDataDir, DefaultDataDir)
	}
}

func TestTokenImplicitConfigure(t *testing.T) {
	src := &fakeSource{token: "tok-1"}
	s := localSession(src)

	if _, err := s.Token(context.Background()); err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if src.lastDataDir != DefaultDataDir {
		t.Errorf("discovery path = %q, want implicit default %q", src.lastDataDir, DefaultDataDir)
	}
	s.mu.Lock()
	configured := s.configured
	s.mu.Unlock()
	if !configured {
		t.Error("session not marked configured after implicit configuration")
	}
}

func TestTokenSandboxed(t *testing.T) {
	src := &fakeSource{token: "tok-1"}
	s := sandboxSession(src)

	_, err := s.Token(context.Background())
	var envErr *EnvironmentError
	if !errors.As(err, &envErr) {
		t.Fatalf("Token() error = %v, want *EnvironmentError", err)
	}
	if src.calls != 0 {
		t.Errorf("token source called %d times in the sandbox, want 0", src.calls)
	}
}

func TestConfigureSandboxNoOp(t *testing.T) {
	src := &fakeSource{token: "tok-1"}
	s := sandboxSession(src)

	s.Configure(WithToken("explicit"), WithBaseURL("https://example.com")) // must not panic

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.configured {
		t.Error("Configure marked a sandboxed session configured")
	}
	if s.cfg != defaultSettings() {
		t.Errorf("Configure mutated sandboxed session state: %+v", s.cfg)
	}
}

func TestTokenNotFound(t *testing.T) {
	src := &fakeSource{token: ""}
	s := localSession(src)

	_, err := s.Token(context.Background())
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Token() error = %v, want *ConfigurationError", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "LOGFIRE_TOKEN") {
		t.Errorf("error %q does not name the environment variable remediation", msg)
	}
	if !strings.Contains(msg, "Configure") {
		t.Errorf("error %q does not name the Configure remediation", msg)
	}
}

func TestTokenSourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("keychain locked")
	src := &fakeSource{err: wantErr}
	s := localSession(src)

	_, err := s.Token(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("Token() error = %v, want %v", err, wantErr)
	}
}

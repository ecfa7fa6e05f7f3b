package dash

import (
	"io"
	"net/http"

	"github.com/WillDaSilva/logfire/internal/credentials"
	"github.com/WillDaSilva/logfire/internal/runenv"
)

// Option configures a Session at creation time.
type Option func(*Session)

// WithHTTPClient sets the HTTP client used for query requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) { s.client = c }
}

// WithEnv overrides the detected execution context. Intended for the hosting
// page's embedder and for tests.
func WithEnv(env runenv.Context) Option {
	return func(s *Session) { s.env = env }
}

// WithTokenSource sets the collaborator that resolves tokens from an explicit
// value and a discovery path.
func WithTokenSource(src credentials.Source) Option {
	return func(s *Session) { s.source = src }
}

// WithOutput sets the writer used for textual display in a plain process.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithNotebookWriter sets the kernel display channel used for rich output in
// a notebook.
func WithNotebookWriter(w io.Writer) Option {
	return func(s *Session) { s.notebookOut = w }
}

// ConfigOption sets one value of a Configure call. Values not set revert to
// their defaults: Configure replaces the whole configuration, it does not
// patch it.
type ConfigOption func(*settings)

// WithToken sets an explicit token, bypassing discovery.
func WithToken(token string) ConfigOption {
	return func(c *settings) { c.token = token }
}

// WithDataDir sets the token discovery path. Default ".logfire".
func WithDataDir(dir string) ConfigOption {
	return func(c *settings) { c.dataDir = dir }
}

// WithBaseURL overrides the Logfire API base URL.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *settings) { c.baseURL = baseURL }
}

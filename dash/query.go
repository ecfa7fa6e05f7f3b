package dash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the Logfire API queried when no override is configured.
const DefaultBaseURL = "https://logfire-api.pydantic.dev"

const queryPath = "/dash/query"

// RawQuery executes a raw SQL query string against the Logfire API and
// returns the tagged result without unwrapping it. It blocks until the
// response arrives or ctx is done; each call is independent, with no
// coalescing and no retry.
//
// In the sandboxed environment it fails with *EnvironmentError before doing
// any work: sockets are unavailable there, and the hosting page replaces this
// operation with one backed by its in-browser fetch bridge. Token resolution
// failures propagate unchanged, and a non-2xx response is an error before the
// body is parsed.
func (s *Session) RawQuery(ctx context.Context, sql string) (QueryResult, error) {
	if s.env.Sandboxed {
		return QueryResult{}, &EnvironmentError{Op: "query execution"}
	}

	token, err := s.Token(ctx)
	if err != nil {
		return QueryResult{}, err
	}

	s.mu.Lock()
	base := s.cfg.baseURL
	s.mu.Unlock()
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(strings.TrimRight(base, "/") + queryPath)
	if err != nil {
		return QueryResult{}, err
	}
	q := u.Query()
	q.Set("q", sql)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return QueryResult{}, err
	}
	req.Header.Set("Authorization", token)

	resp, err := s.client.Do(req)
	if err != nil {
		return QueryResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return QueryResult{}, fmt.Errorf("query request failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var result QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return QueryResult{}, err
	}
	return result, nil
}

// Query executes a raw SQL query string and returns the result rows. When
// the server reports a query failure, the error is a *QueryError embedding
// the server-provided details verbatim, so callers do not need to inspect
// the tagged result for the common case.
func (s *Session) Query(ctx context.Context, sql string) ([]Row, error) {
	res, err := s.RawQuery(ctx, sql)
	if err != nil {
		return nil, err
	}
	if res.Status != StatusSuccess {
		return nil, &QueryError{Details: res.ErrorDetails}
	}
	return res.Rows, nil
}

package dash

import "fmt"

// EnvironmentError reports an operation invoked in an environment where it is
// structurally unsupported. It is always fatal to that call and never retried:
// the hosting page is expected to substitute its own implementation of the
// operation before user code runs.
type EnvironmentError struct {
	// Op names the operation, e.g. "query execution".
	Op string
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("logfire: %s is unavailable in the sandboxed environment; the hosting page must inject its own implementation before user code runs", e.Op)
}

// ConfigurationError reports that no Logfire token could be resolved. The
// message names both remediation paths.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

// QueryError reports a query failure from the Logfire API. Details carries
// the server-provided message verbatim.
type QueryError struct {
	Details string
}

func (e *QueryError) Error() string { return "error running query:\n" + e.Details }

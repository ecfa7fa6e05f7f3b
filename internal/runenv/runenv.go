// Package runenv classifies the host environment the process runs in.
//
// The dash API behaves differently in three hosts: a plain local process, an
// interactive notebook kernel, and the sandboxed in-browser interpreter
// embedded in the Logfire "Explore" page. Classification happens once per
// process, at first use, and is immutable afterwards. Detection never fails:
// a missing marker simply means the corresponding flag is false.
package runenv

import (
	"os"
	"sync"
)

// Environment markers consulted by Detect.
const (
	// SandboxMarker is set by the Explore page host before any user code runs.
	SandboxMarker = "LOGFIRE_SANDBOX"
	// NotebookMarker is the GoNB kernel pipe variable; its presence means the
	// process is an interactive notebook kernel.
	NotebookMarker = "GONB_PIPE"
)

// Context reports which host environment the process runs in.
//
// The two flags are independently observable. In practice the sandbox never
// reports itself as a notebook, but nothing enforces mutual exclusion.
type Context struct {
	Sandboxed bool
	Notebook  bool
}

// Kind is the execution strategy resolved from a Context.
type Kind int

const (
	Local Kind = iota
	Notebook
	Sandboxed
)

func (k Kind) String() string {
	switch k {
	case Notebook:
		return "notebook"
	case Sandboxed:
		return "sandboxed"
	default:
		return "local"
	}
}

// Kind resolves the context to a single strategy. The sandbox takes priority
// when both flags are set.
func (c Context) Kind() Kind {
	switch {
	case c.Sandboxed:
		return Sandboxed
	case c.Notebook:
		return Notebook
	default:
		return Local
	}
}

var (
	once    sync.Once
	current Context
)

// Detect returns the process-wide execution context, computed on first use
// and cached for the lifetime of the process.
func Detect() Context {
	once.Do(func() {
		current = DetectFrom(os.Getenv)
	})
	return current
}

// DetectFrom classifies an environment from the given variable lookup.
// Exposed so tests can substitute a fake environment.
func DetectFrom(lookup func(string) string) Context {
	return Context{
		Sandboxed: inWASM || lookup(SandboxMarker) != "",
		Notebook:  lookup(NotebookMarker) != "",
	}
}

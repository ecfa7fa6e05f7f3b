// Package dash provides the client API for the Logfire "Explore" page.
//
// The same code runs unmodified in three host environments: a plain local
// process, an interactive notebook kernel, and the sandboxed in-browser
// interpreter embedded in the Explore page. The environment is detected once
// at startup and every operation adapts to it, so code developed and tested
// locally behaves identically when pasted into the Explore page.
//
// Usage:
//
//	dash.Configure(dash.WithToken("..."))
//	rows, err := dash.Query(ctx, "SELECT count(*) FROM records")
//	if err != nil {
//	    return err
//	}
//	dash.Show(rows)
//
// In the sandboxed environment Configure is a deliberate no-op and the query
// and display operations fail with *EnvironmentError: the hosting page
// substitutes its own fetch- and display-backed implementations before any
// user code executes. Locally, Show prints; in a notebook it renders rich
// HTML output.
package dash

package runenv

import (
	"testing"
)

func lookupFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectFrom(t *testing.T) {
	tests := []struct {
		name          string
		vars          map[string]string
		wantSandboxed bool
		wantNotebook  bool
	}{
		{
			name: "no markers",
			vars: map[string]string{},
		},
		{
			name:          "sandbox marker",
			vars:          map[string]string{SandboxMarker: "1"},
			wantSandboxed: true,
		},
		{
			name:         "notebook marker",
			vars:         map[string]string{NotebookMarker: "/tmp/gonb_pipe"},
			wantNotebook: true,
		},
		{
			name:          "both markers observable independently",
			vars:          map[string]string{SandboxMarker: "1", NotebookMarker: "/tmp/gonb_pipe"},
			wantSandboxed: true,
			wantNotebook:  true,
		},
		{
			name: "unrelated variables ignored",
			vars: map[string]string{"HOME": "/home/user", "LOGFIRE_TOKEN": "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFrom(lookupFrom(tt.vars))
			if got.Sandboxed != tt.wantSandboxed {
				t.Errorf("Sandboxed = %v, want %v", got.Sandboxed, tt.wantSandboxed)
			}
			if got.Notebook != tt.wantNotebook {
				t.Errorf("Notebook = %v, want %v", got.Notebook, tt.wantNotebook)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want Kind
	}{
		{name: "local", ctx: Context{}, want: Local},
		{name: "notebook", ctx: Context{Notebook: true}, want: Notebook},
		{name: "sandboxed", ctx: Context{Sandboxed: true}, want: Sandboxed},
		{name: "sandbox wins over notebook", ctx: Context{Sandboxed: true, Notebook: true}, want: Sandboxed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectIsStable(t *testing.T) {
	first := Detect()
	second := Detect()
	if first != second {
		t.Errorf("Detect() changed between calls: %+v then %+v", first, second)
	}
}

package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveExplicitWins(t *testing.T) {
	t.Setenv(EnvVar, "env-token")

	var src DefaultSource
	got, err := src.Resolve(context.Background(), "explicit-token", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "explicit-token" {
		t.Errorf("Resolve() = %q, want %q", got, "explicit-token")
	}
}

func TestResolveEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "  env-token\n")

	var src DefaultSource
	got, err := src.Resolve(context.Background(), "", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "env-token" {
		t.Errorf("Resolve() = %q, want trimmed %q", got, "env-token")
	}
}

func TestResolveCredentialsFile(t *testing.T) {
	t.Setenv(EnvVar, "")

	dir := t.TempDir()
	if err := WriteFile(dir, "file-token"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var src DefaultSource
	got, err := src.Resolve(context.Background(), "", dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "file-token" {
		t.Errorf("Resolve() = %q, want %q", got, "file-token")
	}
}

func TestFileToken(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) string // returns dataDir
		want      string
		expectErr bool
	}{
		{
			name:  "empty discovery path",
			setup: func(t *testing.T) string { return "" },
		},
		{
			name:  "missing file",
			setup: func(t *testing.T) string { return t.TempDir() },
		},
		{
			name: "valid file",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeCredentials(t, dir, `{"token": "tok-1"}`)
				return dir
			},
			want: "tok-1",
		},
		{
			name: "whitespace trimmed",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeCredentials(t, dir, `{"token": " tok-2 "}`)
				return dir
			},
			want: "tok-2",
		},
		{
			name: "malformed file is an error",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeCredentials(t, dir, `{not json`)
				return dir
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := fileToken(dir)
			if tt.expectErr {
				if err == nil {
					t.Fatal("fileToken() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("fileToken() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("fileToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteFilePermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".logfire")
	if err := WriteFile(dir, "tok"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("credentials file mode = %o, want 600", perm)
	}
}

func writeCredentials(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

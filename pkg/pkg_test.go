package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}

	if want := strings.TrimSpace(string(buf)); Version != want {
		t.Errorf("expected Version %q, got %q", want, Version)
	}
}

func TestAuthor(t *testing.T) {
	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/local/bin/optexpr", "optexpr"},
		{"/tmp/__debug_bin1234", Name},
		{"/opt/.hidden", "hidden"},
		{"/opt/..hidden.bin", "hidden"},
		{"/opt/.optexpr.exe", "optexpr"},
		{"C:/tools/optexpr.exe", "optexpr"},
		{"/", Name},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := prefixOf(tt.path); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUserDir(t *testing.T) {
	got := userDir(func() (string, error) { return "/base", nil }, ".x")
	if want := filepath.Join("/base", Prefix()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	fallback := userDir(func() (string, error) { return "", os.ErrNotExist }, ".x")
	if filepath.Base(fallback) != Prefix() {
		t.Errorf("expected fallback to end in %q, got %q", Prefix(), fallback)
	}
}

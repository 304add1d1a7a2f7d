package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yogiiiiiiiiii/TN-project-final/internal/utils"
)

func TestSafeWriteFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.csv")
	if err := utils.SafeWriteFile(p, []byte("a,b\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "a,b\n" {
		t.Fatalf("read back %q, %v", b, err)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestSafeWriteFileCreatesParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "exports", "nested", "out.csv")
	if err := utils.SafeWriteFile(p, []byte("x\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestResolveOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	cases := []struct {
		name string
		dir  string
		in   string
		want string
	}{
		{"joined", dir, "sampled_data.csv", filepath.Join(dir, "sampled_data.csv")},
		{"explicit path", dir, filepath.Join("sub", "x.csv"), filepath.Join("sub", "x.csv")},
		{"no dir", "", "x.csv", "x.csv"},
	}
	for _, c := range cases {
		got, err := utils.ResolveOutput(c.dir, c.in)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("ResolveOutput must not create %s: %v", dir, err)
	}
	if _, err := utils.ResolveOutput(dir, ""); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/tmp/fakehome")
	got, err := utils.ExpandHome("~/exports")
	if err != nil {
		t.Fatalf("ExpandHome: %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join("fakehome", "exports")) {
		t.Fatalf("got %s", got)
	}
}

func TestPrettyJSON(t *testing.T) {
	b, err := utils.PrettyJSON(map[string]int{"n": 1})
	if err != nil {
		t.Fatalf("PrettyJSON: %v", err)
	}
	if string(b) != "{\n  \"n\": 1\n}" {
		t.Fatalf("got %q", b)
	}
}

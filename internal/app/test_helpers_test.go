package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"launchbox/internal/catalog"
	"launchbox/internal/config"
)

func requireBinaries(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available: %v", name, err)
		}
	}
}

func newTestApp(t *testing.T, commands map[string]string) *App {
	t.Helper()
	cat, err := catalog.Build([]catalog.Source{
		{Name: "test", Commands: commands},
	}, map[string][]string{"nap": {"sleeps"}})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	cfg := config.Config{
		Dir:           t.TempDir(),
		FrameInterval: 10 * time.Millisecond,
		StartTimeout:  2 * time.Second,
		PollInterval:  time.Millisecond,
	}
	return NewWithCatalog(cfg, cat)
}

func writeLaunchbox(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

package normalization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

func TestEmbeddedKeysParse(t *testing.T) {
	keys := DefaultKeys()
	q := keys.For(KindQualification)
	if len(q.Title) < 2 || q.Title[0] != "title" || q.Title[1] != "name" {
		t.Fatalf("qualification title keys: got=%v", q.Title)
	}
	if len(keys.For(KindCourse).Link) == 0 {
		t.Fatal("course link keys missing")
	}
}

func TestParseKeysRejectsMissingKind(t *testing.T) {
	_, err := ParseKeys([]byte("version: 1\nkinds:\n  qualification:\n    title: [title]\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadKeysOverrideAndFallback(t *testing.T) {
	log, _ := logger.New("test")
	dir := t.TempDir()

	good := filepath.Join(dir, "keys.yaml")
	body := `version: 1
kinds:
  qualification:
    title: [qualification_name, title]
  module:
    title: [title]
  course:
    title: [title]
`
	if err := os.WriteFile(good, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(keysPathEnv, good)
	keys := LoadKeys(log)
	if got := keys.For(KindQualification).Title[0]; got != "qualification_name" {
		t.Fatalf("override: want=%q got=%q", "qualification_name", got)
	}

	t.Setenv(keysPathEnv, filepath.Join(dir, "missing.yaml"))
	keys = LoadKeys(log)
	if got := keys.For(KindQualification).Title[0]; got != "title" {
		t.Fatalf("fallback: want=%q got=%q", "title", got)
	}
}

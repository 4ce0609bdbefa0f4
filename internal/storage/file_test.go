package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))

	score, err := f.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() on missing file failed: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, expected 0 for a missing file", score)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "nested", "highscore.txt"))

	if err := f.SaveHighScore(37); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	score, err := f.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 37 {
		t.Errorf("score = %d, expected 37", score)
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte(" 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	score, err := NewFileStore(path).LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 12 {
		t.Errorf("score = %d, expected 12", score)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).LoadHighScore(); err == nil {
		t.Error("expected an error for a malformed file")
	}
}

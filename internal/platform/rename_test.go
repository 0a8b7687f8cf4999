package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func TestUniqueTarget(t *testing.T) {
	dir := t.TempDir()

	if got := UniqueTarget(dir, "video", ".mp4"); got != filepath.Join(dir, "video.mp4") {
		t.Errorf("Expected free name, got %s", got)
	}

	touch(t, filepath.Join(dir, "video.mp4"))
	touch(t, filepath.Join(dir, "video-2.mp4"))

	if got := UniqueTarget(dir, "video", ".mp4"); got != filepath.Join(dir, "video-3.mp4") {
		t.Errorf("Expected video-3.mp4, got %s", got)
	}
}

func TestRenameUnique_Collision(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "video.mp4"))
	touch(t, filepath.Join(dir, "video-2.mp4"))
	candidate := filepath.Join(dir, "Some Video!.mp4")
	touch(t, candidate)

	target, err := RenameUnique(candidate, "video")
	if err != nil {
		t.Fatalf("RenameUnique failed: %v", err)
	}

	if target != filepath.Join(dir, "video-3.mp4") {
		t.Errorf("Expected video-3.mp4, got %s", target)
	}
	if FileExists(candidate) {
		t.Error("Candidate should have been moved")
	}
	if !FileExists(target) {
		t.Error("Target should exist")
	}
}

func TestRenameUnique_NoExtension(t *testing.T) {
	dir := t.TempDir()
	candidate := filepath.Join(dir, "Raw Title")
	touch(t, candidate)

	target, err := RenameUnique(candidate, "rawtitle")
	if err != nil {
		t.Fatalf("RenameUnique failed: %v", err)
	}
	if target != filepath.Join(dir, "rawtitle.mp4") {
		t.Errorf("Expected default extension, got %s", target)
	}
}

func TestRenameUnique_AlreadyNamed(t *testing.T) {
	dir := t.TempDir()
	candidate := filepath.Join(dir, "video.mp4")
	touch(t, candidate)

	target, err := RenameUnique(candidate, "video")
	if err != nil {
		t.Fatalf("RenameUnique failed: %v", err)
	}
	if target != candidate {
		t.Errorf("Expected file to stay at %s, got %s", candidate, target)
	}
	if FileExists(filepath.Join(dir, "video-2.mp4")) {
		t.Error("No suffixed copy should be created")
	}
}

func TestRenameUnique_MissingCandidate(t *testing.T) {
	_, err := RenameUnique(filepath.Join(t.TempDir(), "gone.mp4"), "gone")
	if err == nil {
		t.Fatal("Expected error for missing candidate")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}


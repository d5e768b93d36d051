//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"errors"
	"testing"
)

func TestLibrarySearchPathsEnvOverride(t *testing.T) {
	t.Setenv("SPOTGO_LIBRARY_PATH", "/custom/spotify/lib")

	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Fatal("expected at least one search path")
	}
	if paths[0] != "/custom/spotify/lib" {
		t.Errorf("SPOTGO_LIBRARY_PATH should come first, got %q", paths[0])
	}
}

func TestLibrarySearchPathsNotEmpty(t *testing.T) {
	// Even without env overrides there should be standard locations.
	if len(LibrarySearchPaths()) == 0 {
		t.Error("expected standard search paths")
	}
}

func TestFindLibraryNotFound(t *testing.T) {
	t.Setenv("SPOTGO_LIBRARY_PATH", t.TempDir())

	_, err := FindLibrary("definitely-not-a-real-library", []int{12})
	if err == nil {
		t.Fatal("expected error for non-existent library")
	}
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("expected ErrLibraryNotFound, got %v", err)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	err1 := Load()
	err2 := Load()

	// Whatever the outcome, it must be stable across calls.
	if (err1 == nil) != (err2 == nil) {
		t.Errorf("Load results differ: %v vs %v", err1, err2)
	}
	if IsLoaded() != (err1 == nil) {
		t.Errorf("IsLoaded() = %v inconsistent with Load() = %v", IsLoaded(), err1)
	}
}

func TestBuildIDWithoutLibrary(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present on this system")
	}
	if got := BuildID(); got != "" {
		t.Errorf("BuildID without library = %q, want \"\"", got)
	}
}

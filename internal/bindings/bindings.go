//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles locating and loading the libspotify shared
// library and hands its dlopen handle to the sp package for function
// registration via purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/spotgo/internal/platform"
)

// ErrNotLoaded is returned when libspotify functions are called before Load().
var ErrNotLoaded = errors.New("spotgo: libspotify not loaded; call spotgo.Init() first")

// ErrLibraryNotFound is returned when libspotify cannot be found.
var ErrLibraryNotFound = errors.New("spotgo: libspotify library not found")

// libspotify's soname major tracks SPOTIFY_API_VERSION. 12 is the last
// release Spotify shipped; older majors are probed for completeness.
var libVersions = []int{12, 11, 10, 9}

var (
	libSpotify uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Version probe binding, registered at load time.
var spBuildID func() string

// IsLoaded returns true if libspotify has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load locates and dlopens libspotify.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error
	libSpotify, err = loadLibrary("spotify", libVersions)
	if err != nil {
		return fmt.Errorf("loading libspotify: %w", err)
	}

	purego.RegisterLibFunc(&spBuildID, libSpotify, "sp_build_id")
	return nil
}

// loadLibrary attempts to load a library by trying versioned names.
func loadLibrary(name string, versions []int) (uintptr, error) {
	for _, searchPath := range LibrarySearchPaths() {
		// Versioned names first (more specific).
		for _, ver := range versions {
			libName := platform.FormatLibraryName(name, ver)
			lib, err := tryOpen(filepath.Join(searchPath, libName))
			if err == nil {
				return lib, nil
			}
		}

		libName := platform.FormatLibraryName(name, 0)
		lib, err := tryOpen(filepath.Join(searchPath, libName))
		if err == nil {
			return lib, nil
		}
	}

	// Bare names last; lets the system resolver find it.
	for _, ver := range versions {
		lib, err := tryOpen(platform.FormatLibraryName(name, ver))
		if err == nil {
			return lib, nil
		}
	}
	lib, err := tryOpen(platform.FormatLibraryName(name, 0))
	if err == nil {
		return lib, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for libspotify and returns its full path.
// This is useful for diagnostics.
func FindLibrary(name string, versions []int) (string, error) {
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range versions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName(name, ver))
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		fullPath := filepath.Join(searchPath, platform.FormatLibraryName(name, 0))
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// LibrarySearchPaths returns platform-specific library search paths.
// SPOTGO_LIBRARY_PATH takes precedence everywhere since libspotify is no
// longer packaged by distributions and usually lives wherever the
// application unpacked it.
func LibrarySearchPaths() []string {
	var paths []string

	if p := os.Getenv("SPOTGO_LIBRARY_PATH"); p != "" {
		paths = append(paths, filepath.SplitList(p)...)
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib",
			"/opt/libspotify/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/opt/homebrew/lib",
			"/Library/Frameworks/libspotify.framework",
		)

	case "windows":
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		paths = append(paths, "C:\\libspotify\\lib")
	}

	return paths
}

// BuildID returns the libspotify build identifier string
// (e.g. "12.1.51.g86c92b43 Release Linux-x86_64").
// Returns "" if the library is not loaded.
func BuildID() string {
	if !loaded || spBuildID == nil {
		return ""
	}
	return spBuildID()
}

// LibSpotify returns the dlopen handle for libspotify.
func LibSpotify() uintptr {
	return libSpotify
}

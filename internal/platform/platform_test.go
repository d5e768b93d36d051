//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestIs64Bit(t *testing.T) {
	// Only 64-bit platforms are supported.
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		goos    string
		want    string
	}{
		{"spotify", 12, "linux", "libspotify.so.12"},
		{"spotify", 0, "linux", "libspotify.so"},
		{"spotify", 12, "darwin", "libspotify.12.dylib"},
		{"spotify", 0, "darwin", "libspotify.dylib"},
		// The official Windows build keeps the "lib" prefix.
		{"spotify", 12, "windows", "libspotify-12.dll"},
		{"spotify", 0, "windows", "libspotify.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			got := FormatLibraryName(tt.name, tt.version)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tt.name, tt.version, got, tt.want)
			}
		})
	}
}

func TestGOOSAndGOARCH(t *testing.T) {
	if GOOS() != runtime.GOOS {
		t.Errorf("GOOS() = %q, want %q", GOOS(), runtime.GOOS)
	}
	if GOARCH() != runtime.GOARCH {
		t.Errorf("GOARCH() = %q, want %q", GOARCH(), runtime.GOARCH)
	}
}

//go:build !ios && !android && (amd64 || arm64)

// Package platform provides platform detection for spotgo.
// It knows how shared library files are named on each supported OS so the
// loader can probe for libspotify without hardcoding filenames.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// spotgo only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// If version is 0, returns the unversioned library name.
//
// Examples:
//   - Linux:   FormatLibraryName("spotify", 12) -> "libspotify.so.12"
//   - macOS:   FormatLibraryName("spotify", 12) -> "libspotify.12.dylib"
//   - Windows: FormatLibraryName("spotify", 12) -> "libspotify-12.dll"
func FormatLibraryName(name string, version int) string {
	switch runtime.GOOS {
	case "darwin":
		if version > 0 {
			return fmt.Sprintf("%s%s.%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	case "windows":
		// The official Windows distribution ships libspotify.dll with the
		// "lib" prefix baked into the filename, unlike most Windows DLLs.
		if version > 0 {
			return fmt.Sprintf("lib%s-%d%s", name, version, LibraryExtension)
		}
		return fmt.Sprintf("lib%s%s", name, LibraryExtension)
	default: // linux, freebsd
		if version > 0 {
			return fmt.Sprintf("%s%s%s.%d", LibraryPrefix, name, LibraryExtension, version)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	}
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}

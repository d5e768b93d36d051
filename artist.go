//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/sp"
)

// Artist wraps an sp_artist.
type Artist struct {
	handle
}

func newArtist(ptr unsafe.Pointer) *Artist {
	a := &Artist{}
	a.init(ptr, KindArtist)
	runtime.SetFinalizer(a, (*Artist).Release)
	return a
}

// Release drops this wrapper's native reference. Idempotent.
func (a *Artist) Release() {
	a.release(sp.ArtistRelease)
}

// IsLoaded reports whether the artist's metadata has arrived.
func (a *Artist) IsLoaded() (loaded bool, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.ArtistIsLoaded(p)
		return nil
	})
	return
}

// Name returns the artist's name, or "" while not loaded.
func (a *Artist) Name() (name string, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		name = sp.ArtistName(p)
		return nil
	})
	return
}

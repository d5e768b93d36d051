//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/sp"
)

// Album wraps an sp_album.
type Album struct {
	handle
}

func newAlbum(ptr unsafe.Pointer) *Album {
	a := &Album{}
	a.init(ptr, KindAlbum)
	runtime.SetFinalizer(a, (*Album).Release)
	return a
}

// Release drops this wrapper's native reference. Idempotent.
func (a *Album) Release() {
	a.release(sp.AlbumRelease)
}

// IsLoaded reports whether the album's metadata has arrived.
func (a *Album) IsLoaded() (loaded bool, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.AlbumIsLoaded(p)
		return nil
	})
	return
}

// IsAvailable reports whether the album is available in the session
// user's region.
func (a *Album) IsAvailable() (avail bool, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		avail = sp.AlbumIsAvailable(p)
		return nil
	})
	return
}

// Artist returns the album's main artist.
func (a *Album) Artist() (ar *Artist, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.AlbumArtist(p)
		sp.ArtistAddRef(ptr)
		ar = newArtist(ptr)
		return nil
	})
	return
}

// CoverID returns the image id of the album cover (ImageIDSize bytes) at
// the given size, or nil while not loaded or when the album has no cover.
// Resolve it with ImageFromID.
func (a *Album) CoverID(size ImageSize) (id []byte, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		id = sp.AlbumCover(p, size)
		return nil
	})
	return
}

// Name returns the album title, or "" while not loaded.
func (a *Album) Name() (name string, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		name = sp.AlbumName(p)
		return nil
	})
	return
}

// Year returns the release year, or 0 while not loaded.
func (a *Album) Year() (year int, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		year = sp.AlbumYear(p)
		return nil
	})
	return
}

// Type returns whether this is an album, single or compilation.
func (a *Album) Type() (t AlbumType, err error) {
	t = AlbumTypeUnknown
	err = a.withPointer(func(p unsafe.Pointer) error {
		t = sp.AlbumTypeOf(p)
		return nil
	})
	return
}

//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/sp"
)

// Link wraps an sp_link, the parsed form of a "spotify:" URI. Links are
// the loss-free way to move object references in and out of the library.
type Link struct {
	handle
}

func newLink(ptr unsafe.Pointer) *Link {
	l := &Link{}
	l.init(ptr, KindLink)
	runtime.SetFinalizer(l, (*Link).Release)
	return l
}

// ParseLink parses a "spotify:" URI. The returned wrapper is a null
// handle when the URI is not a valid Spotify URI; check IsNull.
func ParseLink(uri string) *Link {
	return newLink(sp.LinkCreateFromString(uri))
}

// Link returns a link to the track, optionally pointing offset into it.
func (t *Track) Link(offset time.Duration) (l *Link, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		l = newLink(sp.LinkCreateFromTrack(p, int32(offset/time.Millisecond)))
		return nil
	})
	return
}

// Link returns a link to the album.
func (a *Album) Link() (l *Link, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		l = newLink(sp.LinkCreateFromAlbum(p))
		return nil
	})
	return
}

// Link returns a link to the artist.
func (a *Artist) Link() (l *Link, err error) {
	err = a.withPointer(func(p unsafe.Pointer) error {
		l = newLink(sp.LinkCreateFromArtist(p))
		return nil
	})
	return
}

// Link returns a link that re-runs the search when followed.
func (s *Search) Link() (l *Link, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		l = newLink(sp.LinkCreateFromSearch(p))
		return nil
	})
	return
}

// Release drops this wrapper's native reference. Idempotent.
func (l *Link) Release() {
	l.release(sp.LinkRelease)
}

// String renders the link as a "spotify:" URI.
func (l *Link) String() (uri string, err error) {
	err = l.withPointer(func(p unsafe.Pointer) error {
		uri = sp.LinkAsString(p)
		return nil
	})
	return
}

// Type returns what the link points at.
func (l *Link) Type() (t LinkType, err error) {
	err = l.withPointer(func(p unsafe.Pointer) error {
		t = sp.LinkTypeOf(p)
		return nil
	})
	return
}

// Track resolves the link to a track. The result is a null handle when
// the link is not a track link.
func (l *Link) Track() (t *Track, err error) {
	err = l.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.LinkAsTrack(p)
		sp.TrackAddRef(ptr)
		t = newTrack(ptr)
		return nil
	})
	return
}

// Album resolves the link to an album. The result is a null handle when
// the link is not an album link.
func (l *Link) Album() (a *Album, err error) {
	err = l.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.LinkAsAlbum(p)
		sp.AlbumAddRef(ptr)
		a = newAlbum(ptr)
		return nil
	})
	return
}

// Artist resolves the link to an artist. The result is a null handle when
// the link is not an artist link.
func (l *Link) Artist() (a *Artist, err error) {
	err = l.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.LinkAsArtist(p)
		sp.ArtistAddRef(ptr)
		a = newArtist(ptr)
		return nil
	})
	return
}

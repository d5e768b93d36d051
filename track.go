//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/sp"
)

// Track wraps an sp_track. Like all libspotify metadata objects it loads
// asynchronously: getters return zero values until IsLoaded reports true
// (wait for the MetadataUpdated callback rather than spinning).
type Track struct {
	handle
}

// newTrack wraps a track pointer whose reference the caller already owns.
// A nil pointer still yields a wrapper; its methods fail with
// *NullHandleError.
func newTrack(ptr unsafe.Pointer) *Track {
	t := &Track{}
	t.init(ptr, KindTrack)
	runtime.SetFinalizer(t, (*Track).Release)
	return t
}

// LocalTrack builds a track object describing a local file. length < 0
// means unknown.
func LocalTrack(artist, title, album string, length time.Duration) *Track {
	ms := int32(-1)
	if length >= 0 {
		ms = int32(length / time.Millisecond)
	}
	return newTrack(sp.LocaltrackCreate(artist, title, album, ms))
}

// Release drops this wrapper's native reference. Further method calls
// fail with *NullHandleError. Idempotent; also run by the finalizer.
func (t *Track) Release() {
	t.release(sp.TrackRelease)
}

// IsLoaded reports whether the track's metadata has arrived.
func (t *Track) IsLoaded() (loaded bool, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.TrackIsLoaded(p)
		return nil
	})
	return
}

// LoadError returns the track's load status; ErrIsLoading while metadata
// is still in flight.
func (t *Track) LoadError() (code ErrorCode, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		code = sp.TrackError(p)
		return nil
	})
	return
}

// IsAvailable reports whether the track can be played in the session
// user's region.
func (t *Track) IsAvailable(s *Session) (avail bool, err error) {
	err = s.withPointer(func(sessPtr unsafe.Pointer) error {
		return t.withPointer(func(p unsafe.Pointer) error {
			avail = sp.TrackIsAvailable(sessPtr, p)
			return nil
		})
	})
	return
}

// IsLocal reports whether the track refers to a local file.
func (t *Track) IsLocal(s *Session) (local bool, err error) {
	err = s.withPointer(func(sessPtr unsafe.Pointer) error {
		return t.withPointer(func(p unsafe.Pointer) error {
			local = sp.TrackIsLocal(sessPtr, p)
			return nil
		})
	})
	return
}

// IsAutolinked reports whether playback would actually use a different
// (relinked) track.
func (t *Track) IsAutolinked(s *Session) (linked bool, err error) {
	err = s.withPointer(func(sessPtr unsafe.Pointer) error {
		return t.withPointer(func(p unsafe.Pointer) error {
			linked = sp.TrackIsAutolinked(sessPtr, p)
			return nil
		})
	})
	return
}

// IsStarred reports whether the session user has starred the track.
func (t *Track) IsStarred(s *Session) (starred bool, err error) {
	err = s.withPointer(func(sessPtr unsafe.Pointer) error {
		return t.withPointer(func(p unsafe.Pointer) error {
			starred = sp.TrackIsStarred(sessPtr, p)
			return nil
		})
	})
	return
}

// SetStarred stars or unstars a batch of tracks in one request.
func SetStarred(s *Session, tracks []*Track, star bool) error {
	return s.withPointer(func(sessPtr unsafe.Pointer) error {
		ptrs := make([]sp.Track, 0, len(tracks))
		for _, t := range tracks {
			if err := t.withPointer(func(p unsafe.Pointer) error {
				ptrs = append(ptrs, p)
				return nil
			}); err != nil {
				return err
			}
		}
		return sp.TrackSetStarred(sessPtr, ptrs, star)
	})
}

// NumArtists returns the number of performing artists.
func (t *Track) NumArtists() (n int, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		n = sp.TrackNumArtists(p)
		return nil
	})
	return
}

// Artist returns the performing artist at index.
func (t *Track) Artist(index int) (a *Artist, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.TrackArtist(p, index)
		sp.ArtistAddRef(ptr)
		a = newArtist(ptr)
		return nil
	})
	return
}

// Album returns the track's album.
func (t *Track) Album() (a *Album, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.TrackAlbum(p)
		sp.AlbumAddRef(ptr)
		a = newAlbum(ptr)
		return nil
	})
	return
}

// Name returns the track title, or "" while not loaded.
func (t *Track) Name() (name string, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		name = sp.TrackName(p)
		return nil
	})
	return
}

// Duration returns the track length, or 0 while not loaded.
func (t *Track) Duration() (d time.Duration, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		d = time.Duration(sp.TrackDuration(p)) * time.Millisecond
		return nil
	})
	return
}

// Popularity returns the track popularity in [0, 100].
func (t *Track) Popularity() (pop int, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		pop = sp.TrackPopularity(p)
		return nil
	})
	return
}

// Disc returns the 1-based disc number. Only meaningful for tracks from
// an album browse.
func (t *Track) Disc() (disc int, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		disc = sp.TrackDisc(p)
		return nil
	})
	return
}

// Index returns the 1-based position on the track's disc. Only meaningful
// for tracks from an album browse.
func (t *Track) Index() (idx int, err error) {
	err = t.withPointer(func(p unsafe.Pointer) error {
		idx = sp.TrackIndex(p)
		return nil
	})
	return
}

//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"errors"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/internal/handles"
	"github.com/obinnaokechukwu/spotgo/sp"
)

// AlbumBrowse wraps an sp_albumbrowse: the full detail view of one album
// (tracks, copyrights, review), fetched asynchronously.
type AlbumBrowse struct {
	handle

	onComplete func(*AlbumBrowse)
	token      uintptr
	completed  atomic.Bool
	ready      chan struct{}
}

func (b *AlbumBrowse) complete() {
	if b.ready != nil {
		<-b.ready
	}
	if !b.completed.CompareAndSwap(false, true) {
		return
	}
	if b.onComplete != nil {
		b.onComplete(b)
	}
}

// BrowseAlbum fetches the detail view of an album. onComplete (optional)
// fires once on a library thread when the data has arrived.
func (sess *Session) BrowseAlbum(album *Album, onComplete func(*AlbumBrowse)) (*AlbumBrowse, error) {
	b := &AlbumBrowse{onComplete: onComplete, ready: make(chan struct{})}
	b.token = handles.Register(b)

	err := sess.withPointer(func(p unsafe.Pointer) error {
		return album.withPointer(func(ap unsafe.Pointer) error {
			ptr := sp.AlbumBrowseCreate(p, ap, completionCallback(), unsafe.Pointer(b.token))
			if ptr == nil {
				return errors.New("spotgo: sp_albumbrowse_create failed")
			}
			b.init(ptr, KindAlbumBrowse)
			return nil
		})
	})
	close(b.ready)
	if err != nil {
		handles.Unregister(b.token)
		return nil, err
	}
	runtime.SetFinalizer(b, (*AlbumBrowse).Release)
	return b, nil
}

// Release drops the wrapper's native reference and any pending completion
// root. Idempotent.
func (b *AlbumBrowse) Release() {
	b.release(func(p unsafe.Pointer) {
		handles.Unregister(b.token)
		sp.AlbumBrowseRelease(p)
	})
}

// IsLoaded reports whether the browse has completed.
func (b *AlbumBrowse) IsLoaded() (loaded bool, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.AlbumBrowseIsLoaded(p)
		return nil
	})
	return
}

// LoadError returns the browse's completion status.
func (b *AlbumBrowse) LoadError() (code ErrorCode, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		code = sp.AlbumBrowseError(p)
		return nil
	})
	return
}

// Album returns the browsed album.
func (b *AlbumBrowse) Album() (a *Album, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.AlbumBrowseAlbum(p)
		sp.AlbumAddRef(ptr)
		a = newAlbum(ptr)
		return nil
	})
	return
}

// Artist returns the album's artist.
func (b *AlbumBrowse) Artist() (a *Artist, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.AlbumBrowseArtist(p)
		sp.ArtistAddRef(ptr)
		a = newArtist(ptr)
		return nil
	})
	return
}

// NumCopyrights returns the number of copyright strings.
func (b *AlbumBrowse) NumCopyrights() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.AlbumBrowseNumCopyrights(p)
		return nil
	})
	return
}

// Copyright returns the copyright string at index.
func (b *AlbumBrowse) Copyright(index int) (c string, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		c = sp.AlbumBrowseCopyright(p, index)
		return nil
	})
	return
}

// NumTracks returns the number of tracks on the album.
func (b *AlbumBrowse) NumTracks() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.AlbumBrowseNumTracks(p)
		return nil
	})
	return
}

// Track returns the album track at index.
func (b *AlbumBrowse) Track(index int) (t *Track, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.AlbumBrowseTrack(p, index)
		sp.TrackAddRef(ptr)
		t = newTrack(ptr)
		return nil
	})
	return
}

// Review returns the album review text, or "".
func (b *AlbumBrowse) Review() (review string, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		review = sp.AlbumBrowseReview(p)
		return nil
	})
	return
}

// ArtistBrowse wraps an sp_artistbrowse: the full detail view of one
// artist (tracks, albums, similar artists, portraits, biography).
type ArtistBrowse struct {
	handle

	onComplete func(*ArtistBrowse)
	token      uintptr
	completed  atomic.Bool
	ready      chan struct{}
}

func (b *ArtistBrowse) complete() {
	if b.ready != nil {
		<-b.ready
	}
	if !b.completed.CompareAndSwap(false, true) {
		return
	}
	if b.onComplete != nil {
		b.onComplete(b)
	}
}

// BrowseArtist fetches the detail view of an artist. browseType selects
// how much of it to load; ArtistBrowseNoTracks and ArtistBrowseNoAlbums
// skip the corresponding lists and resolve much faster. onComplete
// (optional) fires once on a library thread when the data has arrived.
func (sess *Session) BrowseArtist(artist *Artist, browseType ArtistBrowseType, onComplete func(*ArtistBrowse)) (*ArtistBrowse, error) {
	b := &ArtistBrowse{onComplete: onComplete, ready: make(chan struct{})}
	b.token = handles.Register(b)

	err := sess.withPointer(func(p unsafe.Pointer) error {
		return artist.withPointer(func(ap unsafe.Pointer) error {
			ptr := sp.ArtistBrowseCreate(p, ap, browseType, completionCallback(), unsafe.Pointer(b.token))
			if ptr == nil {
				return errors.New("spotgo: sp_artistbrowse_create failed")
			}
			b.init(ptr, KindArtistBrowse)
			return nil
		})
	})
	close(b.ready)
	if err != nil {
		handles.Unregister(b.token)
		return nil, err
	}
	runtime.SetFinalizer(b, (*ArtistBrowse).Release)
	return b, nil
}

// Release drops the wrapper's native reference and any pending completion
// root. Idempotent.
func (b *ArtistBrowse) Release() {
	b.release(func(p unsafe.Pointer) {
		handles.Unregister(b.token)
		sp.ArtistBrowseRelease(p)
	})
}

// IsLoaded reports whether the browse has completed.
func (b *ArtistBrowse) IsLoaded() (loaded bool, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.ArtistBrowseIsLoaded(p)
		return nil
	})
	return
}

// LoadError returns the browse's completion status.
func (b *ArtistBrowse) LoadError() (code ErrorCode, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		code = sp.ArtistBrowseError(p)
		return nil
	})
	return
}

// Artist returns the browsed artist.
func (b *ArtistBrowse) Artist() (a *Artist, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ArtistBrowseArtist(p)
		sp.ArtistAddRef(ptr)
		a = newArtist(ptr)
		return nil
	})
	return
}

// NumPortraits returns the number of portrait images.
func (b *ArtistBrowse) NumPortraits() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.ArtistBrowseNumPortraits(p)
		return nil
	})
	return
}

// PortraitID returns the image id of the portrait at index. Resolve it
// with ImageFromID.
func (b *ArtistBrowse) PortraitID(index int) (id []byte, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		id = sp.ArtistBrowsePortrait(p, index)
		return nil
	})
	return
}

// NumTracks returns the number of tracks in the browse result.
func (b *ArtistBrowse) NumTracks() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.ArtistBrowseNumTracks(p)
		return nil
	})
	return
}

// Track returns the track at index.
func (b *ArtistBrowse) Track(index int) (t *Track, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ArtistBrowseTrack(p, index)
		sp.TrackAddRef(ptr)
		t = newTrack(ptr)
		return nil
	})
	return
}

// NumAlbums returns the number of albums in the browse result.
func (b *ArtistBrowse) NumAlbums() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.ArtistBrowseNumAlbums(p)
		return nil
	})
	return
}

// Album returns the album at index.
func (b *ArtistBrowse) Album(index int) (a *Album, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ArtistBrowseAlbum(p, index)
		sp.AlbumAddRef(ptr)
		a = newAlbum(ptr)
		return nil
	})
	return
}

// NumSimilarArtists returns the number of similar artists.
func (b *ArtistBrowse) NumSimilarArtists() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.ArtistBrowseNumSimilarArtists(p)
		return nil
	})
	return
}

// SimilarArtist returns the similar artist at index.
func (b *ArtistBrowse) SimilarArtist(index int) (a *Artist, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ArtistBrowseSimilarArtist(p, index)
		sp.ArtistAddRef(ptr)
		a = newArtist(ptr)
		return nil
	})
	return
}

// Biography returns the artist biography text, or "".
func (b *ArtistBrowse) Biography() (bio string, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		bio = sp.ArtistBrowseBiography(p)
		return nil
	})
	return
}

// ToplistBrowse wraps an sp_toplistbrowse: a chart of top artists, albums
// or tracks for a region or user.
type ToplistBrowse struct {
	handle

	onComplete func(*ToplistBrowse)
	token      uintptr
	completed  atomic.Bool
	ready      chan struct{}
}

func (b *ToplistBrowse) complete() {
	if b.ready != nil {
		<-b.ready
	}
	if !b.completed.CompareAndSwap(false, true) {
		return
	}
	if b.onComplete != nil {
		b.onComplete(b)
	}
}

// BrowseToplist fetches a chart. username is only consulted with
// ToplistRegionUser; empty means the logged-in user. onComplete
// (optional) fires once on a library thread when the data has arrived.
func (sess *Session) BrowseToplist(listType ToplistType, region ToplistRegion, username string, onComplete func(*ToplistBrowse)) (*ToplistBrowse, error) {
	b := &ToplistBrowse{onComplete: onComplete, ready: make(chan struct{})}
	b.token = handles.Register(b)

	err := sess.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ToplistBrowseCreate(p, listType, region, username, completionCallback(), unsafe.Pointer(b.token))
		if ptr == nil {
			return errors.New("spotgo: sp_toplistbrowse_create failed")
		}
		b.init(ptr, KindToplistBrowse)
		return nil
	})
	close(b.ready)
	if err != nil {
		handles.Unregister(b.token)
		return nil, err
	}
	runtime.SetFinalizer(b, (*ToplistBrowse).Release)
	return b, nil
}

// Release drops the wrapper's native reference and any pending completion
// root. Idempotent.
func (b *ToplistBrowse) Release() {
	b.release(func(p unsafe.Pointer) {
		handles.Unregister(b.token)
		sp.ToplistBrowseRelease(p)
	})
}

// IsLoaded reports whether the browse has completed.
func (b *ToplistBrowse) IsLoaded() (loaded bool, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.ToplistBrowseIsLoaded(p)
		return nil
	})
	return
}

// LoadError returns the browse's completion status.
func (b *ToplistBrowse) LoadError() (code ErrorCode, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		code = sp.ToplistBrowseError(p)
		return nil
	})
	return
}

// NumArtists returns the number of artists in the chart.
func (b *ToplistBrowse) NumArtists() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.ToplistBrowseNumArtists(p)
		return nil
	})
	return
}

// Artist returns the chart artist at index.
func (b *ToplistBrowse) Artist(index int) (a *Artist, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ToplistBrowseArtist(p, index)
		sp.ArtistAddRef(ptr)
		a = newArtist(ptr)
		return nil
	})
	return
}

// NumAlbums returns the number of albums in the chart.
func (b *ToplistBrowse) NumAlbums() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.ToplistBrowseNumAlbums(p)
		return nil
	})
	return
}

// Album returns the chart album at index.
func (b *ToplistBrowse) Album(index int) (a *Album, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ToplistBrowseAlbum(p, index)
		sp.AlbumAddRef(ptr)
		a = newAlbum(ptr)
		return nil
	})
	return
}

// NumTracks returns the number of tracks in the chart.
func (b *ToplistBrowse) NumTracks() (n int, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		n = sp.ToplistBrowseNumTracks(p)
		return nil
	})
	return
}

// Track returns the chart track at index.
func (b *ToplistBrowse) Track(index int) (t *Track, err error) {
	err = b.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.ToplistBrowseTrack(p, index)
		sp.TrackAddRef(ptr)
		t = newTrack(ptr)
		return nil
	})
	return
}

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

// Search wraps an sp_search, an asynchronous query whose results populate
// when the completion callback fires. Until then IsLoaded is false and
// the getters return zero values.
type Search struct {
	handle

	onComplete func(*Search)
	token      uintptr
	completed  atomic.Bool
	ready      chan struct{}
}

// complete delivers the completion notification exactly once. A second
// native invocation, or an invocation racing with release, is ignored.
// The native callback can fire on the pumping thread before the creating
// goroutine has stored the pointer into the wrapper; ready is closed once
// it has, so onComplete never observes a half-built handle.
func (s *Search) complete() {
	if s.ready != nil {
		<-s.ready
	}
	if !s.completed.CompareAndSwap(false, true) {
		return
	}
	if s.onComplete != nil {
		s.onComplete(s)
	}
}

// Search issues an asynchronous search. onComplete (optional) fires once
// on a library thread when results have arrived; the *Search stays valid
// until the caller releases it. While the request is in flight the
// wrapper is rooted in the handle registry, so it survives even if the
// caller drops it before completion.
func (sess *Session) Search(q SearchQuery, onComplete func(*Search)) (*Search, error) {
	search := &Search{onComplete: onComplete, ready: make(chan struct{})}
	search.token = handles.Register(search)

	err := sess.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.SearchCreate(p, q, completionCallback(), unsafe.Pointer(search.token))
		if ptr == nil {
			return errors.New("spotgo: sp_search_create failed")
		}
		search.init(ptr, KindSearch)
		return nil
	})
	close(search.ready)
	if err != nil {
		handles.Unregister(search.token)
		return nil, err
	}
	runtime.SetFinalizer(search, (*Search).Release)
	return search, nil
}

// RadioSearchSupported reports whether the loaded libspotify exports the
// radio search entry point. libspotify removed it in API 11, so against a
// current library this is false.
func RadioSearchSupported() bool {
	return sp.RadioSearchSupported()
}

// RadioSearch issues an asynchronous radio search over a year range and
// genre mask. Completion works like Search.
//
// sp_radio_search_create only exists in libspotify before API 11; against
// newer libraries this fails without issuing a request. Check
// RadioSearchSupported first.
func (sess *Session) RadioSearch(fromYear, toYear int, genres RadioGenre, onComplete func(*Search)) (*Search, error) {
	if !sp.RadioSearchSupported() {
		return nil, errors.New("spotgo: radio search is not provided by this libspotify")
	}

	search := &Search{onComplete: onComplete, ready: make(chan struct{})}
	search.token = handles.Register(search)

	err := sess.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.RadioSearchCreate(p, fromYear, toYear, genres, completionCallback(), unsafe.Pointer(search.token))
		if ptr == nil {
			return errors.New("spotgo: sp_radio_search_create failed")
		}
		search.init(ptr, KindSearch)
		return nil
	})
	close(search.ready)
	if err != nil {
		handles.Unregister(search.token)
		return nil, err
	}
	runtime.SetFinalizer(search, (*Search).Release)
	return search, nil
}

// Release drops the wrapper's native reference and, if the completion
// never fired, its registry root. Idempotent.
func (s *Search) Release() {
	s.release(func(p unsafe.Pointer) {
		handles.Unregister(s.token)
		sp.SearchRelease(p)
	})
}

// IsLoaded reports whether the search has completed.
func (s *Search) IsLoaded() (loaded bool, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.SearchIsLoaded(p)
		return nil
	})
	return
}

// LoadError returns the search's completion status.
func (s *Search) LoadError() (code ErrorCode, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		code = sp.SearchError(p)
		return nil
	})
	return
}

// Query returns the query string the search was created with.
func (s *Search) Query() (q string, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		q = sp.SearchQueryString(p)
		return nil
	})
	return
}

// DidYouMean returns the server's spelling suggestion, or "".
func (s *Search) DidYouMean() (suggestion string, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		suggestion = sp.SearchDidYouMean(p)
		return nil
	})
	return
}

// NumTracks returns the number of tracks in this result page.
func (s *Search) NumTracks() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.SearchNumTracks(p)
		return nil
	})
	return
}

// Track returns the result track at index.
func (s *Search) Track(index int) (t *Track, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.SearchTrack(p, index)
		sp.TrackAddRef(ptr)
		t = newTrack(ptr)
		return nil
	})
	return
}

// NumAlbums returns the number of albums in this result page.
func (s *Search) NumAlbums() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.SearchNumAlbums(p)
		return nil
	})
	return
}

// Album returns the result album at index.
func (s *Search) Album(index int) (a *Album, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.SearchAlbum(p, index)
		sp.AlbumAddRef(ptr)
		a = newAlbum(ptr)
		return nil
	})
	return
}

// NumArtists returns the number of artists in this result page.
func (s *Search) NumArtists() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.SearchNumArtists(p)
		return nil
	})
	return
}

// Artist returns the result artist at index.
func (s *Search) Artist(index int) (a *Artist, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.SearchArtist(p, index)
		sp.ArtistAddRef(ptr)
		a = newArtist(ptr)
		return nil
	})
	return
}

// TotalTracks returns the total number of matching tracks on the server,
// which may exceed this page.
func (s *Search) TotalTracks() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.SearchTotalTracks(p)
		return nil
	})
	return
}

// TotalAlbums returns the total number of matching albums.
func (s *Search) TotalAlbums() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.SearchTotalAlbums(p)
		return nil
	})
	return
}

// TotalArtists returns the total number of matching artists.
func (s *Search) TotalArtists() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.SearchTotalArtists(p)
		return nil
	})
	return
}

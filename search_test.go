//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/spotgo/internal/handles"
)

func TestSearchCreateFailureCleansRoot(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present; fake pointers are unsafe")
	}

	var b byte
	sess := &Session{}
	sess.init(unsafe.Pointer(&b), KindSession)

	before := handles.Count()
	if _, err := sess.Search(SearchQuery{Query: "genesis"}, nil); err == nil {
		t.Fatal("expected error without the native library")
	}
	if got := handles.Count(); got != before {
		t.Errorf("handle registry count = %d, want %d (root leaked)", got, before)
	}
}

func TestSearchOnReleasedSession(t *testing.T) {
	sess := &Session{}
	sess.init(nil, KindSession)

	_, err := sess.Search(SearchQuery{Query: "x"}, nil)
	var nullErr *NullHandleError
	if !errors.As(err, &nullErr) {
		t.Fatalf("expected *NullHandleError, got %v", err)
	}
	if nullErr.Kind != KindSession {
		t.Errorf("Kind = %q, want %q", nullErr.Kind, KindSession)
	}
}

func TestSearchReleaseDropsPendingRoot(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present; fake pointers are unsafe")
	}

	var b byte
	search := &Search{}
	search.token = handles.Register(search)
	search.init(unsafe.Pointer(&b), KindSearch)

	// Completion never fires; Release must still drop the registry root.
	search.Release()

	if handles.Lookup(search.token) != nil {
		t.Error("pending completion root survived Release")
	}
	if !search.IsNull() {
		t.Error("search should be null after Release")
	}
	search.Release() // idempotent
}

func TestCompletionAfterReleaseIsHarmless(t *testing.T) {
	var fired int
	search := &Search{onComplete: func(s *Search) {
		fired++
		// The wrapper is already released; accessors must fail, not crash.
		if _, err := s.NumTracks(); err == nil {
			t.Error("expected error from accessor on released search")
		}
	}}
	search.token = handles.Register(search)
	search.init(nil, KindSearch)
	search.Release()

	// A racing native completion that looked up the record before the
	// release unregistered it.
	search.complete()
	search.complete()

	if fired != 1 {
		t.Errorf("onComplete fired %d times, want 1", fired)
	}
}

func TestBrowseOnNullInputs(t *testing.T) {
	var b byte
	sess := &Session{}
	sess.init(unsafe.Pointer(&b), KindSession)

	album := newAlbum(nil)
	if _, err := sess.BrowseAlbum(album, nil); err == nil {
		t.Error("expected error browsing a null album")
	}

	artist := newArtist(nil)
	if _, err := sess.BrowseArtist(artist, ArtistBrowseFull, nil); err == nil {
		t.Error("expected error browsing a null artist")
	}
}

func TestPostTracksValidation(t *testing.T) {
	var b byte
	sess := &Session{}
	sess.init(unsafe.Pointer(&b), KindSession)

	if _, err := sess.PostTracks("friend", nil, "hi", nil); err == nil {
		t.Error("expected error posting zero tracks")
	}

	before := handles.Count()
	if _, err := sess.PostTracks("friend", []*Track{newTrack(nil)}, "hi", nil); err == nil {
		t.Error("expected error posting a null track")
	}
	if got := handles.Count(); got != before {
		t.Errorf("handle registry count = %d, want %d (root leaked)", got, before)
	}
}

func TestCompletionWaitsForPublishedHandle(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present; fake pointers are unsafe")
	}

	// The native completion can fire on the pumping thread while the
	// creating goroutine is still between the create call and storing the
	// pointer. Dispatch must hold until the handle is populated.
	fired := make(chan error, 1)
	search := &Search{ready: make(chan struct{})}
	search.onComplete = func(s *Search) {
		_, err := s.IsLoaded()
		fired <- err
	}
	search.token = handles.Register(search)

	go trampolineCompletion(purego.CDecl{}, nil, unsafe.Pointer(search.token))

	select {
	case <-fired:
		t.Fatal("completion dispatched before the handle was populated")
	case <-time.After(50 * time.Millisecond):
	}

	var b byte
	search.init(unsafe.Pointer(&b), KindSearch)
	close(search.ready)

	select {
	case err := <-fired:
		if err != nil {
			t.Fatalf("accessor inside completion failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("completion never dispatched after the handle was populated")
	}
	if handles.Lookup(search.token) != nil {
		t.Error("completion root should be unregistered after firing")
	}
}

func TestRadioSearchUnsupported(t *testing.T) {
	if RadioSearchSupported() {
		t.Skip("this libspotify still exports radio search")
	}

	var b byte
	sess := &Session{}
	sess.init(unsafe.Pointer(&b), KindSession)

	before := handles.Count()
	if _, err := sess.RadioSearch(1990, 2000, 0, nil); err == nil {
		t.Fatal("expected an error when the library lacks radio search")
	}
	if got := handles.Count(); got != before {
		t.Errorf("handle registry count = %d, want %d (root leaked)", got, before)
	}
}

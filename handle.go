//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"sync"
	"unsafe"
)

// Kind names the libspotify object class behind a handle. It appears in
// NullHandleError messages so use-after-release failures identify what was
// released.
type Kind string

const (
	KindSession           Kind = "session"
	KindTrack             Kind = "track"
	KindAlbum             Kind = "album"
	KindArtist            Kind = "artist"
	KindAlbumBrowse       Kind = "albumbrowse"
	KindArtistBrowse      Kind = "artistbrowse"
	KindToplistBrowse     Kind = "toplistbrowse"
	KindSearch            Kind = "search"
	KindLink              Kind = "link"
	KindImage             Kind = "image"
	KindUser              Kind = "user"
	KindPlaylist          Kind = "playlist"
	KindPlaylistContainer Kind = "playlistcontainer"
	KindInbox             Kind = "inbox"
)

// NullHandleError reports an operation against a handle whose native
// pointer is null, either because it was released or because the native
// call that produced it returned NULL. It always indicates a caller bug
// (use after release) or an unloaded/absent native object; it is never
// retried by the binding.
type NullHandleError struct {
	Kind Kind
}

func (e *NullHandleError) Error() string {
	return "spotgo: " + string(e.Kind) + " handle is null (released or never populated)"
}

// handle wraps one opaque libspotify pointer. Wrapper types embed it.
//
// The wrapper may be one of several owners of the same native object: the
// native side counts references, and the one release this handle performs
// pairs with the add-ref (or owned creation) done when it was wrapped.
type handle struct {
	mu    sync.Mutex
	ptr   unsafe.Pointer
	kind  Kind
	calls sync.WaitGroup
}

func (h *handle) init(ptr unsafe.Pointer, kind Kind) {
	h.mu.Lock()
	h.ptr = ptr
	h.kind = kind
	h.mu.Unlock()
}

// IsNull reports whether the handle has been released or never held a
// native object. It never fails.
func (h *handle) IsNull() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ptr == nil
}

// withPointer pins the native pointer for the duration of fn. The handle
// lock is held only to snapshot the pointer, never across the native call:
// libspotify delivers callbacks synchronously from inside calls such as
// sp_session_process_events, and those callbacks may invoke methods on the
// same handle. release waits for pinned calls to drain before freeing the
// native object, so the pointer stays valid for the whole of fn. On a null
// handle no native call happens and the error is NullHandleError.
func (h *handle) withPointer(fn func(p unsafe.Pointer) error) error {
	h.mu.Lock()
	if h.ptr == nil {
		h.mu.Unlock()
		return &NullHandleError{Kind: h.kind}
	}
	p := h.ptr
	h.calls.Add(1)
	h.mu.Unlock()
	defer h.calls.Done()
	return fn(p)
}

// release nulls the pointer, waits for in-flight withPointer calls to
// return, and hands the old value to releaseFn, exactly once. A second
// release, or a finalizer running after an explicit release, finds a null
// pointer and does nothing. This is the teardown idempotence every wrapper
// relies on.
//
// Because release blocks on in-flight calls, it must not be invoked from
// inside a callback that fired during a call on the same handle.
func (h *handle) release(releaseFn func(p unsafe.Pointer)) {
	h.mu.Lock()
	p := h.ptr
	h.ptr = nil
	h.mu.Unlock()
	if p == nil {
		return
	}
	h.calls.Wait()
	if releaseFn != nil {
		releaseFn(p)
	}
}

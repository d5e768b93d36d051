//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"
)

func TestHandleWithPointer(t *testing.T) {
	var b byte
	h := &handle{}
	h.init(unsafe.Pointer(&b), KindTrack)

	var got unsafe.Pointer
	err := h.withPointer(func(p unsafe.Pointer) error {
		got = p
		return nil
	})
	if err != nil {
		t.Fatalf("withPointer failed: %v", err)
	}
	if got != unsafe.Pointer(&b) {
		t.Error("withPointer passed wrong pointer")
	}
}

func TestHandleReleaseIdempotent(t *testing.T) {
	var b byte
	var releases int32

	h := &handle{}
	h.init(unsafe.Pointer(&b), KindAlbum)

	for i := 0; i < 5; i++ {
		h.release(func(unsafe.Pointer) { atomic.AddInt32(&releases, 1) })
	}

	if releases != 1 {
		t.Errorf("release fn ran %d times, want 1", releases)
	}
}

func TestHandleConcurrentRelease(t *testing.T) {
	var b byte
	var releases int32

	h := &handle{}
	h.init(unsafe.Pointer(&b), KindSearch)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.release(func(unsafe.Pointer) { atomic.AddInt32(&releases, 1) })
		}()
	}
	wg.Wait()

	if releases != 1 {
		t.Errorf("release fn ran %d times under contention, want 1", releases)
	}
}

func TestHandleUseAfterRelease(t *testing.T) {
	var b byte
	h := &handle{}
	h.init(unsafe.Pointer(&b), KindArtist)
	h.release(nil)

	err := h.withPointer(func(unsafe.Pointer) error {
		t.Error("fn must not run on a released handle")
		return nil
	})

	var nullErr *NullHandleError
	if !errors.As(err, &nullErr) {
		t.Fatalf("expected *NullHandleError, got %v", err)
	}
	if nullErr.Kind != KindArtist {
		t.Errorf("Kind = %q, want %q", nullErr.Kind, KindArtist)
	}
	if !strings.Contains(nullErr.Error(), "artist") {
		t.Errorf("message %q should name the kind", nullErr.Error())
	}
}

func TestHandleIsNull(t *testing.T) {
	h := &handle{}
	h.init(nil, KindImage)
	if !h.IsNull() {
		t.Error("handle wrapping nil should be null")
	}

	var b byte
	h2 := &handle{}
	h2.init(unsafe.Pointer(&b), KindImage)
	if h2.IsNull() {
		t.Error("populated handle should not be null")
	}

	h2.release(nil)
	if !h2.IsNull() {
		t.Error("released handle should be null")
	}
}

func TestWrapperOfNilPointer(t *testing.T) {
	// Native getters may return NULL; the wrapper still exists but every
	// accessor fails.
	tr := newTrack(nil)

	if _, err := tr.Name(); err == nil {
		t.Error("expected error from accessor on null track")
	}

	var nullErr *NullHandleError
	_, err := tr.Duration()
	if !errors.As(err, &nullErr) {
		t.Fatalf("expected *NullHandleError, got %v", err)
	}
	if nullErr.Kind != KindTrack {
		t.Errorf("Kind = %q, want %q", nullErr.Kind, KindTrack)
	}

	// Releasing a null wrapper is a no-op.
	tr.Release()
	tr.Release()
}

func TestTrackReleaseThenUse(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present; fake pointers are unsafe")
	}

	var b byte
	tr := newTrack(unsafe.Pointer(&b))

	if _, err := tr.Name(); err != nil {
		t.Fatalf("accessor on live handle failed: %v", err)
	}

	tr.Release()

	if _, err := tr.Name(); err == nil {
		t.Error("expected error after Release")
	}
	if !tr.IsNull() {
		t.Error("released track should be null")
	}
}

func TestHandleReentrantWithPointer(t *testing.T) {
	var b byte
	h := &handle{}
	h.init(unsafe.Pointer(&b), KindSession)

	// Callbacks delivered from inside a native call invoke methods on the
	// same handle, on the same goroutine. That must not block.
	done := make(chan error, 1)
	go func() {
		done <- h.withPointer(func(unsafe.Pointer) error {
			return h.withPointer(func(unsafe.Pointer) error { return nil })
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("nested withPointer failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("nested withPointer on the same handle never returned")
	}
}

func TestHandleReleaseWaitsForInFlightCall(t *testing.T) {
	var b byte
	h := &handle{}
	h.init(unsafe.Pointer(&b), KindTrack)

	entered := make(chan struct{})
	exit := make(chan struct{})
	go h.withPointer(func(unsafe.Pointer) error {
		close(entered)
		<-exit
		return nil
	})
	<-entered

	released := make(chan struct{})
	go func() {
		h.release(func(unsafe.Pointer) {})
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("release freed the pointer while a call was still using it")
	case <-time.After(50 * time.Millisecond):
	}

	close(exit)
	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("release never completed after the call returned")
	}
}

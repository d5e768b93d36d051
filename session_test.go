//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"errors"
	"testing"
	"unsafe"
)

func TestSessionMethodsAfterRelease(t *testing.T) {
	sess := &Session{}
	sess.init(nil, KindSession)

	var nullErr *NullHandleError
	if err := sess.Login("user", "pass", false); !errors.As(err, &nullErr) {
		t.Errorf("Login on null session = %v, want *NullHandleError", err)
	}
	if _, err := sess.ProcessEvents(); !errors.As(err, &nullErr) {
		t.Errorf("ProcessEvents on null session = %v, want *NullHandleError", err)
	}
	if err := sess.PlayerPlay(true); !errors.As(err, &nullErr) {
		t.Errorf("PlayerPlay on null session = %v, want *NullHandleError", err)
	}
	if _, err := sess.ConnectionState(); !errors.As(err, &nullErr) {
		t.Errorf("ConnectionState on null session = %v, want *NullHandleError", err)
	}
}

func TestSessionReleaseIdempotent(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present; fake pointers are unsafe")
	}

	var b byte
	ptr := unsafe.Pointer(&b)

	sess := &Session{}
	sess.init(ptr, KindSession)
	registerSession(ptr, sess)

	sess.Release()
	sess.Release()

	if !sess.IsNull() {
		t.Error("session should be null after Release")
	}
	if lookupSession(ptr) != nil {
		t.Error("released session still resolvable by trampolines")
	}
}

func TestSessionCString(t *testing.T) {
	s := &Session{}

	if p := s.cString(""); p != nil {
		t.Error("empty string should become a NULL pointer")
	}

	p := s.cString("proxy.example.com:8080")
	if p == nil {
		t.Fatal("non-empty string should become a C string")
	}
	if *p != 'p' {
		t.Errorf("first byte = %c, want p", *p)
	}
	if len(s.cstrings) != 1 {
		t.Errorf("backing buffer not retained: %d", len(s.cstrings))
	}
	buf := s.cstrings[0]
	if buf[len(buf)-1] != 0 {
		t.Error("C string is not NUL terminated")
	}
}

func TestLocalTrack(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present; this asserts the unloaded behavior")
	}

	// Without the library the native create returns nothing; the wrapper
	// must still be safe to use and release.
	tr := LocalTrack("Artist", "Title", "Album", -1)
	if !tr.IsNull() {
		t.Error("expected null wrapper without the native library")
	}
	tr.Release()
}

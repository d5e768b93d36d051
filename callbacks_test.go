//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/spotgo/internal/handles"
	"github.com/obinnaokechukwu/spotgo/sp"
)

// newFakeSession wires a wrapper around fabricated memory into the
// trampoline lookup table, so trampolines can be driven directly without
// the native library.
func newFakeSession(t *testing.T, cb *SessionCallbacks) (*Session, unsafe.Pointer) {
	t.Helper()

	buf := new([16]byte)
	ptr := unsafe.Pointer(buf)

	s := &Session{callbacks: cb}
	s.init(ptr, KindSession)
	registerSession(ptr, s)
	t.Cleanup(func() { unregisterSession(ptr) })
	return s, ptr
}

func TestTrampolineLoggedIn(t *testing.T) {
	var gotErr error
	var fired int32

	_, ptr := newFakeSession(t, &SessionCallbacks{
		LoggedIn: func(_ *Session, err error) {
			atomic.AddInt32(&fired, 1)
			gotErr = err
		},
	})

	trampolineLoggedIn(purego.CDecl{}, ptr, int32(sp.ErrOK))
	if fired != 1 {
		t.Fatalf("LoggedIn fired %d times, want 1", fired)
	}
	if gotErr != nil {
		t.Errorf("success login should deliver nil error, got %v", gotErr)
	}

	trampolineLoggedIn(purego.CDecl{}, ptr, int32(sp.ErrBadUsernameOrPassword))
	if fired != 2 {
		t.Fatalf("LoggedIn fired %d times, want 2", fired)
	}
	if Code(gotErr) != ErrBadUsernameOrPassword {
		t.Errorf("Code = %d, want bad username/password", Code(gotErr))
	}
}

func TestTrampolineUnknownSessionIgnored(t *testing.T) {
	var b byte
	// Never registered; the event must be dropped without panicking.
	trampolineLoggedOut(purego.CDecl{}, unsafe.Pointer(&b))
	trampolineMetadataUpdated(purego.CDecl{}, nil)
}

func TestTrampolineNilCallbackIgnored(t *testing.T) {
	_, ptr := newFakeSession(t, &SessionCallbacks{})
	trampolinePlayTokenLost(purego.CDecl{}, ptr)
	trampolineEndOfTrack(purego.CDecl{}, ptr)

	_, ptr2 := newFakeSession(t, nil)
	trampolineLogMessage(purego.CDecl{}, ptr2, cStr("line"))
}

func TestTrampolinePanicRecovered(t *testing.T) {
	_, ptr := newFakeSession(t, &SessionCallbacks{
		LoggedOut: func(*Session) { panic("boom") },
	})

	// Must not propagate; a panic crossing the native boundary would
	// abort the process.
	trampolineLoggedOut(purego.CDecl{}, ptr)
}

func TestTrampolineMessageCallbacks(t *testing.T) {
	var userMsg, logMsg string

	_, ptr := newFakeSession(t, &SessionCallbacks{
		MessageToUser: func(_ *Session, m string) { userMsg = m },
		LogMessage:    func(_ *Session, m string) { logMsg = m },
	})

	trampolineMessageToUser(purego.CDecl{}, ptr, cStr("hello"))
	trampolineLogMessage(purego.CDecl{}, ptr, cStr("14:02:00 I [ap:1752] log line"))

	if userMsg != "hello" {
		t.Errorf("MessageToUser got %q", userMsg)
	}
	if logMsg == "" {
		t.Error("LogMessage not delivered")
	}
}

func audioFormatRaw(sampleType sp.SampleType, rate, channels int32) unsafe.Pointer {
	raw := &[3]int32{int32(sampleType), rate, channels}
	return unsafe.Pointer(&raw[0])
}

func TestMusicDeliveryConsumed(t *testing.T) {
	var gotFrames int
	var gotLen int

	_, ptr := newFakeSession(t, &SessionCallbacks{
		MusicDelivery: func(_ *Session, f AudioFormat, frames []byte, numFrames int) int {
			gotFrames = numFrames
			gotLen = len(frames)
			if f.SampleRate != 44100 || f.Channels != 2 {
				t.Errorf("unexpected format: %+v", f)
			}
			return numFrames / 2
		},
	})

	pcm := make([]byte, 10*4) // 10 stereo int16 frames
	consumed := trampolineMusicDelivery(purego.CDecl{}, ptr,
		audioFormatRaw(SampleTypeInt16NativeEndian, 44100, 2),
		unsafe.Pointer(&pcm[0]), 10)

	if gotFrames != 10 {
		t.Errorf("callback saw %d frames, want 10", gotFrames)
	}
	if gotLen != 40 {
		t.Errorf("callback saw %d bytes, want 40", gotLen)
	}
	if consumed != 5 {
		t.Errorf("consumed = %d, want 5", consumed)
	}
}

func TestMusicDeliveryClampsReturn(t *testing.T) {
	ret := 0
	_, ptr := newFakeSession(t, &SessionCallbacks{
		MusicDelivery: func(_ *Session, _ AudioFormat, _ []byte, _ int) int { return ret },
	})

	pcm := make([]byte, 4*4)
	format := audioFormatRaw(SampleTypeInt16NativeEndian, 44100, 2)

	ret = 100
	if got := trampolineMusicDelivery(purego.CDecl{}, ptr, format, unsafe.Pointer(&pcm[0]), 4); got != 4 {
		t.Errorf("over-consumption clamped to %d, want 4", got)
	}

	ret = -3
	if got := trampolineMusicDelivery(purego.CDecl{}, ptr, format, unsafe.Pointer(&pcm[0]), 4); got != 0 {
		t.Errorf("negative consumption clamped to %d, want 0", got)
	}
}

func TestMusicDeliveryFlush(t *testing.T) {
	var flushFrames = -1
	var flushLen = -1

	_, ptr := newFakeSession(t, &SessionCallbacks{
		MusicDelivery: func(_ *Session, _ AudioFormat, frames []byte, numFrames int) int {
			flushFrames = numFrames
			flushLen = len(frames)
			return 999 // return value is ignored for a flush
		},
	})

	consumed := trampolineMusicDelivery(purego.CDecl{}, ptr,
		audioFormatRaw(SampleTypeInt16NativeEndian, 44100, 2), nil, 0)

	if flushFrames != 0 || flushLen != 0 {
		t.Errorf("flush delivered numFrames=%d len=%d, want 0/0", flushFrames, flushLen)
	}
	if consumed != 0 {
		t.Errorf("flush consumed = %d, want 0", consumed)
	}
}

func TestMusicDeliveryPanicConsumesNothing(t *testing.T) {
	_, ptr := newFakeSession(t, &SessionCallbacks{
		MusicDelivery: func(_ *Session, _ AudioFormat, _ []byte, _ int) int { panic("decoder bug") },
	})

	pcm := make([]byte, 4)
	consumed := trampolineMusicDelivery(purego.CDecl{}, ptr,
		audioFormatRaw(SampleTypeInt16NativeEndian, 44100, 1), unsafe.Pointer(&pcm[0]), 1)
	if consumed != 0 {
		t.Errorf("consumed after panic = %d, want 0", consumed)
	}
}

func TestMusicDeliveryNoListenerDiscards(t *testing.T) {
	_, ptr := newFakeSession(t, nil)

	pcm := make([]byte, 8)
	consumed := trampolineMusicDelivery(purego.CDecl{}, ptr,
		audioFormatRaw(SampleTypeInt16NativeEndian, 44100, 1), unsafe.Pointer(&pcm[0]), 4)
	if consumed != 4 {
		t.Errorf("consumed = %d, want 4 (discard)", consumed)
	}
}

func TestMusicDeliveryUnknownSampleType(t *testing.T) {
	called := false
	_, ptr := newFakeSession(t, &SessionCallbacks{
		MusicDelivery: func(_ *Session, _ AudioFormat, _ []byte, _ int) int {
			called = true
			return 4
		},
	})

	pcm := make([]byte, 8)
	consumed := trampolineMusicDelivery(purego.CDecl{}, ptr,
		audioFormatRaw(sp.SampleType(9), 44100, 1), unsafe.Pointer(&pcm[0]), 4)
	if called {
		t.Error("callback must not run for an unsizable sample type")
	}
	if consumed != 0 {
		t.Errorf("consumed = %d, want 0", consumed)
	}
}

func TestGetAudioBufferStats(t *testing.T) {
	_, ptr := newFakeSession(t, &SessionCallbacks{
		GetAudioBufferStats: func(*Session) AudioBufferStats {
			return AudioBufferStats{Samples: 2048, Stutter: 1}
		},
	})

	var raw [2]int32
	trampolineGetAudioBufferStats(purego.CDecl{}, ptr, unsafe.Pointer(&raw[0]))

	if raw[0] != 2048 || raw[1] != 1 {
		t.Errorf("stats written = %v, want [2048 1]", raw)
	}
}

func TestCompletionTrampolineExactlyOnce(t *testing.T) {
	var fired int32
	search := &Search{onComplete: func(*Search) { atomic.AddInt32(&fired, 1) }}
	tok := handles.Register(search)
	search.token = tok

	trampolineCompletion(purego.CDecl{}, nil, unsafe.Pointer(tok))
	trampolineCompletion(purego.CDecl{}, nil, unsafe.Pointer(tok))

	if fired != 1 {
		t.Errorf("completion fired %d times, want 1", fired)
	}
	if handles.Lookup(tok) != nil {
		t.Error("completion root should be unregistered after firing")
	}
}

func TestCompletionTrampolineUnknownToken(t *testing.T) {
	trampolineCompletion(purego.CDecl{}, nil, unsafe.Pointer(uintptr(0xdead)))
	trampolineCompletion(purego.CDecl{}, nil, nil)
}

func TestCompleteExactlyOnceUnderContention(t *testing.T) {
	var fired int32
	search := &Search{onComplete: func(*Search) { atomic.AddInt32(&fired, 1) }}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			search.complete()
		}()
	}
	wg.Wait()

	if fired != 1 {
		t.Errorf("complete ran the callback %d times, want 1", fired)
	}
}

func cStr(s string) *byte {
	buf := append([]byte(s), 0)
	return &buf[0]
}

func TestGoString(t *testing.T) {
	if got := goString(cStr("hello")); got != "hello" {
		t.Errorf("goString = %q, want hello", got)
	}
	if got := goString(cStr("")); got != "" {
		t.Errorf("goString of empty = %q", got)
	}
	if got := goString(nil); got != "" {
		t.Errorf("goString(nil) = %q", got)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	var events int32
	_, ptr := newFakeSession(t, &SessionCallbacks{
		LogMessage:       func(_ *Session, _ string) { atomic.AddInt32(&events, 1) },
		NotifyMainThread: func(*Session) { atomic.AddInt32(&events, 1) },
	})

	const workers = 16
	const perWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := cStr("msg")
			for j := 0; j < perWorker; j++ {
				trampolineLogMessage(purego.CDecl{}, ptr, msg)
				trampolineNotifyMainThread(purego.CDecl{}, ptr)
			}
		}()
	}
	wg.Wait()

	if events != workers*perWorker*2 {
		t.Errorf("events = %d, want %d", events, workers*perWorker*2)
	}
}

func TestSessionCallbacksLayoutShared(t *testing.T) {
	a := sessionCallbacksLayout()
	b := sessionCallbacksLayout()
	if a != b {
		t.Error("callback layout must be created once and shared")
	}
	if a.LoggedIn == 0 || a.MusicDelivery == 0 || a.OfflineStatusUpdated == 0 {
		t.Error("callback slots should be populated")
	}
	// The five API-12 slots this binding does not surface stay NULL.
	if a.OfflineError != 0 || a.ScrobbleError != 0 {
		t.Error("unsurfaced slots should stay zero")
	}
}

func TestCompletionCallbackShared(t *testing.T) {
	if completionCallback() == 0 {
		t.Fatal("completion callback pointer is zero")
	}
	if completionCallback() != completionCallback() {
		t.Error("completion callback must be stable")
	}
}

func TestSessionMethodFromCallback(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present; this drives the trampoline against fabricated memory")
	}

	// logged_in arrives synchronously inside sp_session_process_events,
	// and applications load state from it, so a session method invoked
	// there must not block on the guard the pumping call is under.
	s, _ := newFakeSession(t, &SessionCallbacks{
		LoggedIn: func(sess *Session, _ error) {
			if _, err := sess.ConnectionState(); err != nil {
				t.Errorf("ConnectionState inside callback: %v", err)
			}
		},
	})

	done := make(chan error, 1)
	go func() {
		done <- s.withPointer(func(p unsafe.Pointer) error {
			trampolineLoggedIn(purego.CDecl{}, p, int32(sp.ErrOK))
			return nil
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("withPointer failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("session method called from a session callback never returned")
	}
}

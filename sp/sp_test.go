//go:build !ios && !android && (amd64 || arm64)

package sp

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/internal/bindings"
)

// The config, callbacks and status structs are read by native code; their
// sizes and field offsets are ABI, not implementation detail.
func TestSessionConfigLayout(t *testing.T) {
	var cfg SessionConfig

	if got := unsafe.Sizeof(cfg); got != 120 {
		t.Errorf("sizeof(SessionConfig) = %d, want 120", got)
	}

	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"APIVersion", unsafe.Offsetof(cfg.APIVersion), 0},
		{"CacheLocation", unsafe.Offsetof(cfg.CacheLocation), 8},
		{"SettingsLocation", unsafe.Offsetof(cfg.SettingsLocation), 16},
		{"ApplicationKey", unsafe.Offsetof(cfg.ApplicationKey), 24},
		{"ApplicationKeySize", unsafe.Offsetof(cfg.ApplicationKeySize), 32},
		{"UserAgent", unsafe.Offsetof(cfg.UserAgent), 40},
		{"Callbacks", unsafe.Offsetof(cfg.Callbacks), 48},
		{"Userdata", unsafe.Offsetof(cfg.Userdata), 56},
		{"CompressPlaylists", unsafe.Offsetof(cfg.CompressPlaylists), 64},
		{"DeviceID", unsafe.Offsetof(cfg.DeviceID), 72},
		{"Tracefile", unsafe.Offsetof(cfg.Tracefile), 112},
	}
	for _, o := range offsets {
		if o.got != o.want {
			t.Errorf("offsetof(%s) = %d, want %d", o.name, o.got, o.want)
		}
	}
}

func TestSessionCallbacksLayoutSize(t *testing.T) {
	// 21 function pointer slots in API version 12.
	if got := unsafe.Sizeof(SessionCallbacksLayout{}); got != 21*8 {
		t.Errorf("sizeof(SessionCallbacksLayout) = %d, want %d", got, 21*8)
	}
}

func TestOfflineSyncStatusLayout(t *testing.T) {
	var st OfflineSyncStatus

	if got := unsafe.Sizeof(st); got != 64 {
		t.Errorf("sizeof(OfflineSyncStatus) = %d, want 64", got)
	}
	if off := unsafe.Offsetof(st.QueuedBytes); off != 8 {
		t.Errorf("offsetof(QueuedBytes) = %d, want 8", off)
	}
	if off := unsafe.Offsetof(st.WillNotCopyTracks); off != 48 {
		t.Errorf("offsetof(WillNotCopyTracks) = %d, want 48", off)
	}
	if off := unsafe.Offsetof(st.Syncing); off != 56 {
		t.Errorf("offsetof(Syncing) = %d, want 56", off)
	}
}

func TestAudioFormatAt(t *testing.T) {
	raw := [3]int32{int32(SampleTypeInt16NativeEndian), 44100, 2}

	f := AudioFormatAt(unsafe.Pointer(&raw[0]))
	if f.SampleType != SampleTypeInt16NativeEndian {
		t.Errorf("SampleType = %d", f.SampleType)
	}
	if f.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", f.SampleRate)
	}
	if f.Channels != 2 {
		t.Errorf("Channels = %d, want 2", f.Channels)
	}

	if f := AudioFormatAt(nil); f != (AudioFormat{}) {
		t.Errorf("AudioFormatAt(nil) = %+v, want zero", f)
	}
}

func TestAudioFormatFrameSize(t *testing.T) {
	f := AudioFormat{SampleType: SampleTypeInt16NativeEndian, SampleRate: 44100, Channels: 2}
	if got := f.FrameSize(); got != 4 {
		t.Errorf("FrameSize stereo int16 = %d, want 4", got)
	}

	f.Channels = 1
	if got := f.FrameSize(); got != 2 {
		t.Errorf("FrameSize mono int16 = %d, want 2", got)
	}

	f.SampleType = SampleType(7)
	if got := f.FrameSize(); got != -1 {
		t.Errorf("FrameSize unknown sample type = %d, want -1", got)
	}
}

func TestSetAudioBufferStats(t *testing.T) {
	var raw [2]int32
	SetAudioBufferStats(unsafe.Pointer(&raw[0]), 4096, 3)

	if raw[0] != 4096 || raw[1] != 3 {
		t.Errorf("stats = %v, want [4096 3]", raw)
	}

	// nil out-pointer must not crash.
	SetAudioBufferStats(nil, 1, 1)
}

// Without the native library every getter degrades to its zero value and
// every fallible call reports not-loaded. Fake pointers are safe because
// no native code runs.
func TestUnloadedGuards(t *testing.T) {
	if bindings.IsLoaded() {
		t.Skip("libspotify is present on this system")
	}

	var b byte
	fake := unsafe.Pointer(&b)

	if _, err := SessionCreate(&SessionConfig{}); !errors.Is(err, bindings.ErrNotLoaded) {
		t.Errorf("SessionCreate error = %v, want ErrNotLoaded", err)
	}
	if err := SessionLogin(fake, "user", "pass", false); !errors.Is(err, bindings.ErrNotLoaded) {
		t.Errorf("SessionLogin error = %v, want ErrNotLoaded", err)
	}

	if got := TrackName(fake); got != "" {
		t.Errorf("TrackName = %q, want \"\"", got)
	}
	if got := TrackDuration(fake); got != 0 {
		t.Errorf("TrackDuration = %d, want 0", got)
	}
	if TrackIsLoaded(fake) {
		t.Error("TrackIsLoaded should be false")
	}
	if got := SessionConnectionState(fake); got != ConnectionStateUndefined {
		t.Errorf("SessionConnectionState = %v, want undefined", got)
	}
	if got := SearchCreate(fake, SearchQuery{Query: "x"}, 0, nil); got != nil {
		t.Error("SearchCreate should return nil when not loaded")
	}

	// Releases and add-refs must be safe no-ops.
	TrackAddRef(fake)
	TrackRelease(fake)
	SessionRelease(fake)
	TrackRelease(nil)
}

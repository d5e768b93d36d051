//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"log"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/spotgo/internal/handles"
	"github.com/obinnaokechukwu/spotgo/sp"
)

// SessionCallbacks receives session events from libspotify. Every field is
// optional; nil fields are simply not delivered. Callbacks run on
// libspotify's internal threads, or synchronously on the goroutine inside
// ProcessEvents (logged_in, metadata_updated and the other main-thread
// events are delivered that way), so they must be safe to call from any
// goroutine and must not block.
//
// Callbacks may call methods on the Session and on other wrappers; the
// pointer guard does not hold a lock across native calls, so re-entering
// from inside ProcessEvents is fine. Two things remain off limits inside a
// callback: calling ProcessEvents itself (libspotify forbids recursive
// pumping) and calling Release on the session or on the object whose event
// is being delivered, since Release waits for the in-flight call to
// return.
//
// A panic inside a callback is recovered at the native boundary and logged;
// it never unwinds into libspotify.
type SessionCallbacks struct {
	// LoggedIn fires when a login attempt finishes. err is nil on success.
	LoggedIn func(s *Session, err error)

	// LoggedOut fires when the session has been logged out.
	LoggedOut func(s *Session)

	// MetadataUpdated fires when metadata for one or more objects has
	// arrived; re-read whatever you were polling.
	MetadataUpdated func(s *Session)

	// ConnectionError fires when the connection to the Spotify backend is
	// lost or fails to establish.
	ConnectionError func(s *Session, err error)

	// MessageToUser delivers a message the server wants shown verbatim.
	MessageToUser func(s *Session, message string)

	// NotifyMainThread asks the application to call ProcessEvents soon,
	// from its event thread. Do not call ProcessEvents directly from this
	// callback; signal the pumping goroutine instead.
	NotifyMainThread func(s *Session)

	// MusicDelivery hands over decompressed PCM audio. frames holds
	// numFrames frames in the given format; the slice aliases native
	// memory and must not be retained after return. Return how many
	// frames were consumed; returning less makes the library redeliver
	// the remainder. numFrames == 0 with an empty slice signals a flush
	// after a seek, discard buffered audio and return 0.
	MusicDelivery func(s *Session, format AudioFormat, frames []byte, numFrames int) int

	// PlayTokenLost fires when playback was stopped because the account
	// started playing elsewhere.
	PlayTokenLost func(s *Session)

	// LogMessage delivers a log line from the library.
	LogMessage func(s *Session, message string)

	// EndOfTrack fires when the currently loaded track has been fully
	// delivered through MusicDelivery.
	EndOfTrack func(s *Session)

	// StreamingError fires on playback streaming failures.
	StreamingError func(s *Session, err error)

	// UserinfoUpdated fires when user info (display names, ...) changed.
	UserinfoUpdated func(s *Session)

	// StartPlayback asks the application to start the audio device.
	StartPlayback func(s *Session)

	// StopPlayback asks the application to pause the audio device.
	StopPlayback func(s *Session)

	// GetAudioBufferStats reports how much audio the application has
	// buffered but not yet played, so the library can pace delivery.
	GetAudioBufferStats func(s *Session) AudioBufferStats

	// OfflineStatusUpdated fires when offline synchronization status
	// changed; read it with OfflineSyncStatus and friends.
	OfflineStatusUpdated func(s *Session)
}

// AudioFormat describes delivered PCM audio.
type AudioFormat = sp.AudioFormat

// AudioBufferStats is the application's answer to GetAudioBufferStats.
type AudioBufferStats struct {
	// Samples is the number of frames buffered but not yet played.
	Samples int
	// Stutter is the number of audio dropouts since the last query.
	Stutter int
}

// sessions maps native session pointers to their wrappers so trampolines
// can resolve the *Session an event belongs to.
var (
	sessionsMu sync.RWMutex
	sessions   = make(map[unsafe.Pointer]*Session)
)

func registerSession(ptr unsafe.Pointer, s *Session) {
	sessionsMu.Lock()
	sessions[ptr] = s
	sessionsMu.Unlock()
}

func unregisterSession(ptr unsafe.Pointer) {
	sessionsMu.Lock()
	delete(sessions, ptr)
	sessionsMu.Unlock()
}

// lookupSession resolves a native session pointer to its wrapper.
// libspotify fires callbacks while sp_session_create is still running,
// before the pointer is published in the map; those are resolved through
// the userdata token the session was configured with.
func lookupSession(ptr unsafe.Pointer) *Session {
	sessionsMu.RLock()
	s := sessions[ptr]
	sessionsMu.RUnlock()
	if s != nil {
		return s
	}
	if ud := sp.SessionUserdata(ptr); ud != nil {
		if s, ok := handles.Lookup(uintptr(ud)).(*Session); ok {
			return s
		}
	}
	return nil
}

// goString copies a NUL-terminated C string. Length is capped; libspotify
// messages are short lines.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	for i := 0; i < 1<<16; i++ {
		if *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + uintptr(i))) == 0 {
			return string(unsafe.Slice(p, i))
		}
	}
	return string(unsafe.Slice(p, 1<<16))
}

// recoverCallback is deferred at the top of every trampoline. A Go panic
// must never unwind through native libspotify frames; the stack there is
// not unwindable and the process would abort.
func recoverCallback(name string) {
	if r := recover(); r != nil {
		log.Printf("spotgo: recovered panic in %s callback: %v", name, r)
	}
}

// nativeSessionCallbacks is the one sp_session_callbacks struct shared by
// all sessions. purego.NewCallback slots are a scarce process-wide
// resource, so the trampolines are created once and dispatch per-session
// through lookupSession. The struct lives in a package var; Go's collector
// does not move heap objects, so the pointer handed to libspotify stays
// valid for the process lifetime.
var (
	callbackLayoutOnce sync.Once
	callbackLayout     *sp.SessionCallbacksLayout

	completionOnce sync.Once
	completionPtr  uintptr
)

func sessionCallbacksLayout() *sp.SessionCallbacksLayout {
	callbackLayoutOnce.Do(func() {
		callbackLayout = &sp.SessionCallbacksLayout{
			LoggedIn:             purego.NewCallback(trampolineLoggedIn),
			LoggedOut:            purego.NewCallback(trampolineLoggedOut),
			MetadataUpdated:      purego.NewCallback(trampolineMetadataUpdated),
			ConnectionError:      purego.NewCallback(trampolineConnectionError),
			MessageToUser:        purego.NewCallback(trampolineMessageToUser),
			NotifyMainThread:     purego.NewCallback(trampolineNotifyMainThread),
			MusicDelivery:        purego.NewCallback(trampolineMusicDelivery),
			PlayTokenLost:        purego.NewCallback(trampolinePlayTokenLost),
			LogMessage:           purego.NewCallback(trampolineLogMessage),
			EndOfTrack:           purego.NewCallback(trampolineEndOfTrack),
			StreamingError:       purego.NewCallback(trampolineStreamingError),
			UserinfoUpdated:      purego.NewCallback(trampolineUserinfoUpdated),
			StartPlayback:        purego.NewCallback(trampolineStartPlayback),
			StopPlayback:         purego.NewCallback(trampolineStopPlayback),
			GetAudioBufferStats:  purego.NewCallback(trampolineGetAudioBufferStats),
			OfflineStatusUpdated: purego.NewCallback(trampolineOfflineStatusUpdated),
		}
	})
	return callbackLayout
}

// completionCallback returns the shared native completion trampoline used
// by every asynchronous create (search, browses, inbox post).
func completionCallback() uintptr {
	completionOnce.Do(func() {
		completionPtr = purego.NewCallback(trampolineCompletion)
	})
	return completionPtr
}

// completable is an in-flight asynchronous operation rooted in the handle
// registry while its native completion callback is pending.
type completable interface {
	complete()
}

// trampolineCompletion serves every async create. All libspotify
// completion callbacks share the C signature void (*)(T *result, void
// *userdata); the result pointer is ignored because the record reached
// through userdata already wraps it.
func trampolineCompletion(_ purego.CDecl, _ unsafe.Pointer, userdata unsafe.Pointer) {
	defer recoverCallback("completion")
	tok := uintptr(userdata)
	rec, ok := handles.Lookup(tok).(completable)
	if !ok {
		return
	}
	rec.complete()
	handles.Unregister(tok)
}

func trampolineLoggedIn(_ purego.CDecl, sess unsafe.Pointer, code int32) {
	defer recoverCallback("logged_in")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.LoggedIn == nil {
		return
	}
	s.callbacks.LoggedIn(s, sp.NewError(sp.ErrorCode(code), "logged_in"))
}

func trampolineLoggedOut(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("logged_out")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.LoggedOut == nil {
		return
	}
	s.callbacks.LoggedOut(s)
}

func trampolineMetadataUpdated(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("metadata_updated")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.MetadataUpdated == nil {
		return
	}
	s.callbacks.MetadataUpdated(s)
}

func trampolineConnectionError(_ purego.CDecl, sess unsafe.Pointer, code int32) {
	defer recoverCallback("connection_error")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.ConnectionError == nil {
		return
	}
	s.callbacks.ConnectionError(s, sp.NewError(sp.ErrorCode(code), "connection_error"))
}

func trampolineMessageToUser(_ purego.CDecl, sess unsafe.Pointer, message *byte) {
	defer recoverCallback("message_to_user")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.MessageToUser == nil {
		return
	}
	s.callbacks.MessageToUser(s, goString(message))
}

func trampolineNotifyMainThread(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("notify_main_thread")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.NotifyMainThread == nil {
		return
	}
	s.callbacks.NotifyMainThread(s)
}

// trampolineMusicDelivery adapts int music_delivery(sp_session *, const
// sp_audioformat *, const void *frames, int num_frames). It is the only
// callback whose return value matters: frames consumed, which libspotify
// uses for flow control.
func trampolineMusicDelivery(_ purego.CDecl, sess, format, frames unsafe.Pointer, numFrames int32) (consumed int32) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("spotgo: recovered panic in music_delivery callback: %v", r)
			consumed = 0
		}
	}()

	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.MusicDelivery == nil {
		// Nobody listening: swallow the audio so the library does not
		// redeliver the same frames forever.
		return numFrames
	}

	f := sp.AudioFormatAt(format)

	// num_frames == 0 is the post-seek flush signal. No frame data to view.
	if numFrames == 0 {
		s.callbacks.MusicDelivery(s, f, nil, 0)
		return 0
	}

	frameSize := f.FrameSize()
	if frames == nil || frameSize <= 0 {
		return 0
	}

	view := unsafe.Slice((*byte)(frames), int(numFrames)*frameSize)
	n := s.callbacks.MusicDelivery(s, f, view, int(numFrames))
	if n < 0 {
		n = 0
	}
	if n > int(numFrames) {
		n = int(numFrames)
	}
	return int32(n)
}

func trampolinePlayTokenLost(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("play_token_lost")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.PlayTokenLost == nil {
		return
	}
	s.callbacks.PlayTokenLost(s)
}

func trampolineLogMessage(_ purego.CDecl, sess unsafe.Pointer, message *byte) {
	defer recoverCallback("log_message")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.LogMessage == nil {
		return
	}
	s.callbacks.LogMessage(s, goString(message))
}

func trampolineEndOfTrack(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("end_of_track")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.EndOfTrack == nil {
		return
	}
	s.callbacks.EndOfTrack(s)
}

func trampolineStreamingError(_ purego.CDecl, sess unsafe.Pointer, code int32) {
	defer recoverCallback("streaming_error")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.StreamingError == nil {
		return
	}
	s.callbacks.StreamingError(s, sp.NewError(sp.ErrorCode(code), "streaming_error"))
}

func trampolineUserinfoUpdated(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("userinfo_updated")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.UserinfoUpdated == nil {
		return
	}
	s.callbacks.UserinfoUpdated(s)
}

func trampolineStartPlayback(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("start_playback")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.StartPlayback == nil {
		return
	}
	s.callbacks.StartPlayback(s)
}

func trampolineStopPlayback(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("stop_playback")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.StopPlayback == nil {
		return
	}
	s.callbacks.StopPlayback(s)
}

func trampolineGetAudioBufferStats(_ purego.CDecl, sess, stats unsafe.Pointer) {
	defer recoverCallback("get_audio_buffer_stats")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.GetAudioBufferStats == nil {
		return
	}
	st := s.callbacks.GetAudioBufferStats(s)
	sp.SetAudioBufferStats(stats, int32(st.Samples), int32(st.Stutter))
}

func trampolineOfflineStatusUpdated(_ purego.CDecl, sess unsafe.Pointer) {
	defer recoverCallback("offline_status_updated")
	s := lookupSession(sess)
	if s == nil || s.callbacks == nil || s.callbacks.OfflineStatusUpdated == nil {
		return
	}
	s.callbacks.OfflineStatusUpdated(s)
}

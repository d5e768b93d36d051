//go:build !ios && !android && (amd64 || arm64)

// Package sp provides low-level bindings to the libspotify C library.
//
// Every exported function corresponds to one sp_* entry point and keeps its
// exact semantics, including the library's habit of returning empty/zero
// values from getters on objects that have not finished loading. Pointer
// lifetime management (add-ref on wrap, release on drop) is the caller's
// responsibility; the high-level spotgo package layers that on top.
package sp

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/spotgo/internal/bindings"
)

// APIVersion is the SPOTIFY_API_VERSION this binding targets. It must match
// the major version of the loaded library; sp_session_create rejects
// mismatches with ErrBadAPIVersion.
const APIVersion = 12

// Opaque libspotify object pointers.
type (
	Session           = unsafe.Pointer
	Track             = unsafe.Pointer
	Album             = unsafe.Pointer
	Artist            = unsafe.Pointer
	AlbumBrowse       = unsafe.Pointer
	ArtistBrowse      = unsafe.Pointer
	ToplistBrowse     = unsafe.Pointer
	Search            = unsafe.Pointer
	Link              = unsafe.Pointer
	Image             = unsafe.Pointer
	User              = unsafe.Pointer
	Playlist          = unsafe.Pointer
	PlaylistContainer = unsafe.Pointer
	Inbox             = unsafe.Pointer
)

// SessionConfig matches the memory layout of sp_session_config for
// SPOTIFY_API_VERSION 12 on 64-bit platforms. The pointed-to strings, key
// blob and callbacks struct must stay alive for the whole native session
// lifetime; libspotify keeps the pointers, not copies.
type SessionConfig struct {
	APIVersion                   int32
	_                            int32
	CacheLocation                *byte
	SettingsLocation             *byte
	ApplicationKey               unsafe.Pointer
	ApplicationKeySize           uintptr
	UserAgent                    *byte
	Callbacks                    unsafe.Pointer
	Userdata                     unsafe.Pointer
	CompressPlaylists            uint8
	DontSaveMetadataForPlaylists uint8
	InitiallyUnloadPlaylists     uint8
	_                            [5]byte
	DeviceID                     *byte
	Proxy                        *byte
	ProxyUsername                *byte
	ProxyPassword                *byte
	CACertsFilename              *byte
	Tracefile                    *byte
}

// SessionCallbacksLayout matches sp_session_callbacks (API version 12):
// one native function pointer per slot, in declaration order. Unused slots
// stay zero; libspotify treats NULL slots as "not interested".
type SessionCallbacksLayout struct {
	LoggedIn                  uintptr
	LoggedOut                 uintptr
	MetadataUpdated           uintptr
	ConnectionError           uintptr
	MessageToUser             uintptr
	NotifyMainThread          uintptr
	MusicDelivery             uintptr
	PlayTokenLost             uintptr
	LogMessage                uintptr
	EndOfTrack                uintptr
	StreamingError            uintptr
	UserinfoUpdated           uintptr
	StartPlayback             uintptr
	StopPlayback              uintptr
	GetAudioBufferStats       uintptr
	OfflineStatusUpdated      uintptr
	OfflineError              uintptr
	CredentialsBlobUpdated    uintptr
	ConnectionstateUpdated    uintptr
	ScrobbleError             uintptr
	PrivateSessionModeChanged uintptr
}

// AudioFormat is the decoded form of sp_audioformat.
type AudioFormat struct {
	SampleType SampleType
	SampleRate int32
	Channels   int32
}

// AudioFormatAt reads an sp_audioformat struct from native memory.
// The struct is three consecutive ints.
func AudioFormatAt(p unsafe.Pointer) AudioFormat {
	if p == nil {
		return AudioFormat{}
	}
	return AudioFormat{
		SampleType: SampleType(*(*int32)(p)),
		SampleRate: *(*int32)(unsafe.Pointer(uintptr(p) + 4)),
		Channels:   *(*int32)(unsafe.Pointer(uintptr(p) + 8)),
	}
}

// FrameSize returns the byte size of one frame (one sample per channel),
// or -1 for sample types this binding cannot size.
func (f AudioFormat) FrameSize() int {
	switch f.SampleType {
	case SampleTypeInt16NativeEndian:
		return int(f.Channels) * 2
	default:
		return -1
	}
}

// SetAudioBufferStats writes samples/stutter into a native
// sp_audio_buffer_stats out-struct (two consecutive ints).
func SetAudioBufferStats(p unsafe.Pointer, samples, stutter int32) {
	if p == nil {
		return
	}
	*(*int32)(p) = samples
	*(*int32)(unsafe.Pointer(uintptr(p) + 4)) = stutter
}

// OfflineSyncStatus matches the memory layout of sp_offline_sync_status
// on 64-bit platforms.
type OfflineSyncStatus struct {
	QueuedTracks      int32
	_                 int32
	QueuedBytes       uint64
	DoneTracks        int32
	_                 int32
	DoneBytes         uint64
	CopiedTracks      int32
	_                 int32
	CopiedBytes       uint64
	WillNotCopyTracks int32
	ErrorTracks       int32
	Syncing           uint8
	_                 [7]byte
}

// Session / player / offline function bindings.
var (
	spErrorMessage func(errorCode int32) string

	spSessionCreate          func(config unsafe.Pointer, sess *unsafe.Pointer) int32
	spSessionRelease         func(sess unsafe.Pointer) int32
	spSessionLogin           func(sess unsafe.Pointer, username, password string, rememberMe bool, blob *byte) int32
	spSessionRelogin         func(sess unsafe.Pointer) int32
	spSessionRememberedUser  func(sess unsafe.Pointer, buf *byte, bufSize uintptr) int32
	spSessionForgetMe        func(sess unsafe.Pointer) int32
	spSessionUser            func(sess unsafe.Pointer) unsafe.Pointer
	spSessionLogout          func(sess unsafe.Pointer) int32
	spSessionConnectionstate func(sess unsafe.Pointer) int32
	spSessionSetCacheSize    func(sess unsafe.Pointer, size uintptr) int32
	spSessionProcessEvents   func(sess unsafe.Pointer, nextTimeout *int32) int32
	spSessionUserdata        func(sess unsafe.Pointer) unsafe.Pointer
	spSessionUserCountry     func(sess unsafe.Pointer) int32

	spSessionPlayerLoad     func(sess, track unsafe.Pointer) int32
	spSessionPlayerSeek     func(sess unsafe.Pointer, offsetMS int32) int32
	spSessionPlayerPlay     func(sess unsafe.Pointer, play bool) int32
	spSessionPlayerUnload   func(sess unsafe.Pointer) int32
	spSessionPlayerPrefetch func(sess, track unsafe.Pointer) int32

	spSessionPlaylistcontainer               func(sess unsafe.Pointer) unsafe.Pointer
	spSessionInboxCreate                     func(sess unsafe.Pointer) unsafe.Pointer
	spSessionStarredCreate                   func(sess unsafe.Pointer) unsafe.Pointer
	spSessionStarredForUserCreate            func(sess unsafe.Pointer, canonicalUsername string) unsafe.Pointer
	spSessionPublishedcontainerForUserCreate func(sess unsafe.Pointer, canonicalUsername *byte) unsafe.Pointer

	spSessionPreferredBitrate        func(sess unsafe.Pointer, bitrate int32) int32
	spSessionPreferredOfflineBitrate func(sess unsafe.Pointer, bitrate int32, allowResync bool) int32
	spSessionNumFriends              func(sess unsafe.Pointer) int32
	spSessionFriend                  func(sess unsafe.Pointer, index int32) unsafe.Pointer
	spSessionSetConnectionType       func(sess unsafe.Pointer, connType int32) int32
	spSessionSetConnectionRules      func(sess unsafe.Pointer, rules int32) int32

	spOfflineTracksToSync  func(sess unsafe.Pointer) int32
	spOfflineNumPlaylists  func(sess unsafe.Pointer) int32
	spOfflineSyncGetStatus func(sess, status unsafe.Pointer) bool
	spOfflineTimeLeft      func(sess unsafe.Pointer) int32

	bindingsRegistered bool
)

func init() {
	registerBindings()
}

func registerBindings() {
	if bindingsRegistered {
		return
	}

	// Ensure libspotify is loaded.
	if err := bindings.Load(); err != nil {
		return // Calls will fail with not-loaded guards.
	}

	lib := bindings.LibSpotify()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&spErrorMessage, lib, "sp_error_message")

	purego.RegisterLibFunc(&spSessionCreate, lib, "sp_session_create")
	purego.RegisterLibFunc(&spSessionRelease, lib, "sp_session_release")
	purego.RegisterLibFunc(&spSessionLogin, lib, "sp_session_login")
	purego.RegisterLibFunc(&spSessionRelogin, lib, "sp_session_relogin")
	purego.RegisterLibFunc(&spSessionRememberedUser, lib, "sp_session_remembered_user")
	purego.RegisterLibFunc(&spSessionForgetMe, lib, "sp_session_forget_me")
	purego.RegisterLibFunc(&spSessionUser, lib, "sp_session_user")
	purego.RegisterLibFunc(&spSessionLogout, lib, "sp_session_logout")
	purego.RegisterLibFunc(&spSessionConnectionstate, lib, "sp_session_connectionstate")
	purego.RegisterLibFunc(&spSessionSetCacheSize, lib, "sp_session_set_cache_size")
	purego.RegisterLibFunc(&spSessionProcessEvents, lib, "sp_session_process_events")
	purego.RegisterLibFunc(&spSessionUserdata, lib, "sp_session_userdata")
	purego.RegisterLibFunc(&spSessionUserCountry, lib, "sp_session_user_country")

	purego.RegisterLibFunc(&spSessionPlayerLoad, lib, "sp_session_player_load")
	purego.RegisterLibFunc(&spSessionPlayerSeek, lib, "sp_session_player_seek")
	purego.RegisterLibFunc(&spSessionPlayerPlay, lib, "sp_session_player_play")
	purego.RegisterLibFunc(&spSessionPlayerUnload, lib, "sp_session_player_unload")
	purego.RegisterLibFunc(&spSessionPlayerPrefetch, lib, "sp_session_player_prefetch")

	purego.RegisterLibFunc(&spSessionPlaylistcontainer, lib, "sp_session_playlistcontainer")
	purego.RegisterLibFunc(&spSessionInboxCreate, lib, "sp_session_inbox_create")
	purego.RegisterLibFunc(&spSessionStarredCreate, lib, "sp_session_starred_create")
	purego.RegisterLibFunc(&spSessionStarredForUserCreate, lib, "sp_session_starred_for_user_create")
	purego.RegisterLibFunc(&spSessionPublishedcontainerForUserCreate, lib, "sp_session_publishedcontainer_for_user_create")

	purego.RegisterLibFunc(&spSessionPreferredBitrate, lib, "sp_session_preferred_bitrate")
	purego.RegisterLibFunc(&spSessionPreferredOfflineBitrate, lib, "sp_session_preferred_offline_bitrate")
	purego.RegisterLibFunc(&spSessionNumFriends, lib, "sp_session_num_friends")
	purego.RegisterLibFunc(&spSessionFriend, lib, "sp_session_friend")
	purego.RegisterLibFunc(&spSessionSetConnectionType, lib, "sp_session_set_connection_type")
	purego.RegisterLibFunc(&spSessionSetConnectionRules, lib, "sp_session_set_connection_rules")

	purego.RegisterLibFunc(&spOfflineTracksToSync, lib, "sp_offline_tracks_to_sync")
	purego.RegisterLibFunc(&spOfflineNumPlaylists, lib, "sp_offline_num_playlists")
	purego.RegisterLibFunc(&spOfflineSyncGetStatus, lib, "sp_offline_sync_get_status")
	purego.RegisterLibFunc(&spOfflineTimeLeft, lib, "sp_offline_time_left")

	registerMetadata(lib)
	registerBrowse(lib)
	registerLink(lib)
	registerPlaylist(lib)

	bindingsRegistered = true
}

// SessionCreate initializes a native session from the given config.
// The config and everything it points to must stay alive until
// SessionRelease; see SessionConfig.
func SessionCreate(config *SessionConfig) (Session, error) {
	if spSessionCreate == nil {
		return nil, bindings.ErrNotLoaded
	}
	var sess unsafe.Pointer
	code := spSessionCreate(unsafe.Pointer(config), &sess)
	if code != 0 {
		return nil, NewError(ErrorCode(code), "sp_session_create")
	}
	return sess, nil
}

// SessionRelease decrements the session's refcount, tearing it down on the
// last reference. Safe to call with nil.
func SessionRelease(sess Session) {
	if sess == nil || spSessionRelease == nil {
		return
	}
	spSessionRelease(sess)
}

// SessionLogin starts an asynchronous login. Completion is reported via the
// logged_in callback, not the return value.
func SessionLogin(sess Session, username, password string, rememberMe bool) error {
	if spSessionLogin == nil {
		return bindings.ErrNotLoaded
	}
	code := spSessionLogin(sess, username, password, rememberMe, nil)
	return NewError(ErrorCode(code), "sp_session_login")
}

// SessionRelogin logs in the remembered user, if one was stored.
// Fails with ErrNoCredentials when none is stored.
func SessionRelogin(sess Session) error {
	if spSessionRelogin == nil {
		return bindings.ErrNotLoaded
	}
	code := spSessionRelogin(sess)
	return NewError(ErrorCode(code), "sp_session_relogin")
}

// SessionRememberedUser returns the canonical name of the remembered user,
// or ok == false when no user is stored.
func SessionRememberedUser(sess Session) (name string, ok bool) {
	if spSessionRememberedUser == nil {
		return "", false
	}
	n := spSessionRememberedUser(sess, nil, 0)
	if n < 0 {
		return "", false
	}
	buf := make([]byte, n+1)
	spSessionRememberedUser(sess, &buf[0], uintptr(len(buf)))
	return string(buf[:n]), true
}

// SessionForgetMe forgets the currently stored user.
func SessionForgetMe(sess Session) {
	if sess == nil || spSessionForgetMe == nil {
		return
	}
	spSessionForgetMe(sess)
}

// SessionUser returns the logged-in user, or nil before login has
// completed. The caller owns no reference; add-ref before wrapping.
func SessionUser(sess Session) User {
	if sess == nil || spSessionUser == nil {
		return nil
	}
	return spSessionUser(sess)
}

// SessionLogout starts an asynchronous logout.
func SessionLogout(sess Session) {
	if sess == nil || spSessionLogout == nil {
		return
	}
	spSessionLogout(sess)
}

// SessionConnectionState returns the current connection state.
func SessionConnectionState(sess Session) ConnectionState {
	if sess == nil || spSessionConnectionstate == nil {
		return ConnectionStateUndefined
	}
	return ConnectionState(spSessionConnectionstate(sess))
}

// SessionSetCacheSize sets the maximum cache size in megabytes.
// 0 means automatic (at most 10% of free disk space).
func SessionSetCacheSize(sess Session, sizeMB int) {
	if sess == nil || spSessionSetCacheSize == nil {
		return
	}
	spSessionSetCacheSize(sess, uintptr(sizeMB))
}

// SessionProcessEvents drives the library's internal event machinery.
// Returns the number of milliseconds until the caller must pump again.
func SessionProcessEvents(sess Session) (nextTimeoutMS int32, err error) {
	if spSessionProcessEvents == nil {
		return 0, bindings.ErrNotLoaded
	}
	var timeout int32
	code := spSessionProcessEvents(sess, &timeout)
	return timeout, NewError(ErrorCode(code), "sp_session_process_events")
}

// SessionUserdata returns the userdata pointer the session was created with.
func SessionUserdata(sess Session) unsafe.Pointer {
	if sess == nil || spSessionUserdata == nil {
		return nil
	}
	return spSessionUserdata(sess)
}

// SessionUserCountry returns the country the session user is logged in
// from, as a packed two-letter code.
func SessionUserCountry(sess Session) Country {
	if sess == nil || spSessionUserCountry == nil {
		return 0
	}
	return Country(spSessionUserCountry(sess))
}

// SessionPlayerLoad loads a track for playback.
func SessionPlayerLoad(sess Session, track Track) error {
	if spSessionPlayerLoad == nil {
		return bindings.ErrNotLoaded
	}
	code := spSessionPlayerLoad(sess, track)
	return NewError(ErrorCode(code), "sp_session_player_load")
}

// SessionPlayerSeek seeks to the given offset (milliseconds) in the loaded
// track. The next music_delivery after a seek carries num_frames == 0 as a
// flush signal.
func SessionPlayerSeek(sess Session, offsetMS int32) {
	if sess == nil || spSessionPlayerSeek == nil {
		return
	}
	spSessionPlayerSeek(sess, offsetMS)
}

// SessionPlayerPlay starts or pauses playback of the loaded track.
func SessionPlayerPlay(sess Session, play bool) {
	if sess == nil || spSessionPlayerPlay == nil {
		return
	}
	spSessionPlayerPlay(sess, play)
}

// SessionPlayerUnload unloads the currently loaded track.
func SessionPlayerUnload(sess Session) {
	if sess == nil || spSessionPlayerUnload == nil {
		return
	}
	spSessionPlayerUnload(sess)
}

// SessionPlayerPrefetch hints the library to start buffering a track that
// will be played soon.
func SessionPlayerPrefetch(sess Session, track Track) error {
	if spSessionPlayerPrefetch == nil {
		return bindings.ErrNotLoaded
	}
	code := spSessionPlayerPrefetch(sess, track)
	return NewError(ErrorCode(code), "sp_session_player_prefetch")
}

// SessionPlaylistContainer returns the session's root playlist container.
// The caller owns no reference; add-ref before wrapping.
func SessionPlaylistContainer(sess Session) PlaylistContainer {
	if sess == nil || spSessionPlaylistcontainer == nil {
		return nil
	}
	return spSessionPlaylistcontainer(sess)
}

// SessionInboxCreate returns the inbox playlist. The returned reference is
// owned by the caller.
func SessionInboxCreate(sess Session) Playlist {
	if sess == nil || spSessionInboxCreate == nil {
		return nil
	}
	return spSessionInboxCreate(sess)
}

// SessionStarredCreate returns the starred-tracks playlist. The returned
// reference is owned by the caller.
func SessionStarredCreate(sess Session) Playlist {
	if sess == nil || spSessionStarredCreate == nil {
		return nil
	}
	return spSessionStarredCreate(sess)
}

// SessionStarredForUserCreate returns another user's starred playlist.
// The returned reference is owned by the caller.
func SessionStarredForUserCreate(sess Session, canonicalUsername string) Playlist {
	if sess == nil || spSessionStarredForUserCreate == nil {
		return nil
	}
	return spSessionStarredForUserCreate(sess, canonicalUsername)
}

// SessionPublishedContainerForUserCreate returns the container of playlists
// a user has published. An empty username means the logged-in user. The
// returned reference is owned by the caller.
func SessionPublishedContainerForUserCreate(sess Session, canonicalUsername string) PlaylistContainer {
	if sess == nil || spSessionPublishedcontainerForUserCreate == nil {
		return nil
	}
	var name *byte
	if canonicalUsername != "" {
		buf := append([]byte(canonicalUsername), 0)
		name = &buf[0]
	}
	return spSessionPublishedcontainerForUserCreate(sess, name)
}

// SessionPreferredBitrate sets the streaming bitrate.
func SessionPreferredBitrate(sess Session, bitrate Bitrate) {
	if sess == nil || spSessionPreferredBitrate == nil {
		return
	}
	spSessionPreferredBitrate(sess, int32(bitrate))
}

// SessionPreferredOfflineBitrate sets the bitrate for offline sync.
// allowResync permits re-downloading already synced tracks.
func SessionPreferredOfflineBitrate(sess Session, bitrate Bitrate, allowResync bool) {
	if sess == nil || spSessionPreferredOfflineBitrate == nil {
		return
	}
	spSessionPreferredOfflineBitrate(sess, int32(bitrate), allowResync)
}

// SessionNumFriends returns the number of friends of the logged-in user.
func SessionNumFriends(sess Session) int {
	if sess == nil || spSessionNumFriends == nil {
		return 0
	}
	return int(spSessionNumFriends(sess))
}

// SessionFriend returns a friend by index. The caller owns no reference;
// add-ref before wrapping.
func SessionFriend(sess Session, index int) User {
	if sess == nil || spSessionFriend == nil {
		return nil
	}
	return spSessionFriend(sess, int32(index))
}

// SessionSetConnectionType tells the library what kind of network link the
// host currently has.
func SessionSetConnectionType(sess Session, connType ConnectionType) {
	if sess == nil || spSessionSetConnectionType == nil {
		return
	}
	spSessionSetConnectionType(sess, int32(connType))
}

// SessionSetConnectionRules sets the rules for how the library may use the
// connection (sync over mobile, over wifi, while roaming).
func SessionSetConnectionRules(sess Session, rules ConnectionRules) {
	if sess == nil || spSessionSetConnectionRules == nil {
		return
	}
	spSessionSetConnectionRules(sess, int32(rules))
}

// OfflineTracksToSync returns the number of tracks remaining to sync.
func OfflineTracksToSync(sess Session) int {
	if sess == nil || spOfflineTracksToSync == nil {
		return 0
	}
	return int(spOfflineTracksToSync(sess))
}

// OfflineNumPlaylists returns the number of playlists marked for offline
// use.
func OfflineNumPlaylists(sess Session) int {
	if sess == nil || spOfflineNumPlaylists == nil {
		return 0
	}
	return int(spOfflineNumPlaylists(sess))
}

// OfflineSyncGetStatus fills status with the current sync progress.
// Returns false when no sync is in progress (status is then unchanged).
func OfflineSyncGetStatus(sess Session, status *OfflineSyncStatus) bool {
	if sess == nil || status == nil || spOfflineSyncGetStatus == nil {
		return false
	}
	return spOfflineSyncGetStatus(sess, unsafe.Pointer(status))
}

// OfflineTimeLeft returns the number of seconds until the user must go
// online to keep offline content playable.
func OfflineTimeLeft(sess Session) int {
	if sess == nil || spOfflineTimeLeft == nil {
		return 0
	}
	return int(spOfflineTimeLeft(sess))
}

//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"errors"
	"runtime"
	"time"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/internal/handles"
	"github.com/obinnaokechukwu/spotgo/sp"
)

// Config carries the session creation parameters. ApplicationKey is the
// binary application key issued by Spotify and is required; everything
// else may be zero.
type Config struct {
	// CacheLocation is a writable directory for the track/metadata cache.
	// Empty disables caching.
	CacheLocation string

	// SettingsLocation is a writable directory for settings and stored
	// credentials. Empty keeps them in memory only.
	SettingsLocation string

	// ApplicationKey is the binary application key.
	ApplicationKey []byte

	// UserAgent identifies the application, e.g. "my-player/1.0".
	UserAgent string

	// Callbacks receives session events. May be nil.
	Callbacks *SessionCallbacks

	// DeviceID is a unique id for offline licensing. Empty is fine for
	// online-only use.
	DeviceID string

	// Proxy is "host:port" of an HTTP proxy, with optional credentials.
	Proxy         string
	ProxyUsername string
	ProxyPassword string

	// TraceFile, when set, makes the library write a protocol trace.
	TraceFile string

	CompressPlaylists            bool
	DontSaveMetadataForPlaylists bool
	InitiallyUnloadPlaylists     bool
}

// Session is a logged-in (or logging-in) connection to Spotify. All other
// objects hang off a session. A process may hold at most one live session;
// that is a libspotify restriction, not ours.
type Session struct {
	handle

	callbacks *SessionCallbacks

	// token roots this wrapper in the handle registry so trampolines can
	// find it via sp_session_userdata before the session pointer is
	// published.
	token uintptr

	// cfg and cstrings pin the native config and every buffer it points
	// to; libspotify keeps the pointers for the session lifetime.
	cfg      *sp.SessionConfig
	cstrings [][]byte
}

// cString returns a NUL-terminated copy of s, retained in sess.cstrings.
// An empty string yields nil (libspotify treats NULL and "" alike for its
// optional config strings).
func (s *Session) cString(v string) *byte {
	if v == "" {
		return nil
	}
	buf := append([]byte(v), 0)
	s.cstrings = append(s.cstrings, buf)
	return &buf[0]
}

// SessionCreate loads the library if needed and creates the native
// session. Events may start arriving on library threads before this
// returns.
func SessionCreate(config Config) (*Session, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	if len(config.ApplicationKey) == 0 {
		return nil, errors.New("spotgo: config has no application key")
	}

	s := &Session{callbacks: config.Callbacks}

	key := make([]byte, len(config.ApplicationKey))
	copy(key, config.ApplicationKey)
	s.cstrings = append(s.cstrings, key)

	// The config's cache and settings locations must be non-NULL even
	// when empty.
	cacheLoc := append([]byte(config.CacheLocation), 0)
	settingsLoc := append([]byte(config.SettingsLocation), 0)
	s.cstrings = append(s.cstrings, cacheLoc, settingsLoc)

	s.token = handles.Register(s)

	cfg := &sp.SessionConfig{
		APIVersion:         sp.APIVersion,
		CacheLocation:      &cacheLoc[0],
		SettingsLocation:   &settingsLoc[0],
		ApplicationKey:     unsafe.Pointer(&key[0]),
		ApplicationKeySize: uintptr(len(key)),
		UserAgent:          s.cString(config.UserAgent),
		Callbacks:          unsafe.Pointer(sessionCallbacksLayout()),
		Userdata:           unsafe.Pointer(s.token),
		DeviceID:           s.cString(config.DeviceID),
		Proxy:              s.cString(config.Proxy),
		ProxyUsername:      s.cString(config.ProxyUsername),
		ProxyPassword:      s.cString(config.ProxyPassword),
		Tracefile:          s.cString(config.TraceFile),
	}
	if config.CompressPlaylists {
		cfg.CompressPlaylists = 1
	}
	if config.DontSaveMetadataForPlaylists {
		cfg.DontSaveMetadataForPlaylists = 1
	}
	if config.InitiallyUnloadPlaylists {
		cfg.InitiallyUnloadPlaylists = 1
	}
	s.cfg = cfg

	ptr, err := sp.SessionCreate(cfg)
	if err != nil {
		handles.Unregister(s.token)
		return nil, err
	}

	s.init(ptr, KindSession)
	registerSession(ptr, s)
	runtime.SetFinalizer(s, (*Session).Release)
	return s, nil
}

// Release tears the session down: it drops the trampoline lookup entries
// and the native reference. Safe to call more than once; the finalizer
// calls it too.
func (s *Session) Release() {
	s.release(func(p unsafe.Pointer) {
		unregisterSession(p)
		handles.Unregister(s.token)
		sp.SessionRelease(p)
	})
}

// Login starts an asynchronous login. The outcome arrives via the
// LoggedIn callback. rememberMe stores the credentials in the settings
// location for a later Relogin.
func (s *Session) Login(username, password string, rememberMe bool) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		return sp.SessionLogin(p, username, password, rememberMe)
	})
}

// Relogin logs in the user stored by a previous Login with rememberMe.
// Fails with ErrNoCredentials when nobody is stored.
func (s *Session) Relogin() error {
	return s.withPointer(func(p unsafe.Pointer) error {
		return sp.SessionRelogin(p)
	})
}

// RememberedUser returns the canonical name of the stored user, or
// ok == false when none is stored.
func (s *Session) RememberedUser() (name string, ok bool, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		name, ok = sp.SessionRememberedUser(p)
		return nil
	})
	return
}

// ForgetMe discards the stored credentials.
func (s *Session) ForgetMe() error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionForgetMe(p)
		return nil
	})
}

// Logout starts an asynchronous logout. Always log out before releasing
// the session, or the library may lose unsaved state.
func (s *Session) Logout() error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionLogout(p)
		return nil
	})
}

// User returns the logged-in user, or a null-handle wrapper before login
// completes.
func (s *Session) User() (u *User, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.SessionUser(p)
		sp.UserAddRef(ptr)
		u = newUser(ptr)
		return nil
	})
	return
}

// ConnectionState returns the session's connection state.
func (s *Session) ConnectionState() (state ConnectionState, err error) {
	state = ConnectionStateUndefined
	err = s.withPointer(func(p unsafe.Pointer) error {
		state = sp.SessionConnectionState(p)
		return nil
	})
	return
}

// SetCacheSize caps the on-disk cache in megabytes. 0 means automatic.
func (s *Session) SetCacheSize(sizeMB int) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionSetCacheSize(p, sizeMB)
		return nil
	})
}

// ProcessEvents drives libspotify's event machinery and must be called
// from one dedicated goroutine: initially, then again whenever
// NotifyMainThread fires or the returned duration elapses, whichever
// comes first.
func (s *Session) ProcessEvents() (next time.Duration, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		ms, perr := sp.SessionProcessEvents(p)
		next = time.Duration(ms) * time.Millisecond
		return perr
	})
	return
}

// UserCountry returns the country the user is logged in from.
func (s *Session) UserCountry() (c Country, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		c = sp.SessionUserCountry(p)
		return nil
	})
	return
}

// PreferredBitrate sets the streaming quality.
func (s *Session) PreferredBitrate(b Bitrate) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionPreferredBitrate(p, b)
		return nil
	})
}

// PreferredOfflineBitrate sets the quality for offline syncing.
// allowResync permits re-downloading tracks already synced at another
// bitrate.
func (s *Session) PreferredOfflineBitrate(b Bitrate, allowResync bool) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionPreferredOfflineBitrate(p, b, allowResync)
		return nil
	})
}

// NumFriends returns the number of friends of the logged-in user.
func (s *Session) NumFriends() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.SessionNumFriends(p)
		return nil
	})
	return
}

// Friend returns the friend at index.
func (s *Session) Friend(index int) (u *User, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.SessionFriend(p, index)
		sp.UserAddRef(ptr)
		u = newUser(ptr)
		return nil
	})
	return
}

// SetConnectionType tells the library what kind of network link the host
// has, which drives offline sync policy together with SetConnectionRules.
func (s *Session) SetConnectionType(t ConnectionType) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionSetConnectionType(p, t)
		return nil
	})
}

// SetConnectionRules restricts when the library may use the network.
func (s *Session) SetConnectionRules(rules ConnectionRules) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionSetConnectionRules(p, rules)
		return nil
	})
}

// PlayerLoad loads a track for playback. Fails with ErrTrackNotPlayable
// or ErrIsLoading when the track cannot be played (yet).
func (s *Session) PlayerLoad(t *Track) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		return t.withPointer(func(tp unsafe.Pointer) error {
			return sp.SessionPlayerLoad(p, tp)
		})
	})
}

// PlayerSeek seeks in the loaded track. The next MusicDelivery after a
// seek is a flush signal.
func (s *Session) PlayerSeek(offset time.Duration) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionPlayerSeek(p, int32(offset/time.Millisecond))
		return nil
	})
}

// PlayerPlay starts (true) or pauses (false) delivery of the loaded
// track.
func (s *Session) PlayerPlay(play bool) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionPlayerPlay(p, play)
		return nil
	})
}

// PlayerUnload unloads the loaded track and stops delivery.
func (s *Session) PlayerUnload() error {
	return s.withPointer(func(p unsafe.Pointer) error {
		sp.SessionPlayerUnload(p)
		return nil
	})
}

// PlayerPrefetch hints that a track will be played soon so the library
// can start buffering it.
func (s *Session) PlayerPrefetch(t *Track) error {
	return s.withPointer(func(p unsafe.Pointer) error {
		return t.withPointer(func(tp unsafe.Pointer) error {
			return sp.SessionPlayerPrefetch(p, tp)
		})
	})
}

// PlaylistContainer returns the root container of the user's playlists.
func (s *Session) PlaylistContainer() (pc *PlaylistContainer, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.SessionPlaylistContainer(p)
		sp.PlaylistContainerAddRef(ptr)
		pc = newPlaylistContainer(ptr)
		return nil
	})
	return
}

// InboxPlaylist returns the user's inbox playlist, where other users'
// posted tracks land.
func (s *Session) InboxPlaylist() (pl *Playlist, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		pl = newPlaylist(sp.SessionInboxCreate(p))
		return nil
	})
	return
}

// StarredPlaylist returns the user's starred-tracks playlist.
func (s *Session) StarredPlaylist() (pl *Playlist, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		pl = newPlaylist(sp.SessionStarredCreate(p))
		return nil
	})
	return
}

// StarredForUser returns another user's starred playlist by canonical
// username.
func (s *Session) StarredForUser(canonicalUsername string) (pl *Playlist, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		pl = newPlaylist(sp.SessionStarredForUserCreate(p, canonicalUsername))
		return nil
	})
	return
}

// PublishedContainerForUser returns the playlists a user has published.
// An empty username means the logged-in user.
func (s *Session) PublishedContainerForUser(canonicalUsername string) (pc *PlaylistContainer, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		pc = newPlaylistContainer(sp.SessionPublishedContainerForUserCreate(p, canonicalUsername))
		return nil
	})
	return
}

// OfflineTracksToSync returns the number of tracks still waiting to be
// synced for offline use.
func (s *Session) OfflineTracksToSync() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.OfflineTracksToSync(p)
		return nil
	})
	return
}

// OfflineNumPlaylists returns the number of playlists marked for offline
// use.
func (s *Session) OfflineNumPlaylists() (n int, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		n = sp.OfflineNumPlaylists(p)
		return nil
	})
	return
}

// OfflineSyncStatus returns a snapshot of sync progress. syncing is false
// when no synchronization is in progress.
func (s *Session) OfflineSyncStatus() (status OfflineSyncStatus, syncing bool, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		syncing = sp.OfflineSyncGetStatus(p, &status)
		return nil
	})
	return
}

// OfflineTimeLeft returns how long until the user must go online to keep
// offline content playable.
func (s *Session) OfflineTimeLeft() (d time.Duration, err error) {
	err = s.withPointer(func(p unsafe.Pointer) error {
		d = time.Duration(sp.OfflineTimeLeft(p)) * time.Second
		return nil
	})
	return
}

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

// Playlist wraps an sp_playlist.
type Playlist struct {
	handle
}

func newPlaylist(ptr unsafe.Pointer) *Playlist {
	pl := &Playlist{}
	pl.init(ptr, KindPlaylist)
	runtime.SetFinalizer(pl, (*Playlist).Release)
	return pl
}

// Release drops this wrapper's native reference. Idempotent.
func (pl *Playlist) Release() {
	pl.release(sp.PlaylistRelease)
}

// IsLoaded reports whether the playlist has loaded.
func (pl *Playlist) IsLoaded() (loaded bool, err error) {
	err = pl.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.PlaylistIsLoaded(p)
		return nil
	})
	return
}

// Name returns the playlist name, or "" while not loaded.
func (pl *Playlist) Name() (name string, err error) {
	err = pl.withPointer(func(p unsafe.Pointer) error {
		name = sp.PlaylistName(p)
		return nil
	})
	return
}

// Rename renames the playlist. Requires write permission.
func (pl *Playlist) Rename(newName string) error {
	return pl.withPointer(func(p unsafe.Pointer) error {
		return sp.PlaylistRename(p, newName)
	})
}

// NumTracks returns the number of tracks in the playlist.
func (pl *Playlist) NumTracks() (n int, err error) {
	err = pl.withPointer(func(p unsafe.Pointer) error {
		n = sp.PlaylistNumTracks(p)
		return nil
	})
	return
}

// Track returns the playlist track at index.
func (pl *Playlist) Track(index int) (t *Track, err error) {
	err = pl.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.PlaylistTrack(p, index)
		sp.TrackAddRef(ptr)
		t = newTrack(ptr)
		return nil
	})
	return
}

// Owner returns the playlist's owner.
func (pl *Playlist) Owner() (u *User, err error) {
	err = pl.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.PlaylistOwner(p)
		sp.UserAddRef(ptr)
		u = newUser(ptr)
		return nil
	})
	return
}

// PlaylistContainer wraps an sp_playlistcontainer, an ordered list of
// playlists.
type PlaylistContainer struct {
	handle
}

func newPlaylistContainer(ptr unsafe.Pointer) *PlaylistContainer {
	pc := &PlaylistContainer{}
	pc.init(ptr, KindPlaylistContainer)
	runtime.SetFinalizer(pc, (*PlaylistContainer).Release)
	return pc
}

// Release drops this wrapper's native reference. Idempotent.
func (pc *PlaylistContainer) Release() {
	pc.release(sp.PlaylistContainerRelease)
}

// IsLoaded reports whether the container has loaded.
func (pc *PlaylistContainer) IsLoaded() (loaded bool, err error) {
	err = pc.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.PlaylistContainerIsLoaded(p)
		return nil
	})
	return
}

// NumPlaylists returns the number of playlists in the container.
func (pc *PlaylistContainer) NumPlaylists() (n int, err error) {
	err = pc.withPointer(func(p unsafe.Pointer) error {
		n = sp.PlaylistContainerNumPlaylists(p)
		return nil
	})
	return
}

// Playlist returns the playlist at index.
func (pc *PlaylistContainer) Playlist(index int) (pl *Playlist, err error) {
	err = pc.withPointer(func(p unsafe.Pointer) error {
		ptr := sp.PlaylistContainerPlaylist(p, index)
		sp.PlaylistAddRef(ptr)
		pl = newPlaylist(ptr)
		return nil
	})
	return
}

// Inbox wraps an sp_inbox, a pending track post to another user's inbox.
type Inbox struct {
	handle

	onComplete func(*Inbox)
	token      uintptr
	completed  atomic.Bool
	ready      chan struct{}
}

func (in *Inbox) complete() {
	if in.ready != nil {
		<-in.ready
	}
	if !in.completed.CompareAndSwap(false, true) {
		return
	}
	if in.onComplete != nil {
		in.onComplete(in)
	}
}

// PostTracks sends tracks to another user's inbox with an optional
// message. onComplete (optional) fires once on a library thread when the
// post has been acknowledged; check Error on it for the outcome.
func (sess *Session) PostTracks(canonicalUsername string, tracks []*Track, message string, onComplete func(*Inbox)) (*Inbox, error) {
	if len(tracks) == 0 {
		return nil, errors.New("spotgo: no tracks to post")
	}

	in := &Inbox{onComplete: onComplete, ready: make(chan struct{})}
	in.token = handles.Register(in)

	err := sess.withPointer(func(p unsafe.Pointer) error {
		ptrs := make([]sp.Track, 0, len(tracks))
		for _, t := range tracks {
			if err := t.withPointer(func(tp unsafe.Pointer) error {
				ptrs = append(ptrs, tp)
				return nil
			}); err != nil {
				return err
			}
		}
		ptr := sp.InboxPostTracks(p, canonicalUsername, ptrs, message, completionCallback(), unsafe.Pointer(in.token))
		if ptr == nil {
			return errors.New("spotgo: sp_inbox_post_tracks failed")
		}
		in.init(ptr, KindInbox)
		return nil
	})
	close(in.ready)
	if err != nil {
		handles.Unregister(in.token)
		return nil, err
	}
	runtime.SetFinalizer(in, (*Inbox).Release)
	return in, nil
}

// Release drops the wrapper's native reference and any pending completion
// root. Idempotent.
func (in *Inbox) Release() {
	in.release(func(p unsafe.Pointer) {
		handles.Unregister(in.token)
		sp.InboxRelease(p)
	})
}

// Error returns the outcome of the post; ErrIsLoading while still in
// flight, ErrInboxIsFull or ErrNoSuchUser on failure.
func (in *Inbox) Error() (code ErrorCode, err error) {
	err = in.withPointer(func(p unsafe.Pointer) error {
		code = sp.InboxError(p)
		return nil
	})
	return
}

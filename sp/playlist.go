//go:build !ios && !android && (amd64 || arm64)

package sp

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Playlist, playlist container and inbox bindings.
var (
	spPlaylistAddRef    func(pl unsafe.Pointer)
	spPlaylistRelease   func(pl unsafe.Pointer)
	spPlaylistIsLoaded  func(pl unsafe.Pointer) bool
	spPlaylistName      func(pl unsafe.Pointer) string
	spPlaylistRename    func(pl unsafe.Pointer, newName string) int32
	spPlaylistNumTracks func(pl unsafe.Pointer) int32
	spPlaylistTrack     func(pl unsafe.Pointer, index int32) unsafe.Pointer
	spPlaylistOwner     func(pl unsafe.Pointer) unsafe.Pointer

	spPlaylistcontainerAddRef       func(pc unsafe.Pointer)
	spPlaylistcontainerRelease      func(pc unsafe.Pointer)
	spPlaylistcontainerIsLoaded     func(pc unsafe.Pointer) bool
	spPlaylistcontainerNumPlaylists func(pc unsafe.Pointer) int32
	spPlaylistcontainerPlaylist     func(pc unsafe.Pointer, index int32) unsafe.Pointer

	spInboxPostTracks func(sess unsafe.Pointer, user string, tracks *unsafe.Pointer, numTracks int32, message string, callback uintptr, userdata unsafe.Pointer) unsafe.Pointer
	spInboxAddRef     func(inbox unsafe.Pointer)
	spInboxRelease    func(inbox unsafe.Pointer)
	spInboxError      func(inbox unsafe.Pointer) int32
)

func registerPlaylist(lib uintptr) {
	purego.RegisterLibFunc(&spPlaylistAddRef, lib, "sp_playlist_add_ref")
	purego.RegisterLibFunc(&spPlaylistRelease, lib, "sp_playlist_release")
	purego.RegisterLibFunc(&spPlaylistIsLoaded, lib, "sp_playlist_is_loaded")
	purego.RegisterLibFunc(&spPlaylistName, lib, "sp_playlist_name")
	purego.RegisterLibFunc(&spPlaylistRename, lib, "sp_playlist_rename")
	purego.RegisterLibFunc(&spPlaylistNumTracks, lib, "sp_playlist_num_tracks")
	purego.RegisterLibFunc(&spPlaylistTrack, lib, "sp_playlist_track")
	purego.RegisterLibFunc(&spPlaylistOwner, lib, "sp_playlist_owner")

	purego.RegisterLibFunc(&spPlaylistcontainerAddRef, lib, "sp_playlistcontainer_add_ref")
	purego.RegisterLibFunc(&spPlaylistcontainerRelease, lib, "sp_playlistcontainer_release")
	purego.RegisterLibFunc(&spPlaylistcontainerIsLoaded, lib, "sp_playlistcontainer_is_loaded")
	purego.RegisterLibFunc(&spPlaylistcontainerNumPlaylists, lib, "sp_playlistcontainer_num_playlists")
	purego.RegisterLibFunc(&spPlaylistcontainerPlaylist, lib, "sp_playlistcontainer_playlist")

	purego.RegisterLibFunc(&spInboxPostTracks, lib, "sp_inbox_post_tracks")
	purego.RegisterLibFunc(&spInboxAddRef, lib, "sp_inbox_add_ref")
	purego.RegisterLibFunc(&spInboxRelease, lib, "sp_inbox_release")
	purego.RegisterLibFunc(&spInboxError, lib, "sp_inbox_error")
}

// PlaylistAddRef increments the playlist's native refcount.
func PlaylistAddRef(pl Playlist) {
	if pl == nil || spPlaylistAddRef == nil {
		return
	}
	spPlaylistAddRef(pl)
}

// PlaylistRelease decrements the playlist's native refcount.
func PlaylistRelease(pl Playlist) {
	if pl == nil || spPlaylistRelease == nil {
		return
	}
	spPlaylistRelease(pl)
}

// PlaylistIsLoaded reports whether the playlist has loaded.
func PlaylistIsLoaded(pl Playlist) bool {
	if pl == nil || spPlaylistIsLoaded == nil {
		return false
	}
	return spPlaylistIsLoaded(pl)
}

// PlaylistName returns the playlist's name, or "" while not loaded.
func PlaylistName(pl Playlist) string {
	if pl == nil || spPlaylistName == nil {
		return ""
	}
	return spPlaylistName(pl)
}

// PlaylistRename renames the playlist.
func PlaylistRename(pl Playlist, newName string) error {
	if spPlaylistRename == nil {
		return nil
	}
	code := spPlaylistRename(pl, newName)
	return NewError(ErrorCode(code), "sp_playlist_rename")
}

// PlaylistNumTracks returns the number of tracks in the playlist.
func PlaylistNumTracks(pl Playlist) int {
	if pl == nil || spPlaylistNumTracks == nil {
		return 0
	}
	return int(spPlaylistNumTracks(pl))
}

// PlaylistTrack returns the track at index. The caller owns no reference;
// add-ref before wrapping.
func PlaylistTrack(pl Playlist, index int) Track {
	if pl == nil || spPlaylistTrack == nil {
		return nil
	}
	return spPlaylistTrack(pl, int32(index))
}

// PlaylistOwner returns the playlist's owner. The caller owns no
// reference; add-ref before wrapping.
func PlaylistOwner(pl Playlist) User {
	if pl == nil || spPlaylistOwner == nil {
		return nil
	}
	return spPlaylistOwner(pl)
}

// PlaylistContainerAddRef increments the container's native refcount.
func PlaylistContainerAddRef(pc PlaylistContainer) {
	if pc == nil || spPlaylistcontainerAddRef == nil {
		return
	}
	spPlaylistcontainerAddRef(pc)
}

// PlaylistContainerRelease decrements the container's native refcount.
func PlaylistContainerRelease(pc PlaylistContainer) {
	if pc == nil || spPlaylistcontainerRelease == nil {
		return
	}
	spPlaylistcontainerRelease(pc)
}

// PlaylistContainerIsLoaded reports whether the container has loaded.
func PlaylistContainerIsLoaded(pc PlaylistContainer) bool {
	if pc == nil || spPlaylistcontainerIsLoaded == nil {
		return false
	}
	return spPlaylistcontainerIsLoaded(pc)
}

// PlaylistContainerNumPlaylists returns the number of playlists.
func PlaylistContainerNumPlaylists(pc PlaylistContainer) int {
	if pc == nil || spPlaylistcontainerNumPlaylists == nil {
		return 0
	}
	return int(spPlaylistcontainerNumPlaylists(pc))
}

// PlaylistContainerPlaylist returns the playlist at index. The caller owns
// no reference; add-ref before wrapping.
func PlaylistContainerPlaylist(pc PlaylistContainer, index int) Playlist {
	if pc == nil || spPlaylistcontainerPlaylist == nil {
		return nil
	}
	return spPlaylistcontainerPlaylist(pc, int32(index))
}

// InboxPostTracks asynchronously posts tracks to another user's inbox.
// Completion is reported through callback with userdata. The returned
// reference is owned by the caller.
func InboxPostTracks(sess Session, user string, tracks []Track, message string, callback uintptr, userdata unsafe.Pointer) Inbox {
	if spInboxPostTracks == nil || len(tracks) == 0 {
		return nil
	}
	return spInboxPostTracks(sess, user, &tracks[0], int32(len(tracks)), message, callback, userdata)
}

// InboxAddRef increments the inbox request's native refcount.
func InboxAddRef(inbox Inbox) {
	if inbox == nil || spInboxAddRef == nil {
		return
	}
	spInboxAddRef(inbox)
}

// InboxRelease decrements the inbox request's native refcount.
func InboxRelease(inbox Inbox) {
	if inbox == nil || spInboxRelease == nil {
		return
	}
	spInboxRelease(inbox)
}

// InboxError returns the status of the inbox post.
func InboxError(inbox Inbox) ErrorCode {
	if inbox == nil || spInboxError == nil {
		return ErrOK
	}
	return ErrorCode(spInboxError(inbox))
}

//go:build !ios && !android && (amd64 || arm64)

package sp

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Track, album, artist and user bindings. All getters follow libspotify's
// metadata model: until the object is loaded they return empty/zero values,
// never errors. Poll IsLoaded (or wait for the metadata_updated callback)
// before trusting the values.
var (
	spTrackAddRef       func(track unsafe.Pointer)
	spTrackRelease      func(track unsafe.Pointer)
	spTrackIsLoaded     func(track unsafe.Pointer) bool
	spTrackError        func(track unsafe.Pointer) int32
	spTrackIsAvailable  func(sess, track unsafe.Pointer) bool
	spTrackIsLocal      func(sess, track unsafe.Pointer) bool
	spTrackIsAutolinked func(sess, track unsafe.Pointer) bool
	spTrackIsStarred    func(sess, track unsafe.Pointer) bool
	spTrackSetStarred   func(sess unsafe.Pointer, tracks *unsafe.Pointer, numTracks int32, star bool) int32
	spTrackNumArtists   func(track unsafe.Pointer) int32
	spTrackArtist       func(track unsafe.Pointer, index int32) unsafe.Pointer
	spTrackAlbum        func(track unsafe.Pointer) unsafe.Pointer
	spTrackName         func(track unsafe.Pointer) string
	spTrackDuration     func(track unsafe.Pointer) int32
	spTrackPopularity   func(track unsafe.Pointer) int32
	spTrackDisc         func(track unsafe.Pointer) int32
	spTrackIndex        func(track unsafe.Pointer) int32
	spLocaltrackCreate  func(artist, title, album string, lengthMS int32) unsafe.Pointer

	spAlbumAddRef      func(album unsafe.Pointer)
	spAlbumRelease     func(album unsafe.Pointer)
	spAlbumIsLoaded    func(album unsafe.Pointer) bool
	spAlbumIsAvailable func(album unsafe.Pointer) bool
	spAlbumArtist      func(album unsafe.Pointer) unsafe.Pointer
	spAlbumCover       func(album unsafe.Pointer, size int32) unsafe.Pointer
	spAlbumName        func(album unsafe.Pointer) string
	spAlbumYear        func(album unsafe.Pointer) int32
	spAlbumType        func(album unsafe.Pointer) int32

	spArtistAddRef   func(artist unsafe.Pointer)
	spArtistRelease  func(artist unsafe.Pointer)
	spArtistName     func(artist unsafe.Pointer) string
	spArtistIsLoaded func(artist unsafe.Pointer) bool

	spUserAddRef        func(user unsafe.Pointer)
	spUserRelease       func(user unsafe.Pointer)
	spUserCanonicalName func(user unsafe.Pointer) string
	spUserDisplayName   func(user unsafe.Pointer) string
	spUserIsLoaded      func(user unsafe.Pointer) bool
)

func registerMetadata(lib uintptr) {
	purego.RegisterLibFunc(&spTrackAddRef, lib, "sp_track_add_ref")
	purego.RegisterLibFunc(&spTrackRelease, lib, "sp_track_release")
	purego.RegisterLibFunc(&spTrackIsLoaded, lib, "sp_track_is_loaded")
	purego.RegisterLibFunc(&spTrackError, lib, "sp_track_error")
	purego.RegisterLibFunc(&spTrackIsAvailable, lib, "sp_track_is_available")
	purego.RegisterLibFunc(&spTrackIsLocal, lib, "sp_track_is_local")
	purego.RegisterLibFunc(&spTrackIsAutolinked, lib, "sp_track_is_autolinked")
	purego.RegisterLibFunc(&spTrackIsStarred, lib, "sp_track_is_starred")
	purego.RegisterLibFunc(&spTrackSetStarred, lib, "sp_track_set_starred")
	purego.RegisterLibFunc(&spTrackNumArtists, lib, "sp_track_num_artists")
	purego.RegisterLibFunc(&spTrackArtist, lib, "sp_track_artist")
	purego.RegisterLibFunc(&spTrackAlbum, lib, "sp_track_album")
	purego.RegisterLibFunc(&spTrackName, lib, "sp_track_name")
	purego.RegisterLibFunc(&spTrackDuration, lib, "sp_track_duration")
	purego.RegisterLibFunc(&spTrackPopularity, lib, "sp_track_popularity")
	purego.RegisterLibFunc(&spTrackDisc, lib, "sp_track_disc")
	purego.RegisterLibFunc(&spTrackIndex, lib, "sp_track_index")
	purego.RegisterLibFunc(&spLocaltrackCreate, lib, "sp_localtrack_create")

	purego.RegisterLibFunc(&spAlbumAddRef, lib, "sp_album_add_ref")
	purego.RegisterLibFunc(&spAlbumRelease, lib, "sp_album_release")
	purego.RegisterLibFunc(&spAlbumIsLoaded, lib, "sp_album_is_loaded")
	purego.RegisterLibFunc(&spAlbumIsAvailable, lib, "sp_album_is_available")
	purego.RegisterLibFunc(&spAlbumArtist, lib, "sp_album_artist")
	purego.RegisterLibFunc(&spAlbumCover, lib, "sp_album_cover")
	purego.RegisterLibFunc(&spAlbumName, lib, "sp_album_name")
	purego.RegisterLibFunc(&spAlbumYear, lib, "sp_album_year")
	purego.RegisterLibFunc(&spAlbumType, lib, "sp_album_type")

	purego.RegisterLibFunc(&spArtistAddRef, lib, "sp_artist_add_ref")
	purego.RegisterLibFunc(&spArtistRelease, lib, "sp_artist_release")
	purego.RegisterLibFunc(&spArtistName, lib, "sp_artist_name")
	purego.RegisterLibFunc(&spArtistIsLoaded, lib, "sp_artist_is_loaded")

	purego.RegisterLibFunc(&spUserAddRef, lib, "sp_user_add_ref")
	purego.RegisterLibFunc(&spUserRelease, lib, "sp_user_release")
	purego.RegisterLibFunc(&spUserCanonicalName, lib, "sp_user_canonical_name")
	purego.RegisterLibFunc(&spUserDisplayName, lib, "sp_user_display_name")
	purego.RegisterLibFunc(&spUserIsLoaded, lib, "sp_user_is_loaded")
}

// TrackAddRef increments the track's native refcount.
func TrackAddRef(track Track) {
	if track == nil || spTrackAddRef == nil {
		return
	}
	spTrackAddRef(track)
}

// TrackRelease decrements the track's native refcount.
func TrackRelease(track Track) {
	if track == nil || spTrackRelease == nil {
		return
	}
	spTrackRelease(track)
}

// TrackIsLoaded reports whether the track's metadata has loaded.
func TrackIsLoaded(track Track) bool {
	if track == nil || spTrackIsLoaded == nil {
		return false
	}
	return spTrackIsLoaded(track)
}

// TrackError returns the load status of the track (ErrIsLoading while
// metadata is in flight).
func TrackError(track Track) ErrorCode {
	if track == nil || spTrackError == nil {
		return ErrOK
	}
	return ErrorCode(spTrackError(track))
}

// TrackIsAvailable reports whether the track is playable in the session
// user's region.
func TrackIsAvailable(sess Session, track Track) bool {
	if track == nil || spTrackIsAvailable == nil {
		return false
	}
	return spTrackIsAvailable(sess, track)
}

// TrackIsLocal reports whether the track is a local file.
func TrackIsLocal(sess Session, track Track) bool {
	if track == nil || spTrackIsLocal == nil {
		return false
	}
	return spTrackIsLocal(sess, track)
}

// TrackIsAutolinked reports whether playback will actually use another
// track (the library relinks unplayable tracks to playable duplicates).
func TrackIsAutolinked(sess Session, track Track) bool {
	if track == nil || spTrackIsAutolinked == nil {
		return false
	}
	return spTrackIsAutolinked(sess, track)
}

// TrackIsStarred reports whether the session user has starred the track.
func TrackIsStarred(sess Session, track Track) bool {
	if track == nil || spTrackIsStarred == nil {
		return false
	}
	return spTrackIsStarred(sess, track)
}

// TrackSetStarred stars or unstars a batch of tracks.
func TrackSetStarred(sess Session, tracks []Track, star bool) error {
	if spTrackSetStarred == nil {
		return nil
	}
	if len(tracks) == 0 {
		return nil
	}
	code := spTrackSetStarred(sess, &tracks[0], int32(len(tracks)), star)
	return NewError(ErrorCode(code), "sp_track_set_starred")
}

// TrackNumArtists returns the number of performing artists.
func TrackNumArtists(track Track) int {
	if track == nil || spTrackNumArtists == nil {
		return 0
	}
	return int(spTrackNumArtists(track))
}

// TrackArtist returns the artist at index. The caller owns no reference;
// add-ref before wrapping.
func TrackArtist(track Track, index int) Artist {
	if track == nil || spTrackArtist == nil {
		return nil
	}
	return spTrackArtist(track, int32(index))
}

// TrackAlbum returns the track's album. The caller owns no reference;
// add-ref before wrapping.
func TrackAlbum(track Track) Album {
	if track == nil || spTrackAlbum == nil {
		return nil
	}
	return spTrackAlbum(track)
}

// TrackName returns the track's title, or "" while not loaded.
func TrackName(track Track) string {
	if track == nil || spTrackName == nil {
		return ""
	}
	return spTrackName(track)
}

// TrackDuration returns the track length in milliseconds, or 0 while not
// loaded.
func TrackDuration(track Track) int32 {
	if track == nil || spTrackDuration == nil {
		return 0
	}
	return spTrackDuration(track)
}

// TrackPopularity returns the track popularity in [0, 100].
func TrackPopularity(track Track) int {
	if track == nil || spTrackPopularity == nil {
		return 0
	}
	return int(spTrackPopularity(track))
}

// TrackDisc returns the 1-based disc number. Only valid for tracks
// obtained from an album browse.
func TrackDisc(track Track) int {
	if track == nil || spTrackDisc == nil {
		return 0
	}
	return int(spTrackDisc(track))
}

// TrackIndex returns the 1-based position on its disc. Only valid for
// tracks obtained from an album browse.
func TrackIndex(track Track) int {
	if track == nil || spTrackIndex == nil {
		return 0
	}
	return int(spTrackIndex(track))
}

// LocaltrackCreate builds a track object for a local file. lengthMS < 0
// means unknown length. The returned reference is owned by the caller.
func LocaltrackCreate(artist, title, album string, lengthMS int32) Track {
	if spLocaltrackCreate == nil {
		return nil
	}
	if lengthMS < 0 {
		lengthMS = -1
	}
	return spLocaltrackCreate(artist, title, album, lengthMS)
}

// AlbumAddRef increments the album's native refcount.
func AlbumAddRef(album Album) {
	if album == nil || spAlbumAddRef == nil {
		return
	}
	spAlbumAddRef(album)
}

// AlbumRelease decrements the album's native refcount.
func AlbumRelease(album Album) {
	if album == nil || spAlbumRelease == nil {
		return
	}
	spAlbumRelease(album)
}

// AlbumIsLoaded reports whether the album's metadata has loaded.
func AlbumIsLoaded(album Album) bool {
	if album == nil || spAlbumIsLoaded == nil {
		return false
	}
	return spAlbumIsLoaded(album)
}

// AlbumIsAvailable reports whether the album is available in the session
// user's region.
func AlbumIsAvailable(album Album) bool {
	if album == nil || spAlbumIsAvailable == nil {
		return false
	}
	return spAlbumIsAvailable(album)
}

// AlbumArtist returns the album's artist. The caller owns no reference;
// add-ref before wrapping.
func AlbumArtist(album Album) Artist {
	if album == nil || spAlbumArtist == nil {
		return nil
	}
	return spAlbumArtist(album)
}

// AlbumCover returns the image id (ImageIDSize bytes) of the album cover
// at the given size, or nil while not loaded or when the album has no
// cover. The returned slice is a copy.
func AlbumCover(album Album, size ImageSize) []byte {
	if album == nil || spAlbumCover == nil {
		return nil
	}
	p := spAlbumCover(album, int32(size))
	if p == nil {
		return nil
	}
	id := make([]byte, ImageIDSize)
	copy(id, unsafe.Slice((*byte)(p), ImageIDSize))
	return id
}

// AlbumName returns the album title, or "" while not loaded.
func AlbumName(album Album) string {
	if album == nil || spAlbumName == nil {
		return ""
	}
	return spAlbumName(album)
}

// AlbumYear returns the release year, or 0 while not loaded.
func AlbumYear(album Album) int {
	if album == nil || spAlbumYear == nil {
		return 0
	}
	return int(spAlbumYear(album))
}

// AlbumTypeOf returns the album type.
func AlbumTypeOf(album Album) AlbumType {
	if album == nil || spAlbumType == nil {
		return AlbumTypeUnknown
	}
	return AlbumType(spAlbumType(album))
}

// ArtistAddRef increments the artist's native refcount.
func ArtistAddRef(artist Artist) {
	if artist == nil || spArtistAddRef == nil {
		return
	}
	spArtistAddRef(artist)
}

// ArtistRelease decrements the artist's native refcount.
func ArtistRelease(artist Artist) {
	if artist == nil || spArtistRelease == nil {
		return
	}
	spArtistRelease(artist)
}

// ArtistName returns the artist's name, or "" while not loaded.
func ArtistName(artist Artist) string {
	if artist == nil || spArtistName == nil {
		return ""
	}
	return spArtistName(artist)
}

// ArtistIsLoaded reports whether the artist's metadata has loaded.
func ArtistIsLoaded(artist Artist) bool {
	if artist == nil || spArtistIsLoaded == nil {
		return false
	}
	return spArtistIsLoaded(artist)
}

// UserAddRef increments the user's native refcount.
func UserAddRef(user User) {
	if user == nil || spUserAddRef == nil {
		return
	}
	spUserAddRef(user)
}

// UserRelease decrements the user's native refcount.
func UserRelease(user User) {
	if user == nil || spUserRelease == nil {
		return
	}
	spUserRelease(user)
}

// UserCanonicalName returns the user's canonical (login) name.
func UserCanonicalName(user User) string {
	if user == nil || spUserCanonicalName == nil {
		return ""
	}
	return spUserCanonicalName(user)
}

// UserDisplayName returns the user's display name, falling back to the
// canonical name when none is set.
func UserDisplayName(user User) string {
	if user == nil || spUserDisplayName == nil {
		return ""
	}
	return spUserDisplayName(user)
}

// UserIsLoaded reports whether the user's metadata has loaded.
func UserIsLoaded(user User) bool {
	if user == nil || spUserIsLoaded == nil {
		return false
	}
	return spUserIsLoaded(user)
}

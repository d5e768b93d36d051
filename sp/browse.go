//go:build !ios && !android && (amd64 || arm64)

package sp

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Search and browse bindings. The create functions issue asynchronous
// requests: the returned object exists immediately but stays unloaded until
// the completion callback fires. callback is a purego.NewCallback pointer
// with the C signature void (*)(sp_<kind> *result, void *userdata).
var (
	spSearchCreate       func(sess unsafe.Pointer, query string, trackOffset, trackCount, albumOffset, albumCount, artistOffset, artistCount, playlistOffset, playlistCount, searchType int32, callback uintptr, userdata unsafe.Pointer) unsafe.Pointer
	spRadioSearchCreate  func(sess unsafe.Pointer, fromYear, toYear int32, genres int32, callback uintptr, userdata unsafe.Pointer) unsafe.Pointer
	spSearchAddRef       func(search unsafe.Pointer)
	spSearchRelease      func(search unsafe.Pointer)
	spSearchIsLoaded     func(search unsafe.Pointer) bool
	spSearchError        func(search unsafe.Pointer) int32
	spSearchQuery        func(search unsafe.Pointer) string
	spSearchDidYouMean   func(search unsafe.Pointer) string
	spSearchNumTracks    func(search unsafe.Pointer) int32
	spSearchTrack        func(search unsafe.Pointer, index int32) unsafe.Pointer
	spSearchNumAlbums    func(search unsafe.Pointer) int32
	spSearchAlbum        func(search unsafe.Pointer, index int32) unsafe.Pointer
	spSearchNumArtists   func(search unsafe.Pointer) int32
	spSearchArtist       func(search unsafe.Pointer, index int32) unsafe.Pointer
	spSearchTotalTracks  func(search unsafe.Pointer) int32
	spSearchTotalAlbums  func(search unsafe.Pointer) int32
	spSearchTotalArtists func(search unsafe.Pointer) int32

	spAlbumbrowseCreate        func(sess, album unsafe.Pointer, callback uintptr, userdata unsafe.Pointer) unsafe.Pointer
	spAlbumbrowseAddRef        func(ab unsafe.Pointer)
	spAlbumbrowseRelease       func(ab unsafe.Pointer)
	spAlbumbrowseIsLoaded      func(ab unsafe.Pointer) bool
	spAlbumbrowseError         func(ab unsafe.Pointer) int32
	spAlbumbrowseAlbum         func(ab unsafe.Pointer) unsafe.Pointer
	spAlbumbrowseArtist        func(ab unsafe.Pointer) unsafe.Pointer
	spAlbumbrowseNumCopyrights func(ab unsafe.Pointer) int32
	spAlbumbrowseCopyright     func(ab unsafe.Pointer, index int32) string
	spAlbumbrowseNumTracks     func(ab unsafe.Pointer) int32
	spAlbumbrowseTrack         func(ab unsafe.Pointer, index int32) unsafe.Pointer
	spAlbumbrowseReview        func(ab unsafe.Pointer) string

	spArtistbrowseCreate            func(sess, artist unsafe.Pointer, browseType int32, callback uintptr, userdata unsafe.Pointer) unsafe.Pointer
	spArtistbrowseAddRef            func(ab unsafe.Pointer)
	spArtistbrowseRelease           func(ab unsafe.Pointer)
	spArtistbrowseIsLoaded          func(ab unsafe.Pointer) bool
	spArtistbrowseError             func(ab unsafe.Pointer) int32
	spArtistbrowseArtist            func(ab unsafe.Pointer) unsafe.Pointer
	spArtistbrowseNumPortraits      func(ab unsafe.Pointer) int32
	spArtistbrowsePortrait          func(ab unsafe.Pointer, index int32) unsafe.Pointer
	spArtistbrowseNumTracks         func(ab unsafe.Pointer) int32
	spArtistbrowseTrack             func(ab unsafe.Pointer, index int32) unsafe.Pointer
	spArtistbrowseNumAlbums         func(ab unsafe.Pointer) int32
	spArtistbrowseAlbum             func(ab unsafe.Pointer, index int32) unsafe.Pointer
	spArtistbrowseNumSimilarArtists func(ab unsafe.Pointer) int32
	spArtistbrowseSimilarArtist     func(ab unsafe.Pointer, index int32) unsafe.Pointer
	spArtistbrowseBiography         func(ab unsafe.Pointer) string

	spToplistbrowseCreate     func(sess unsafe.Pointer, toplistType, region int32, username *byte, callback uintptr, userdata unsafe.Pointer) unsafe.Pointer
	spToplistbrowseAddRef     func(tb unsafe.Pointer)
	spToplistbrowseRelease    func(tb unsafe.Pointer)
	spToplistbrowseIsLoaded   func(tb unsafe.Pointer) bool
	spToplistbrowseError      func(tb unsafe.Pointer) int32
	spToplistbrowseNumArtists func(tb unsafe.Pointer) int32
	spToplistbrowseArtist     func(tb unsafe.Pointer, index int32) unsafe.Pointer
	spToplistbrowseNumAlbums  func(tb unsafe.Pointer) int32
	spToplistbrowseAlbum      func(tb unsafe.Pointer, index int32) unsafe.Pointer
	spToplistbrowseNumTracks  func(tb unsafe.Pointer) int32
	spToplistbrowseTrack      func(tb unsafe.Pointer, index int32) unsafe.Pointer
)

func registerBrowse(lib uintptr) {
	purego.RegisterLibFunc(&spSearchCreate, lib, "sp_search_create")
	// Removed from libspotify in API 11. RegisterLibFunc panics on a
	// missing symbol, so only bind it when an old library exports it.
	if sym, _ := purego.Dlsym(lib, "sp_radio_search_create"); sym != 0 {
		purego.RegisterLibFunc(&spRadioSearchCreate, lib, "sp_radio_search_create")
	}
	purego.RegisterLibFunc(&spSearchAddRef, lib, "sp_search_add_ref")
	purego.RegisterLibFunc(&spSearchRelease, lib, "sp_search_release")
	purego.RegisterLibFunc(&spSearchIsLoaded, lib, "sp_search_is_loaded")
	purego.RegisterLibFunc(&spSearchError, lib, "sp_search_error")
	purego.RegisterLibFunc(&spSearchQuery, lib, "sp_search_query")
	purego.RegisterLibFunc(&spSearchDidYouMean, lib, "sp_search_did_you_mean")
	purego.RegisterLibFunc(&spSearchNumTracks, lib, "sp_search_num_tracks")
	purego.RegisterLibFunc(&spSearchTrack, lib, "sp_search_track")
	purego.RegisterLibFunc(&spSearchNumAlbums, lib, "sp_search_num_albums")
	purego.RegisterLibFunc(&spSearchAlbum, lib, "sp_search_album")
	purego.RegisterLibFunc(&spSearchNumArtists, lib, "sp_search_num_artists")
	purego.RegisterLibFunc(&spSearchArtist, lib, "sp_search_artist")
	purego.RegisterLibFunc(&spSearchTotalTracks, lib, "sp_search_total_tracks")
	purego.RegisterLibFunc(&spSearchTotalAlbums, lib, "sp_search_total_albums")
	purego.RegisterLibFunc(&spSearchTotalArtists, lib, "sp_search_total_artists")

	purego.RegisterLibFunc(&spAlbumbrowseCreate, lib, "sp_albumbrowse_create")
	purego.RegisterLibFunc(&spAlbumbrowseAddRef, lib, "sp_albumbrowse_add_ref")
	purego.RegisterLibFunc(&spAlbumbrowseRelease, lib, "sp_albumbrowse_release")
	purego.RegisterLibFunc(&spAlbumbrowseIsLoaded, lib, "sp_albumbrowse_is_loaded")
	purego.RegisterLibFunc(&spAlbumbrowseError, lib, "sp_albumbrowse_error")
	purego.RegisterLibFunc(&spAlbumbrowseAlbum, lib, "sp_albumbrowse_album")
	purego.RegisterLibFunc(&spAlbumbrowseArtist, lib, "sp_albumbrowse_artist")
	purego.RegisterLibFunc(&spAlbumbrowseNumCopyrights, lib, "sp_albumbrowse_num_copyrights")
	purego.RegisterLibFunc(&spAlbumbrowseCopyright, lib, "sp_albumbrowse_copyright")
	purego.RegisterLibFunc(&spAlbumbrowseNumTracks, lib, "sp_albumbrowse_num_tracks")
	purego.RegisterLibFunc(&spAlbumbrowseTrack, lib, "sp_albumbrowse_track")
	purego.RegisterLibFunc(&spAlbumbrowseReview, lib, "sp_albumbrowse_review")

	purego.RegisterLibFunc(&spArtistbrowseCreate, lib, "sp_artistbrowse_create")
	purego.RegisterLibFunc(&spArtistbrowseAddRef, lib, "sp_artistbrowse_add_ref")
	purego.RegisterLibFunc(&spArtistbrowseRelease, lib, "sp_artistbrowse_release")
	purego.RegisterLibFunc(&spArtistbrowseIsLoaded, lib, "sp_artistbrowse_is_loaded")
	purego.RegisterLibFunc(&spArtistbrowseError, lib, "sp_artistbrowse_error")
	purego.RegisterLibFunc(&spArtistbrowseArtist, lib, "sp_artistbrowse_artist")
	purego.RegisterLibFunc(&spArtistbrowseNumPortraits, lib, "sp_artistbrowse_num_portraits")
	purego.RegisterLibFunc(&spArtistbrowsePortrait, lib, "sp_artistbrowse_portrait")
	purego.RegisterLibFunc(&spArtistbrowseNumTracks, lib, "sp_artistbrowse_num_tracks")
	purego.RegisterLibFunc(&spArtistbrowseTrack, lib, "sp_artistbrowse_track")
	purego.RegisterLibFunc(&spArtistbrowseNumAlbums, lib, "sp_artistbrowse_num_albums")
	purego.RegisterLibFunc(&spArtistbrowseAlbum, lib, "sp_artistbrowse_album")
	purego.RegisterLibFunc(&spArtistbrowseNumSimilarArtists, lib, "sp_artistbrowse_num_similar_artists")
	purego.RegisterLibFunc(&spArtistbrowseSimilarArtist, lib, "sp_artistbrowse_similar_artist")
	purego.RegisterLibFunc(&spArtistbrowseBiography, lib, "sp_artistbrowse_biography")

	purego.RegisterLibFunc(&spToplistbrowseCreate, lib, "sp_toplistbrowse_create")
	purego.RegisterLibFunc(&spToplistbrowseAddRef, lib, "sp_toplistbrowse_add_ref")
	purego.RegisterLibFunc(&spToplistbrowseRelease, lib, "sp_toplistbrowse_release")
	purego.RegisterLibFunc(&spToplistbrowseIsLoaded, lib, "sp_toplistbrowse_is_loaded")
	purego.RegisterLibFunc(&spToplistbrowseError, lib, "sp_toplistbrowse_error")
	purego.RegisterLibFunc(&spToplistbrowseNumArtists, lib, "sp_toplistbrowse_num_artists")
	purego.RegisterLibFunc(&spToplistbrowseArtist, lib, "sp_toplistbrowse_artist")
	purego.RegisterLibFunc(&spToplistbrowseNumAlbums, lib, "sp_toplistbrowse_num_albums")
	purego.RegisterLibFunc(&spToplistbrowseAlbum, lib, "sp_toplistbrowse_album")
	purego.RegisterLibFunc(&spToplistbrowseNumTracks, lib, "sp_toplistbrowse_num_tracks")
	purego.RegisterLibFunc(&spToplistbrowseTrack, lib, "sp_toplistbrowse_track")
}

// SearchQuery describes the windows of a search request. The zero Type is
// a standard search.
type SearchQuery struct {
	Query          string
	TrackOffset    int
	TrackCount     int
	AlbumOffset    int
	AlbumCount     int
	ArtistOffset   int
	ArtistCount    int
	PlaylistOffset int
	PlaylistCount  int
	Type           SearchType
}

// SearchCreate issues an asynchronous search. The returned reference is
// owned by the caller and exists immediately; results populate once
// callback fires with userdata.
func SearchCreate(sess Session, q SearchQuery, callback uintptr, userdata unsafe.Pointer) Search {
	if spSearchCreate == nil {
		return nil
	}
	return spSearchCreate(sess, q.Query,
		int32(q.TrackOffset), int32(q.TrackCount),
		int32(q.AlbumOffset), int32(q.AlbumCount),
		int32(q.ArtistOffset), int32(q.ArtistCount),
		int32(q.PlaylistOffset), int32(q.PlaylistCount),
		int32(q.Type),
		callback, userdata)
}

// RadioSearchSupported reports whether the loaded library exports
// sp_radio_search_create. Always false from API 11 on.
func RadioSearchSupported() bool {
	return spRadioSearchCreate != nil
}

// RadioSearchCreate issues an asynchronous radio search over a year range
// and genre mask. The returned reference is owned by the caller. Nil when
// the library does not provide radio search.
func RadioSearchCreate(sess Session, fromYear, toYear int, genres RadioGenre, callback uintptr, userdata unsafe.Pointer) Search {
	if spRadioSearchCreate == nil {
		return nil
	}
	return spRadioSearchCreate(sess, int32(fromYear), int32(toYear), int32(genres), callback, userdata)
}

// SearchAddRef increments the search's native refcount.
func SearchAddRef(search Search) {
	if search == nil || spSearchAddRef == nil {
		return
	}
	spSearchAddRef(search)
}

// SearchRelease decrements the search's native refcount.
func SearchRelease(search Search) {
	if search == nil || spSearchRelease == nil {
		return
	}
	spSearchRelease(search)
}

// SearchIsLoaded reports whether the search has completed.
func SearchIsLoaded(search Search) bool {
	if search == nil || spSearchIsLoaded == nil {
		return false
	}
	return spSearchIsLoaded(search)
}

// SearchError returns the search's completion status.
func SearchError(search Search) ErrorCode {
	if search == nil || spSearchError == nil {
		return ErrOK
	}
	return ErrorCode(spSearchError(search))
}

// SearchQueryString returns the query the search was created with.
func SearchQueryString(search Search) string {
	if search == nil || spSearchQuery == nil {
		return ""
	}
	return spSearchQuery(search)
}

// SearchDidYouMean returns the server's spelling suggestion, or "".
func SearchDidYouMean(search Search) string {
	if search == nil || spSearchDidYouMean == nil {
		return ""
	}
	return spSearchDidYouMean(search)
}

// SearchNumTracks returns the number of tracks in this result page.
func SearchNumTracks(search Search) int {
	if search == nil || spSearchNumTracks == nil {
		return 0
	}
	return int(spSearchNumTracks(search))
}

// SearchTrack returns the track at index. The caller owns no reference;
// add-ref before wrapping.
func SearchTrack(search Search, index int) Track {
	if search == nil || spSearchTrack == nil {
		return nil
	}
	return spSearchTrack(search, int32(index))
}

// SearchNumAlbums returns the number of albums in this result page.
func SearchNumAlbums(search Search) int {
	if search == nil || spSearchNumAlbums == nil {
		return 0
	}
	return int(spSearchNumAlbums(search))
}

// SearchAlbum returns the album at index. The caller owns no reference;
// add-ref before wrapping.
func SearchAlbum(search Search, index int) Album {
	if search == nil || spSearchAlbum == nil {
		return nil
	}
	return spSearchAlbum(search, int32(index))
}

// SearchNumArtists returns the number of artists in this result page.
func SearchNumArtists(search Search) int {
	if search == nil || spSearchNumArtists == nil {
		return 0
	}
	return int(spSearchNumArtists(search))
}

// SearchArtist returns the artist at index. The caller owns no reference;
// add-ref before wrapping.
func SearchArtist(search Search, index int) Artist {
	if search == nil || spSearchArtist == nil {
		return nil
	}
	return spSearchArtist(search, int32(index))
}

// SearchTotalTracks returns the total number of matching tracks, which may
// exceed the requested page.
func SearchTotalTracks(search Search) int {
	if search == nil || spSearchTotalTracks == nil {
		return 0
	}
	return int(spSearchTotalTracks(search))
}

// SearchTotalAlbums returns the total number of matching albums.
func SearchTotalAlbums(search Search) int {
	if search == nil || spSearchTotalAlbums == nil {
		return 0
	}
	return int(spSearchTotalAlbums(search))
}

// SearchTotalArtists returns the total number of matching artists.
func SearchTotalArtists(search Search) int {
	if search == nil || spSearchTotalArtists == nil {
		return 0
	}
	return int(spSearchTotalArtists(search))
}

// AlbumBrowseCreate issues an asynchronous browse of an album. The
// returned reference is owned by the caller.
func AlbumBrowseCreate(sess Session, album Album, callback uintptr, userdata unsafe.Pointer) AlbumBrowse {
	if spAlbumbrowseCreate == nil {
		return nil
	}
	return spAlbumbrowseCreate(sess, album, callback, userdata)
}

// AlbumBrowseAddRef increments the browse result's native refcount.
func AlbumBrowseAddRef(ab AlbumBrowse) {
	if ab == nil || spAlbumbrowseAddRef == nil {
		return
	}
	spAlbumbrowseAddRef(ab)
}

// AlbumBrowseRelease decrements the browse result's native refcount.
func AlbumBrowseRelease(ab AlbumBrowse) {
	if ab == nil || spAlbumbrowseRelease == nil {
		return
	}
	spAlbumbrowseRelease(ab)
}

// AlbumBrowseIsLoaded reports whether the browse has completed.
func AlbumBrowseIsLoaded(ab AlbumBrowse) bool {
	if ab == nil || spAlbumbrowseIsLoaded == nil {
		return false
	}
	return spAlbumbrowseIsLoaded(ab)
}

// AlbumBrowseError returns the browse's completion status.
func AlbumBrowseError(ab AlbumBrowse) ErrorCode {
	if ab == nil || spAlbumbrowseError == nil {
		return ErrOK
	}
	return ErrorCode(spAlbumbrowseError(ab))
}

// AlbumBrowseAlbum returns the browsed album. The caller owns no
// reference; add-ref before wrapping.
func AlbumBrowseAlbum(ab AlbumBrowse) Album {
	if ab == nil || spAlbumbrowseAlbum == nil {
		return nil
	}
	return spAlbumbrowseAlbum(ab)
}

// AlbumBrowseArtist returns the album's artist. The caller owns no
// reference; add-ref before wrapping.
func AlbumBrowseArtist(ab AlbumBrowse) Artist {
	if ab == nil || spAlbumbrowseArtist == nil {
		return nil
	}
	return spAlbumbrowseArtist(ab)
}

// AlbumBrowseNumCopyrights returns the number of copyright strings.
func AlbumBrowseNumCopyrights(ab AlbumBrowse) int {
	if ab == nil || spAlbumbrowseNumCopyrights == nil {
		return 0
	}
	return int(spAlbumbrowseNumCopyrights(ab))
}

// AlbumBrowseCopyright returns the copyright string at index.
func AlbumBrowseCopyright(ab AlbumBrowse, index int) string {
	if ab == nil || spAlbumbrowseCopyright == nil {
		return ""
	}
	return spAlbumbrowseCopyright(ab, int32(index))
}

// AlbumBrowseNumTracks returns the number of tracks on the album.
func AlbumBrowseNumTracks(ab AlbumBrowse) int {
	if ab == nil || spAlbumbrowseNumTracks == nil {
		return 0
	}
	return int(spAlbumbrowseNumTracks(ab))
}

// AlbumBrowseTrack returns the track at index. The caller owns no
// reference; add-ref before wrapping.
func AlbumBrowseTrack(ab AlbumBrowse, index int) Track {
	if ab == nil || spAlbumbrowseTrack == nil {
		return nil
	}
	return spAlbumbrowseTrack(ab, int32(index))
}

// AlbumBrowseReview returns the album review text, or "".
func AlbumBrowseReview(ab AlbumBrowse) string {
	if ab == nil || spAlbumbrowseReview == nil {
		return ""
	}
	return spAlbumbrowseReview(ab)
}

// ArtistBrowseCreate issues an asynchronous browse of an artist. The
// returned reference is owned by the caller.
func ArtistBrowseCreate(sess Session, artist Artist, browseType ArtistBrowseType, callback uintptr, userdata unsafe.Pointer) ArtistBrowse {
	if spArtistbrowseCreate == nil {
		return nil
	}
	return spArtistbrowseCreate(sess, artist, int32(browseType), callback, userdata)
}

// ArtistBrowseAddRef increments the browse result's native refcount.
func ArtistBrowseAddRef(ab ArtistBrowse) {
	if ab == nil || spArtistbrowseAddRef == nil {
		return
	}
	spArtistbrowseAddRef(ab)
}

// ArtistBrowseRelease decrements the browse result's native refcount.
func ArtistBrowseRelease(ab ArtistBrowse) {
	if ab == nil || spArtistbrowseRelease == nil {
		return
	}
	spArtistbrowseRelease(ab)
}

// ArtistBrowseIsLoaded reports whether the browse has completed.
func ArtistBrowseIsLoaded(ab ArtistBrowse) bool {
	if ab == nil || spArtistbrowseIsLoaded == nil {
		return false
	}
	return spArtistbrowseIsLoaded(ab)
}

// ArtistBrowseError returns the browse's completion status.
func ArtistBrowseError(ab ArtistBrowse) ErrorCode {
	if ab == nil || spArtistbrowseError == nil {
		return ErrOK
	}
	return ErrorCode(spArtistbrowseError(ab))
}

// ArtistBrowseArtist returns the browsed artist. The caller owns no
// reference; add-ref before wrapping.
func ArtistBrowseArtist(ab ArtistBrowse) Artist {
	if ab == nil || spArtistbrowseArtist == nil {
		return nil
	}
	return spArtistbrowseArtist(ab)
}

// ArtistBrowseNumPortraits returns the number of portrait images.
func ArtistBrowseNumPortraits(ab ArtistBrowse) int {
	if ab == nil || spArtistbrowseNumPortraits == nil {
		return 0
	}
	return int(spArtistbrowseNumPortraits(ab))
}

// ArtistBrowsePortrait returns the image id (ImageIDSize bytes) of the
// portrait at index. The returned slice is a copy.
func ArtistBrowsePortrait(ab ArtistBrowse, index int) []byte {
	if ab == nil || spArtistbrowsePortrait == nil {
		return nil
	}
	p := spArtistbrowsePortrait(ab, int32(index))
	if p == nil {
		return nil
	}
	id := make([]byte, ImageIDSize)
	copy(id, unsafe.Slice((*byte)(p), ImageIDSize))
	return id
}

// ArtistBrowseNumTracks returns the number of tracks in the browse result.
func ArtistBrowseNumTracks(ab ArtistBrowse) int {
	if ab == nil || spArtistbrowseNumTracks == nil {
		return 0
	}
	return int(spArtistbrowseNumTracks(ab))
}

// ArtistBrowseTrack returns the track at index. The caller owns no
// reference; add-ref before wrapping.
func ArtistBrowseTrack(ab ArtistBrowse, index int) Track {
	if ab == nil || spArtistbrowseTrack == nil {
		return nil
	}
	return spArtistbrowseTrack(ab, int32(index))
}

// ArtistBrowseNumAlbums returns the number of albums in the browse result.
func ArtistBrowseNumAlbums(ab ArtistBrowse) int {
	if ab == nil || spArtistbrowseNumAlbums == nil {
		return 0
	}
	return int(spArtistbrowseNumAlbums(ab))
}

// ArtistBrowseAlbum returns the album at index. The caller owns no
// reference; add-ref before wrapping.
func ArtistBrowseAlbum(ab ArtistBrowse, index int) Album {
	if ab == nil || spArtistbrowseAlbum == nil {
		return nil
	}
	return spArtistbrowseAlbum(ab, int32(index))
}

// ArtistBrowseNumSimilarArtists returns the number of similar artists.
func ArtistBrowseNumSimilarArtists(ab ArtistBrowse) int {
	if ab == nil || spArtistbrowseNumSimilarArtists == nil {
		return 0
	}
	return int(spArtistbrowseNumSimilarArtists(ab))
}

// ArtistBrowseSimilarArtist returns the similar artist at index. The
// caller owns no reference; add-ref before wrapping.
func ArtistBrowseSimilarArtist(ab ArtistBrowse, index int) Artist {
	if ab == nil || spArtistbrowseSimilarArtist == nil {
		return nil
	}
	return spArtistbrowseSimilarArtist(ab, int32(index))
}

// ArtistBrowseBiography returns the artist biography text, or "".
func ArtistBrowseBiography(ab ArtistBrowse) string {
	if ab == nil || spArtistbrowseBiography == nil {
		return ""
	}
	return spArtistbrowseBiography(ab)
}

// ToplistBrowseCreate issues an asynchronous toplist request. username is
// only used with ToplistRegionUser; empty means the logged-in user. The
// returned reference is owned by the caller.
func ToplistBrowseCreate(sess Session, listType ToplistType, region ToplistRegion, username string, callback uintptr, userdata unsafe.Pointer) ToplistBrowse {
	if spToplistbrowseCreate == nil {
		return nil
	}
	var name *byte
	if username != "" {
		buf := append([]byte(username), 0)
		name = &buf[0]
	}
	return spToplistbrowseCreate(sess, int32(listType), int32(region), name, callback, userdata)
}

// ToplistBrowseAddRef increments the browse result's native refcount.
func ToplistBrowseAddRef(tb ToplistBrowse) {
	if tb == nil || spToplistbrowseAddRef == nil {
		return
	}
	spToplistbrowseAddRef(tb)
}

// ToplistBrowseRelease decrements the browse result's native refcount.
func ToplistBrowseRelease(tb ToplistBrowse) {
	if tb == nil || spToplistbrowseRelease == nil {
		return
	}
	spToplistbrowseRelease(tb)
}

// ToplistBrowseIsLoaded reports whether the browse has completed.
func ToplistBrowseIsLoaded(tb ToplistBrowse) bool {
	if tb == nil || spToplistbrowseIsLoaded == nil {
		return false
	}
	return spToplistbrowseIsLoaded(tb)
}

// ToplistBrowseError returns the browse's completion status.
func ToplistBrowseError(tb ToplistBrowse) ErrorCode {
	if tb == nil || spToplistbrowseError == nil {
		return ErrOK
	}
	return ErrorCode(spToplistbrowseError(tb))
}

// ToplistBrowseNumArtists returns the number of artists in the toplist.
func ToplistBrowseNumArtists(tb ToplistBrowse) int {
	if tb == nil || spToplistbrowseNumArtists == nil {
		return 0
	}
	return int(spToplistbrowseNumArtists(tb))
}

// ToplistBrowseArtist returns the artist at index. The caller owns no
// reference; add-ref before wrapping.
func ToplistBrowseArtist(tb ToplistBrowse, index int) Artist {
	if tb == nil || spToplistbrowseArtist == nil {
		return nil
	}
	return spToplistbrowseArtist(tb, int32(index))
}

// ToplistBrowseNumAlbums returns the number of albums in the toplist.
func ToplistBrowseNumAlbums(tb ToplistBrowse) int {
	if tb == nil || spToplistbrowseNumAlbums == nil {
		return 0
	}
	return int(spToplistbrowseNumAlbums(tb))
}

// ToplistBrowseAlbum returns the album at index. The caller owns no
// reference; add-ref before wrapping.
func ToplistBrowseAlbum(tb ToplistBrowse, index int) Album {
	if tb == nil || spToplistbrowseAlbum == nil {
		return nil
	}
	return spToplistbrowseAlbum(tb, int32(index))
}

// ToplistBrowseNumTracks returns the number of tracks in the toplist.
func ToplistBrowseNumTracks(tb ToplistBrowse) int {
	if tb == nil || spToplistbrowseNumTracks == nil {
		return 0
	}
	return int(spToplistbrowseNumTracks(tb))
}

// ToplistBrowseTrack returns the track at index. The caller owns no
// reference; add-ref before wrapping.
func ToplistBrowseTrack(tb ToplistBrowse, index int) Track {
	if tb == nil || spToplistbrowseTrack == nil {
		return nil
	}
	return spToplistbrowseTrack(tb, int32(index))
}

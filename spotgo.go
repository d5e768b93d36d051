//go:build !ios && !android && (amd64 || arm64)

// Package spotgo provides pure Go bindings for libspotify, the native
// Spotify client library, using purego for dynamic library loading.
// No cgo is required.
//
// Basic usage:
//
//	if err := spotgo.Init(); err != nil {
//		log.Fatal(err)
//	}
//	session, err := spotgo.SessionCreate(spotgo.Config{
//		ApplicationKey: appKey,
//		UserAgent:      "my-player",
//		Callbacks:      &spotgo.SessionCallbacks{...},
//	})
//
// libspotify delivers events on its own internal threads. Every callback
// in SessionCallbacks crosses that boundary through a trampoline that
// recovers panics and resolves the owning *Session, so callback funcs run
// ordinary Go code but must not assume they run on any particular
// goroutine.
//
// Objects returned by the binding (tracks, albums, searches, ...) wrap
// reference-counted native pointers. Each wrapper owns one native
// reference, dropped by its Release method or by its finalizer, whichever
// runs first. Using a wrapper after Release fails with *NullHandleError.
package spotgo

import (
	"github.com/obinnaokechukwu/spotgo/internal/bindings"
	"github.com/obinnaokechukwu/spotgo/sp"
)

// APIVersion is the libspotify API version these bindings target.
const APIVersion = sp.APIVersion

// Init loads the libspotify shared library and resolves all bound
// symbols. It is safe to call multiple times; only the first call does
// work. SessionCreate calls it implicitly.
func Init() error {
	return bindings.Load()
}

// IsLoaded reports whether the libspotify shared library has been
// successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// BuildID returns the libspotify build identifier string, or "" when the
// library is not loaded.
func BuildID() string {
	return bindings.BuildID()
}

// Connection states reported by ConnectionState.
type ConnectionState = sp.ConnectionState

const (
	ConnectionStateLoggedOut    = sp.ConnectionStateLoggedOut
	ConnectionStateLoggedIn     = sp.ConnectionStateLoggedIn
	ConnectionStateDisconnected = sp.ConnectionStateDisconnected
	ConnectionStateUndefined    = sp.ConnectionStateUndefined
	ConnectionStateOffline      = sp.ConnectionStateOffline
)

// ConnectionType describes the network link, for offline sync policy.
type ConnectionType = sp.ConnectionType

const (
	ConnectionTypeUnknown       = sp.ConnectionTypeUnknown
	ConnectionTypeNone          = sp.ConnectionTypeNone
	ConnectionTypeMobile        = sp.ConnectionTypeMobile
	ConnectionTypeMobileRoaming = sp.ConnectionTypeMobileRoaming
	ConnectionTypeWifi          = sp.ConnectionTypeWifi
	ConnectionTypeWired         = sp.ConnectionTypeWired
)

// ConnectionRules control when the client may use the network.
type ConnectionRules = sp.ConnectionRules

const (
	ConnectionRuleNetwork          = sp.ConnectionRuleNetwork
	ConnectionRuleNetworkIfRoaming = sp.ConnectionRuleNetworkIfRoaming
	ConnectionRuleAllowSyncMobile  = sp.ConnectionRuleAllowSyncMobile
	ConnectionRuleAllowSyncWifi    = sp.ConnectionRuleAllowSyncWifi
)

// Bitrate selects streaming quality.
type Bitrate = sp.Bitrate

const (
	Bitrate160k = sp.Bitrate160k
	Bitrate320k = sp.Bitrate320k
	Bitrate96k  = sp.Bitrate96k
)

// SampleType identifies the PCM encoding of delivered audio.
type SampleType = sp.SampleType

const SampleTypeInt16NativeEndian = sp.SampleTypeInt16NativeEndian

// LinkType identifies what a Spotify URI points at.
type LinkType = sp.LinkType

const (
	LinkTypeInvalid    = sp.LinkTypeInvalid
	LinkTypeTrack      = sp.LinkTypeTrack
	LinkTypeAlbum      = sp.LinkTypeAlbum
	LinkTypeArtist     = sp.LinkTypeArtist
	LinkTypeSearch     = sp.LinkTypeSearch
	LinkTypePlaylist   = sp.LinkTypePlaylist
	LinkTypeProfile    = sp.LinkTypeProfile
	LinkTypeStarred    = sp.LinkTypeStarred
	LinkTypeLocaltrack = sp.LinkTypeLocaltrack
	LinkTypeImage      = sp.LinkTypeImage
)

// AlbumType distinguishes regular albums from singles and compilations.
type AlbumType = sp.AlbumType

const (
	AlbumTypeAlbum       = sp.AlbumTypeAlbum
	AlbumTypeSingle      = sp.AlbumTypeSingle
	AlbumTypeCompilation = sp.AlbumTypeCompilation
	AlbumTypeUnknown     = sp.AlbumTypeUnknown
)

// ImageFormat identifies the encoding of image data.
type ImageFormat = sp.ImageFormat

const (
	ImageFormatUnknown = sp.ImageFormatUnknown
	ImageFormatJPEG    = sp.ImageFormatJPEG
)

// ImageIDSize is the byte length of a raw image identifier.
const ImageIDSize = sp.ImageIDSize

// ImageSize selects which rendition of a cover or portrait to fetch.
type ImageSize = sp.ImageSize

const (
	ImageSizeNormal = sp.ImageSizeNormal
	ImageSizeSmall  = sp.ImageSizeSmall
	ImageSizeLarge  = sp.ImageSizeLarge
)

// SearchType selects between a standard search and a typeahead suggest
// search.
type SearchType = sp.SearchType

const (
	SearchTypeStandard = sp.SearchTypeStandard
	SearchTypeSuggest  = sp.SearchTypeSuggest
)

// ArtistBrowseType selects how much of an artist's detail view to load.
type ArtistBrowseType = sp.ArtistBrowseType

const (
	ArtistBrowseFull     = sp.ArtistBrowseFull
	ArtistBrowseNoTracks = sp.ArtistBrowseNoTracks
	ArtistBrowseNoAlbums = sp.ArtistBrowseNoAlbums
)

// ToplistType selects what a toplist ranks.
type ToplistType = sp.ToplistType

const (
	ToplistTypeArtists = sp.ToplistTypeArtists
	ToplistTypeAlbums  = sp.ToplistTypeAlbums
	ToplistTypeTracks  = sp.ToplistTypeTracks
)

// ToplistRegion selects whose charts a toplist reflects. Use
// RegionCountry for a specific country.
type ToplistRegion = sp.ToplistRegion

const (
	ToplistRegionEverywhere = sp.ToplistRegionEverywhere
	ToplistRegionUser       = sp.ToplistRegionUser
)

// RegionCountry returns the toplist region for a two-letter ISO 3166-1
// country code such as "SE".
func RegionCountry(code string) ToplistRegion {
	return sp.RegionCountry(code)
}

// RadioGenre is a bitmask of genres for radio searches.
type RadioGenre = sp.RadioGenre

// Country is a packed two-letter ISO 3166-1 country code.
type Country = sp.Country

// SearchQuery carries the query string and result windows for a search.
type SearchQuery = sp.SearchQuery

// OfflineSyncStatus is a snapshot of offline synchronization progress.
type OfflineSyncStatus = sp.OfflineSyncStatus

//go:build !ios && !android && (amd64 || arm64)

package sp

// ConnectionState mirrors sp_connectionstate.
type ConnectionState int32

const (
	ConnectionStateLoggedOut    ConnectionState = 0 // Not logged in
	ConnectionStateLoggedIn     ConnectionState = 1 // Logged in with a working connection
	ConnectionStateDisconnected ConnectionState = 2 // Was logged in, lost the connection
	ConnectionStateUndefined    ConnectionState = 3 // Indeterminate
	ConnectionStateOffline      ConnectionState = 4 // Logged in, offline mode
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionStateLoggedOut:
		return "logged out"
	case ConnectionStateLoggedIn:
		return "logged in"
	case ConnectionStateDisconnected:
		return "disconnected"
	case ConnectionStateOffline:
		return "offline"
	default:
		return "undefined"
	}
}

// ConnectionType mirrors sp_connection_type, the caller's hint about the
// current network link (drives offline sync policy inside the library).
type ConnectionType int32

const (
	ConnectionTypeUnknown       ConnectionType = 0
	ConnectionTypeNone          ConnectionType = 1
	ConnectionTypeMobile        ConnectionType = 2
	ConnectionTypeMobileRoaming ConnectionType = 3
	ConnectionTypeWifi          ConnectionType = 4
	ConnectionTypeWired         ConnectionType = 5
)

// ConnectionRules mirrors sp_connection_rules (a bitmask).
type ConnectionRules int32

const (
	ConnectionRuleNetwork          ConnectionRules = 0x1
	ConnectionRuleNetworkIfRoaming ConnectionRules = 0x2
	ConnectionRuleAllowSyncMobile  ConnectionRules = 0x4
	ConnectionRuleAllowSyncWifi    ConnectionRules = 0x8
)

// Bitrate mirrors sp_bitrate.
type Bitrate int32

const (
	Bitrate160k Bitrate = 0
	Bitrate320k Bitrate = 1
	Bitrate96k  Bitrate = 2
)

// SampleType mirrors sp_sampletype. Int16NativeEndian is the only value
// current libspotify releases deliver.
type SampleType int32

const (
	SampleTypeInt16NativeEndian SampleType = 0
)

// LinkType mirrors sp_linktype.
type LinkType int32

const (
	LinkTypeInvalid    LinkType = 0
	LinkTypeTrack      LinkType = 1
	LinkTypeAlbum      LinkType = 2
	LinkTypeArtist     LinkType = 3
	LinkTypeSearch     LinkType = 4
	LinkTypePlaylist   LinkType = 5
	LinkTypeProfile    LinkType = 6
	LinkTypeStarred    LinkType = 7
	LinkTypeLocaltrack LinkType = 8
	LinkTypeImage      LinkType = 9
)

// AlbumType mirrors sp_albumtype.
type AlbumType int32

const (
	AlbumTypeAlbum       AlbumType = 0
	AlbumTypeSingle      AlbumType = 1
	AlbumTypeCompilation AlbumType = 2
	AlbumTypeUnknown     AlbumType = 3
)

// ImageFormat mirrors sp_imageformat.
type ImageFormat int32

const (
	ImageFormatUnknown ImageFormat = -1
	ImageFormatJPEG    ImageFormat = 0
)

// ImageIDSize is the byte length of a libspotify image id.
const ImageIDSize = 20

// ImageSize mirrors sp_image_size.
type ImageSize int32

const (
	ImageSizeNormal ImageSize = 0
	ImageSizeSmall  ImageSize = 1
	ImageSizeLarge  ImageSize = 2
)

// ToplistType mirrors sp_toplisttype.
type ToplistType int32

const (
	ToplistTypeArtists ToplistType = 0
	ToplistTypeAlbums  ToplistType = 1
	ToplistTypeTracks  ToplistType = 2
)

// ToplistRegion mirrors sp_toplistregion. Country regions are encoded as
// two packed uppercase ASCII letters; use RegionCountry to build them.
type ToplistRegion int32

const (
	ToplistRegionEverywhere ToplistRegion = 0
	ToplistRegionUser       ToplistRegion = 1
)

// RegionCountry packs an ISO 3166-1 country code ("SE", "DE", ...) into a
// toplist region value.
func RegionCountry(code string) ToplistRegion {
	if len(code) != 2 {
		return ToplistRegionEverywhere
	}
	return ToplistRegion(int32(code[0])<<8 | int32(code[1]))
}

// SearchType mirrors sp_search_type. Suggest searches feed typeahead
// completion and return faster, partial results.
type SearchType int32

const (
	SearchTypeStandard SearchType = 0
	SearchTypeSuggest  SearchType = 1
)

// ArtistBrowseType mirrors sp_artistbrowse_type. The reduced forms skip
// the track or album lists and load much faster.
type ArtistBrowseType int32

const (
	ArtistBrowseFull     ArtistBrowseType = 0
	ArtistBrowseNoTracks ArtistBrowseType = 1
	ArtistBrowseNoAlbums ArtistBrowseType = 2
)

// RadioGenre mirrors sp_radio_genre (a bitmask).
type RadioGenre int32

const (
	RadioGenreAltMusic   RadioGenre = 0x1
	RadioGenreBlues      RadioGenre = 0x2
	RadioGenreCountry    RadioGenre = 0x4
	RadioGenreDance      RadioGenre = 0x8
	RadioGenreFunk       RadioGenre = 0x10
	RadioGenreHardRock   RadioGenre = 0x20
	RadioGenreHeavyMetal RadioGenre = 0x40
	RadioGenreRap        RadioGenre = 0x80
	RadioGenreHouse      RadioGenre = 0x100
	RadioGenreJazz       RadioGenre = 0x200
	RadioGenreNewWave    RadioGenre = 0x400
	RadioGenreRnB        RadioGenre = 0x800
	RadioGenrePop        RadioGenre = 0x1000
	RadioGenrePunk       RadioGenre = 0x2000
	RadioGenreReggae     RadioGenre = 0x4000
	RadioGenrePopRock    RadioGenre = 0x8000
	RadioGenreSoul       RadioGenre = 0x10000
	RadioGenreTechno     RadioGenre = 0x20000
)

// Country is a two-letter country code packed into an int the way
// sp_session_user_country returns it.
type Country int32

func (c Country) String() string {
	if c == 0 {
		return ""
	}
	return string([]byte{byte(c >> 8), byte(c)})
}

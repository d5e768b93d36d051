//go:build !ios && !android && (amd64 || arm64)

package sp

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Link and image bindings.
var (
	spLinkCreateFromString func(link string) unsafe.Pointer
	spLinkCreateFromTrack  func(track unsafe.Pointer, offsetMS int32) unsafe.Pointer
	spLinkCreateFromAlbum  func(album unsafe.Pointer) unsafe.Pointer
	spLinkCreateFromArtist func(artist unsafe.Pointer) unsafe.Pointer
	spLinkCreateFromSearch func(search unsafe.Pointer) unsafe.Pointer
	spLinkAsString         func(link unsafe.Pointer, buf *byte, bufSize int32) int32
	spLinkType             func(link unsafe.Pointer) int32
	spLinkAsTrack          func(link unsafe.Pointer) unsafe.Pointer
	spLinkAsAlbum          func(link unsafe.Pointer) unsafe.Pointer
	spLinkAsArtist         func(link unsafe.Pointer) unsafe.Pointer
	spLinkAddRef           func(link unsafe.Pointer)
	spLinkRelease          func(link unsafe.Pointer)

	spImageCreate         func(sess unsafe.Pointer, imageID *byte) unsafe.Pointer
	spImageCreateFromLink func(sess, link unsafe.Pointer) unsafe.Pointer
	spImageAddRef         func(image unsafe.Pointer)
	spImageRelease        func(image unsafe.Pointer)
	spImageIsLoaded       func(image unsafe.Pointer) bool
	spImageError          func(image unsafe.Pointer) int32
	spImageFormat         func(image unsafe.Pointer) int32
	spImageData           func(image unsafe.Pointer, dataSize *uintptr) unsafe.Pointer
	spImageImageID        func(image unsafe.Pointer) unsafe.Pointer
)

func registerLink(lib uintptr) {
	purego.RegisterLibFunc(&spLinkCreateFromString, lib, "sp_link_create_from_string")
	purego.RegisterLibFunc(&spLinkCreateFromTrack, lib, "sp_link_create_from_track")
	purego.RegisterLibFunc(&spLinkCreateFromAlbum, lib, "sp_link_create_from_album")
	purego.RegisterLibFunc(&spLinkCreateFromArtist, lib, "sp_link_create_from_artist")
	purego.RegisterLibFunc(&spLinkCreateFromSearch, lib, "sp_link_create_from_search")
	purego.RegisterLibFunc(&spLinkAsString, lib, "sp_link_as_string")
	purego.RegisterLibFunc(&spLinkType, lib, "sp_link_type")
	purego.RegisterLibFunc(&spLinkAsTrack, lib, "sp_link_as_track")
	purego.RegisterLibFunc(&spLinkAsAlbum, lib, "sp_link_as_album")
	purego.RegisterLibFunc(&spLinkAsArtist, lib, "sp_link_as_artist")
	purego.RegisterLibFunc(&spLinkAddRef, lib, "sp_link_add_ref")
	purego.RegisterLibFunc(&spLinkRelease, lib, "sp_link_release")

	purego.RegisterLibFunc(&spImageCreate, lib, "sp_image_create")
	purego.RegisterLibFunc(&spImageCreateFromLink, lib, "sp_image_create_from_link")
	purego.RegisterLibFunc(&spImageAddRef, lib, "sp_image_add_ref")
	purego.RegisterLibFunc(&spImageRelease, lib, "sp_image_release")
	purego.RegisterLibFunc(&spImageIsLoaded, lib, "sp_image_is_loaded")
	purego.RegisterLibFunc(&spImageError, lib, "sp_image_error")
	purego.RegisterLibFunc(&spImageFormat, lib, "sp_image_format")
	purego.RegisterLibFunc(&spImageData, lib, "sp_image_data")
	purego.RegisterLibFunc(&spImageImageID, lib, "sp_image_image_id")
}

// LinkCreateFromString parses a Spotify URI ("spotify:track:..."). Returns
// nil for unparsable URIs. The returned reference is owned by the caller.
func LinkCreateFromString(link string) Link {
	if spLinkCreateFromString == nil {
		return nil
	}
	return spLinkCreateFromString(link)
}

// LinkCreateFromTrack builds a link to a track with an optional start
// offset in milliseconds. The returned reference is owned by the caller.
func LinkCreateFromTrack(track Track, offsetMS int32) Link {
	if track == nil || spLinkCreateFromTrack == nil {
		return nil
	}
	return spLinkCreateFromTrack(track, offsetMS)
}

// LinkCreateFromAlbum builds a link to an album. The returned reference is
// owned by the caller.
func LinkCreateFromAlbum(album Album) Link {
	if album == nil || spLinkCreateFromAlbum == nil {
		return nil
	}
	return spLinkCreateFromAlbum(album)
}

// LinkCreateFromArtist builds a link to an artist. The returned reference
// is owned by the caller.
func LinkCreateFromArtist(artist Artist) Link {
	if artist == nil || spLinkCreateFromArtist == nil {
		return nil
	}
	return spLinkCreateFromArtist(artist)
}

// LinkCreateFromSearch builds a link reproducing a search. The returned
// reference is owned by the caller.
func LinkCreateFromSearch(search Search) Link {
	if search == nil || spLinkCreateFromSearch == nil {
		return nil
	}
	return spLinkCreateFromSearch(search)
}

// LinkAsString renders the link as a Spotify URI.
func LinkAsString(link Link) string {
	if link == nil || spLinkAsString == nil {
		return ""
	}
	n := spLinkAsString(link, nil, 0)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	spLinkAsString(link, &buf[0], int32(len(buf)))
	return string(buf[:n])
}

// LinkTypeOf returns what kind of object the link points at.
func LinkTypeOf(link Link) LinkType {
	if link == nil || spLinkType == nil {
		return LinkTypeInvalid
	}
	return LinkType(spLinkType(link))
}

// LinkAsTrack returns the track the link points at, or nil for non-track
// links. The caller owns no reference; add-ref before wrapping.
func LinkAsTrack(link Link) Track {
	if link == nil || spLinkAsTrack == nil {
		return nil
	}
	return spLinkAsTrack(link)
}

// LinkAsAlbum returns the album the link points at, or nil for non-album
// links. The caller owns no reference; add-ref before wrapping.
func LinkAsAlbum(link Link) Album {
	if link == nil || spLinkAsAlbum == nil {
		return nil
	}
	return spLinkAsAlbum(link)
}

// LinkAsArtist returns the artist the link points at, or nil for
// non-artist links. The caller owns no reference; add-ref before wrapping.
func LinkAsArtist(link Link) Artist {
	if link == nil || spLinkAsArtist == nil {
		return nil
	}
	return spLinkAsArtist(link)
}

// LinkAddRef increments the link's native refcount.
func LinkAddRef(link Link) {
	if link == nil || spLinkAddRef == nil {
		return
	}
	spLinkAddRef(link)
}

// LinkRelease decrements the link's native refcount.
func LinkRelease(link Link) {
	if link == nil || spLinkRelease == nil {
		return
	}
	spLinkRelease(link)
}

// ImageCreate starts fetching the image with the given id (ImageIDSize
// bytes). Fetching proceeds in the background; poll ImageIsLoaded. The
// returned reference is owned by the caller.
func ImageCreate(sess Session, imageID []byte) Image {
	if spImageCreate == nil || len(imageID) < ImageIDSize {
		return nil
	}
	return spImageCreate(sess, &imageID[0])
}

// ImageCreateFromLink starts fetching the image an image link points at.
// The returned reference is owned by the caller.
func ImageCreateFromLink(sess Session, link Link) Image {
	if link == nil || spImageCreateFromLink == nil {
		return nil
	}
	return spImageCreateFromLink(sess, link)
}

// ImageAddRef increments the image's native refcount.
func ImageAddRef(image Image) {
	if image == nil || spImageAddRef == nil {
		return
	}
	spImageAddRef(image)
}

// ImageRelease decrements the image's native refcount.
func ImageRelease(image Image) {
	if image == nil || spImageRelease == nil {
		return
	}
	spImageRelease(image)
}

// ImageIsLoaded reports whether the image data has arrived.
func ImageIsLoaded(image Image) bool {
	if image == nil || spImageIsLoaded == nil {
		return false
	}
	return spImageIsLoaded(image)
}

// ImageError returns the image's load status.
func ImageError(image Image) ErrorCode {
	if image == nil || spImageError == nil {
		return ErrOK
	}
	return ErrorCode(spImageError(image))
}

// ImageFormatOf returns the encoding of the image data.
func ImageFormatOf(image Image) ImageFormat {
	if image == nil || spImageFormat == nil {
		return ImageFormatUnknown
	}
	return ImageFormat(spImageFormat(image))
}

// ImageData returns a copy of the raw encoded image bytes, or nil while
// not loaded. Copying decouples the Go slice from the native buffer, which
// only stays valid while the image object is alive.
func ImageData(image Image) []byte {
	if image == nil || spImageData == nil {
		return nil
	}
	var size uintptr
	p := spImageData(image, &size)
	if p == nil || size == 0 {
		return nil
	}
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(p), size))
	return data
}

// ImageID returns the image's id (ImageIDSize bytes). The returned slice
// is a copy.
func ImageID(image Image) []byte {
	if image == nil || spImageImageID == nil {
		return nil
	}
	p := spImageImageID(image)
	if p == nil {
		return nil
	}
	id := make([]byte, ImageIDSize)
	copy(id, unsafe.Slice((*byte)(p), ImageIDSize))
	return id
}

//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"errors"
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/sp"
)

// Image wraps an sp_image: cover art or an artist portrait, loaded
// asynchronously like all metadata.
type Image struct {
	handle
}

func newImage(ptr unsafe.Pointer) *Image {
	i := &Image{}
	i.init(ptr, KindImage)
	runtime.SetFinalizer(i, (*Image).Release)
	return i
}

// ImageFromID starts loading the image with the given id, as obtained
// from Album.CoverID or ArtistBrowse.PortraitID. The id must be exactly
// ImageIDSize bytes.
func (sess *Session) ImageFromID(id []byte) (*Image, error) {
	if len(id) != ImageIDSize {
		return nil, errors.New("spotgo: image id must be 20 bytes")
	}
	var img *Image
	err := sess.withPointer(func(p unsafe.Pointer) error {
		img = newImage(sp.ImageCreate(p, id))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ImageFromLink starts loading the image a link points at. The result is
// a null handle when the link is not an image link.
func (sess *Session) ImageFromLink(l *Link) (*Image, error) {
	var img *Image
	err := sess.withPointer(func(p unsafe.Pointer) error {
		return l.withPointer(func(lp unsafe.Pointer) error {
			img = newImage(sp.ImageCreateFromLink(p, lp))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Release drops this wrapper's native reference. Idempotent.
func (i *Image) Release() {
	i.release(sp.ImageRelease)
}

// IsLoaded reports whether the image data has arrived.
func (i *Image) IsLoaded() (loaded bool, err error) {
	err = i.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.ImageIsLoaded(p)
		return nil
	})
	return
}

// LoadError returns the image's load status.
func (i *Image) LoadError() (code ErrorCode, err error) {
	err = i.withPointer(func(p unsafe.Pointer) error {
		code = sp.ImageError(p)
		return nil
	})
	return
}

// Format returns the image's encoding, or ImageFormatUnknown while not
// loaded.
func (i *Image) Format() (f ImageFormat, err error) {
	f = ImageFormatUnknown
	err = i.withPointer(func(p unsafe.Pointer) error {
		f = sp.ImageFormatOf(p)
		return nil
	})
	return
}

// Data returns a copy of the raw image bytes, or nil while not loaded.
func (i *Image) Data() (data []byte, err error) {
	err = i.withPointer(func(p unsafe.Pointer) error {
		data = sp.ImageData(p)
		return nil
	})
	return
}

// ID returns the image's id (ImageIDSize bytes).
func (i *Image) ID() (id []byte, err error) {
	err = i.withPointer(func(p unsafe.Pointer) error {
		id = sp.ImageID(p)
		return nil
	})
	return
}

//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/spotgo/sp"
)

// User wraps an sp_user.
type User struct {
	handle
}

func newUser(ptr unsafe.Pointer) *User {
	u := &User{}
	u.init(ptr, KindUser)
	runtime.SetFinalizer(u, (*User).Release)
	return u
}

// Release drops this wrapper's native reference. Idempotent.
func (u *User) Release() {
	u.release(sp.UserRelease)
}

// IsLoaded reports whether the user's metadata has arrived.
func (u *User) IsLoaded() (loaded bool, err error) {
	err = u.withPointer(func(p unsafe.Pointer) error {
		loaded = sp.UserIsLoaded(p)
		return nil
	})
	return
}

// CanonicalName returns the user's canonical (login) name.
func (u *User) CanonicalName() (name string, err error) {
	err = u.withPointer(func(p unsafe.Pointer) error {
		name = sp.UserCanonicalName(p)
		return nil
	})
	return
}

// DisplayName returns the user's display name, falling back to the
// canonical name when none is set.
func (u *User) DisplayName() (name string, err error) {
	err = u.withPointer(func(p unsafe.Pointer) error {
		name = sp.UserDisplayName(p)
		return nil
	})
	return
}

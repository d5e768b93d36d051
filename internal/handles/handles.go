// Package handles roots Go objects that native code references through
// opaque userdata pointers.
//
// libspotify keeps the void* userdata passed to sp_session_create,
// sp_search_create and the browse constructors, and hands it back later on
// one of its own threads. A Go pointer cannot be stored in native memory
// (the GC may move or collect the object), so the object is registered here
// and the returned uintptr token travels through the userdata slot instead.
// Registration also acts as a GC root: as long as a token is registered,
// the object it names cannot be collected out from under a pending native
// callback.
package handles

import (
	"sync"
)

var (
	mu      sync.RWMutex
	objects         = make(map[uintptr]any)
	nextTok uintptr = 1 // 0 is reserved so a zero userdata never resolves
)

// Register roots v and returns a token safe to store in native memory.
// v stays reachable until Unregister is called with the same token.
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	tok := nextTok
	nextTok++
	objects[tok] = v
	return tok
}

// Lookup resolves a token back to the registered object.
// Returns nil for tokens that were never registered or already unregistered,
// including the reserved zero token.
//
// Thread-safe.
func Lookup(tok uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return objects[tok]
}

// Unregister drops the root, allowing the object to be collected.
// Call only once native code can no longer present the token (after the
// completion callback has fired, or after the owning native object has been
// released). Unregistering an unknown token is a no-op.
//
// Thread-safe.
func Unregister(tok uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(objects, tok)
}

// Count returns the number of live roots.
// Useful in tests to verify that completed operations were unrooted.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(objects)
}

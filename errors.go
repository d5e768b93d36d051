//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"github.com/obinnaokechukwu/spotgo/internal/bindings"
	"github.com/obinnaokechukwu/spotgo/sp"
)

// Error is a libspotify error with its sp_error code and the operation
// that produced it.
type Error = sp.Error

// ErrorCode is a raw sp_error code.
type ErrorCode = sp.ErrorCode

// Re-exported sp_error codes. Callers compare against these after
// extracting the code with Code.
const (
	ErrOK                      = sp.ErrOK
	ErrBadAPIVersion           = sp.ErrBadAPIVersion
	ErrAPIInitializationFailed = sp.ErrAPIInitializationFailed
	ErrTrackNotPlayable        = sp.ErrTrackNotPlayable
	ErrBadApplicationKey       = sp.ErrBadApplicationKey
	ErrBadUsernameOrPassword   = sp.ErrBadUsernameOrPassword
	ErrUserBanned              = sp.ErrUserBanned
	ErrUnableToContactServer   = sp.ErrUnableToContactServer
	ErrClientTooOld            = sp.ErrClientTooOld
	ErrOtherPermanent          = sp.ErrOtherPermanent
	ErrBadUserAgent            = sp.ErrBadUserAgent
	ErrMissingCallback         = sp.ErrMissingCallback
	ErrInvalidIndata           = sp.ErrInvalidIndata
	ErrIndexOutOfRange         = sp.ErrIndexOutOfRange
	ErrUserNeedsPremium        = sp.ErrUserNeedsPremium
	ErrOtherTransient          = sp.ErrOtherTransient
	ErrIsLoading               = sp.ErrIsLoading
	ErrNoStreamAvailable       = sp.ErrNoStreamAvailable
	ErrPermissionDenied        = sp.ErrPermissionDenied
	ErrInboxIsFull             = sp.ErrInboxIsFull
	ErrNoCache                 = sp.ErrNoCache
	ErrNoSuchUser              = sp.ErrNoSuchUser
	ErrNoCredentials           = sp.ErrNoCredentials
	ErrNetworkDisabled         = sp.ErrNetworkDisabled
	ErrInvalidDeviceID         = sp.ErrInvalidDeviceID
	ErrCantOpenTraceFile       = sp.ErrCantOpenTraceFile
	ErrApplicationBanned       = sp.ErrApplicationBanned
	ErrOfflineTooManyTracks    = sp.ErrOfflineTooManyTracks
	ErrOfflineDiskCache        = sp.ErrOfflineDiskCache
	ErrOfflineExpired          = sp.ErrOfflineExpired
	ErrOfflineNotAllowed       = sp.ErrOfflineNotAllowed
	ErrOfflineLicenseLost      = sp.ErrOfflineLicenseLost
	ErrOfflineLicenseError     = sp.ErrOfflineLicenseError
	ErrLastfmAuthError         = sp.ErrLastfmAuthError
	ErrInvalidArgument         = sp.ErrInvalidArgument
	ErrSystemFailure           = sp.ErrSystemFailure
)

// ErrNotLoaded is returned when the libspotify shared library has not
// been loaded. Call Init before anything else.
var ErrNotLoaded = bindings.ErrNotLoaded

// ErrLibraryNotFound is returned by Init when no libspotify shared
// library can be located on this system.
var ErrLibraryNotFound = bindings.ErrLibraryNotFound

// Code extracts the sp_error code carried by err, or ErrOK if err does
// not carry one.
func Code(err error) ErrorCode {
	return sp.Code(err)
}

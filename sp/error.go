//go:build !ios && !android && (amd64 || arm64)

package sp

import (
	"errors"
	"fmt"
)

// ErrorCode mirrors the sp_error enumeration.
type ErrorCode int32

// sp_error values. The numbering is part of the libspotify ABI and must not
// be reordered.
const (
	ErrOK                      ErrorCode = 0
	ErrBadAPIVersion           ErrorCode = 1
	ErrAPIInitializationFailed ErrorCode = 2
	ErrTrackNotPlayable        ErrorCode = 3
	ErrBadApplicationKey       ErrorCode = 5
	ErrBadUsernameOrPassword   ErrorCode = 6
	ErrUserBanned              ErrorCode = 7
	ErrUnableToContactServer   ErrorCode = 8
	ErrClientTooOld            ErrorCode = 9
	ErrOtherPermanent          ErrorCode = 10
	ErrBadUserAgent            ErrorCode = 11
	ErrMissingCallback         ErrorCode = 12
	ErrInvalidIndata           ErrorCode = 13
	ErrIndexOutOfRange         ErrorCode = 14
	ErrUserNeedsPremium        ErrorCode = 15
	ErrOtherTransient          ErrorCode = 16
	ErrIsLoading               ErrorCode = 17
	ErrNoStreamAvailable       ErrorCode = 18
	ErrPermissionDenied        ErrorCode = 19
	ErrInboxIsFull             ErrorCode = 20
	ErrNoCache                 ErrorCode = 21
	ErrNoSuchUser              ErrorCode = 22
	ErrNoCredentials           ErrorCode = 23
	ErrNetworkDisabled         ErrorCode = 24
	ErrInvalidDeviceID         ErrorCode = 25
	ErrCantOpenTraceFile       ErrorCode = 26
	ErrApplicationBanned       ErrorCode = 27
	ErrOfflineTooManyTracks    ErrorCode = 31
	ErrOfflineDiskCache        ErrorCode = 32
	ErrOfflineExpired          ErrorCode = 33
	ErrOfflineNotAllowed       ErrorCode = 34
	ErrOfflineLicenseLost      ErrorCode = 35
	ErrOfflineLicenseError     ErrorCode = 36
	ErrLastfmAuthError         ErrorCode = 39
	ErrInvalidArgument         ErrorCode = 40
	ErrSystemFailure           ErrorCode = 41
)

// errorMessages replicates the strings sp_error_message returns, for use
// when the native library is not loaded (error values must still print
// sensibly in tests and diagnostics).
var errorMessages = map[ErrorCode]string{
	ErrOK:                      "No error",
	ErrBadAPIVersion:           "Invalid library version",
	ErrAPIInitializationFailed: "Initialization of library failed - are cache locations etc. valid?",
	ErrTrackNotPlayable:        "Track is not playable in any country",
	ErrBadApplicationKey:       "Invalid application key",
	ErrBadUsernameOrPassword:   "Invalid username or password",
	ErrUserBanned:              "User banned by Spotify",
	ErrUnableToContactServer:   "Cannot connect to Spotify",
	ErrClientTooOld:            "Client too old, library will need to be updated",
	ErrOtherPermanent:          "Some other error occurred, and it is permanent",
	ErrBadUserAgent:            "The user agent string is invalid or too long",
	ErrMissingCallback:         "No valid callback registered to handle events",
	ErrInvalidIndata:           "Input data was either missing or invalid",
	ErrIndexOutOfRange:         "Index out of range",
	ErrUserNeedsPremium:        "The specified user needs a premium account",
	ErrOtherTransient:          "A transient error occurred",
	ErrIsLoading:               "The resource is currently loading",
	ErrNoStreamAvailable:       "Could not find any suitable stream to play",
	ErrPermissionDenied:        "Requested operation is not allowed",
	ErrInboxIsFull:             "Target inbox is full",
	ErrNoCache:                 "Cache is not enabled",
	ErrNoSuchUser:              "Requested user does not exist",
	ErrNoCredentials:           "No credentials are stored",
	ErrNetworkDisabled:         "Network disabled",
	ErrInvalidDeviceID:         "Invalid device ID",
	ErrCantOpenTraceFile:       "Unable to open trace file",
	ErrApplicationBanned:       "This application is no longer allowed to use the Spotify service",
	ErrOfflineTooManyTracks:    "Reached the device limit for number of tracks to download",
	ErrOfflineDiskCache:        "Disk cache is full so no more tracks can be downloaded to offline mode",
	ErrOfflineExpired:          "Offline key has expired, the user needs to go online again",
	ErrOfflineNotAllowed:       "This user is not allowed to use offline mode",
	ErrOfflineLicenseLost:      "The license for this device has been lost. Most likely because the user used offline on three other device",
	ErrOfflineLicenseError:     "The Spotify license server does not respond correctly",
	ErrLastfmAuthError:         "A LastFM scrobble authentication error has occurred",
	ErrInvalidArgument:         "An invalid argument was specified",
	ErrSystemFailure:           "An operating system error has occurred",
}

// Message returns the human-readable message for the code.
// Prefers native sp_error_message so messages always match the loaded
// library; falls back to a built-in table when libspotify is not loaded.
func (c ErrorCode) Message() string {
	if spErrorMessage != nil {
		return spErrorMessage(int32(c))
	}
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error %d", int32(c))
}

// Permanent reports whether the code describes a condition retrying will
// not fix (bad credentials, banned user, outdated client, and similar).
func (c ErrorCode) Permanent() bool {
	switch c {
	case ErrBadAPIVersion, ErrAPIInitializationFailed, ErrBadApplicationKey,
		ErrBadUsernameOrPassword, ErrUserBanned, ErrClientTooOld,
		ErrOtherPermanent, ErrBadUserAgent, ErrMissingCallback,
		ErrApplicationBanned, ErrPermissionDenied, ErrUserNeedsPremium:
		return true
	}
	return false
}

// Transient reports whether the code describes a condition that may clear
// on its own. The binding never retries; retry policy belongs to the caller.
func (c ErrorCode) Transient() bool {
	switch c {
	case ErrUnableToContactServer, ErrOtherTransient, ErrIsLoading,
		ErrNetworkDisabled:
		return true
	}
	return false
}

// Error is a failure reported by a libspotify call.
type Error struct {
	Code ErrorCode // Raw sp_error value
	Op   string    // Native entry point that failed, e.g. "sp_session_create"
}

func (e *Error) Error() string {
	return fmt.Sprintf("spotify %s: %s (code %d)", e.Op, e.Code.Message(), int32(e.Code))
}

// NewError maps an sp_error return value to a Go error.
// Returns nil for ErrOK so call sites can return it directly.
func NewError(code ErrorCode, op string) error {
	if code == ErrOK {
		return nil
	}
	return &Error{Code: code, Op: op}
}

// Code extracts the ErrorCode from an error, or ErrOK if err does not wrap
// an sp.Error.
func Code(err error) ErrorCode {
	var spErr *Error
	if errors.As(err, &spErr) {
		return spErr.Code
	}
	return ErrOK
}

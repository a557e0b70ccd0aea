// Package errors provides error types returned by the edkey packages. It
// contains a 4-digit error code where the most significant digit describes
// the category where the error occurred and the remaining 3 digits describe
// the specific error reason.
package errors

import (
	"encoding/json"
	"errors"
)

// Error is the error type usually returned by functions in the edkey
// packages. It formats to a JSON object string.
type Error struct {
	ErrorCode int    `json:"code"`
	Message   string `json:"message"`
}

// Category is the most significant digit of the error code.
type Category int

// Reason is the last 3 digits of the error code.
type Reason int

const (
	// Success indicates no error occurred.
	Success Category = 1000 * iota // 0XXX

	// KeyError indicates a fault in raw key material or in key
	// construction. Code 1XXX.
	KeyError

	// ContainerError indicates a fault in a serialized key container.
	// Code 2XXX.
	ContainerError
)

// None is a non-specified error reason.
const (
	None Reason = iota
)

// Parsing errors, usable with any category.
const (
	Unknown      Reason = iota // X000
	DecodeFailed               // X001
)

// Key errors, must be specified along with KeyError.
const (
	// InvalidLength means a seed, public key or signature slice was not
	// exactly its required size. Code 11XX.
	InvalidLength Reason = 100 * (iota + 1)

	// MalformedKey means public key bytes did not decode to a valid
	// curve point. Code 12XX.
	MalformedKey

	// GenerationFailed means the random source failed while producing a
	// fresh seed. Code 13XX.
	GenerationFailed
)

// Container errors, must be specified along with ContainerError.
const (
	// AlgorithmMismatch means the container's algorithm identifier is
	// not the Ed25519 object identifier 1.3.101.112. Code 21XX.
	AlgorithmMismatch Reason = 100 * (iota + 1)

	// MalformedFraming means the container's inner octet-string framing
	// is absent, wrong, or wraps a payload of the wrong size. Code 22XX.
	MalformedFraming
)

// The error interface implementation, which formats to a JSON object string.
func (e *Error) Error() string {
	marshaled, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}
	return string(marshaled)
}

// New returns an error that contains an error code derived from the given
// category and reason, with a default message for that combination. To avoid
// confusion, it is not allowed to create an error of category Success.
func New(category Category, reason Reason) *Error {
	return Wrap(category, reason, nil)
}

// Wrap returns an error that contains the given error and an error code
// derived from the given category, reason and the error.
func Wrap(category Category, reason Reason, err error) *Error {
	errorCode := int(category) + int(reason)
	switch category {
	case KeyError:
		if err == nil {
			msg := "Unknown key error"
			switch reason {
			case DecodeFailed:
				msg = "Failed to decode key"
			case InvalidLength:
				msg = "Key material has the wrong length"
			case MalformedKey:
				msg = "Public key bytes do not encode a curve point"
			case GenerationFailed:
				msg = "Failed to read from the random source"
			}
			err = errors.New(msg)
		}
	case ContainerError:
		if err == nil {
			msg := "Unknown key container error"
			switch reason {
			case DecodeFailed:
				msg = "Failed to decode key container"
			case AlgorithmMismatch:
				msg = "Key container algorithm is not Ed25519"
			case MalformedFraming:
				msg = "Key container framing is malformed"
			}
			err = errors.New(msg)
		}
	default: // Got a different Category? panic.
		panic(errors.New("Unsupported edkey error type"))
	}

	return &Error{ErrorCode: errorCode, Message: err.Error()}
}

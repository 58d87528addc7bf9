// Package errors defines the structured error taxonomy of the history store.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies the kind of store failure.
type ErrorCode string

const (
	ErrKeyStore       ErrorCode = "KEY_STORE"      // credential store read/write
	ErrEncoding       ErrorCode = "ENCODING"       // entries could not be serialized
	ErrSeal           ErrorCode = "SEAL"           // AEAD setup or nonce generation
	ErrAuthentication ErrorCode = "AUTHENTICATION" // tag mismatch: tampering, wrong key, corruption
	ErrDecoding       ErrorCode = "DECODING"       // authenticated plaintext did not parse
	ErrStorage        ErrorCode = "STORAGE"        // file I/O
)

// StoreError is a failure raised by the key provider, codec or persistence engine.
type StoreError struct {
	Code ErrorCode
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewKeyStore creates an error for a failed credential store access.
func NewKeyStore(op string, err error) *StoreError {
	return &StoreError{Code: ErrKeyStore, Op: op, Err: err}
}

// NewEncoding creates an error for entries that could not be serialized.
func NewEncoding(err error) *StoreError {
	return &StoreError{Code: ErrEncoding, Op: "encode entries", Err: err}
}

// NewSeal creates an error for a failure while sealing a payload.
func NewSeal(op string, err error) *StoreError {
	return &StoreError{Code: ErrSeal, Op: op, Err: err}
}

// NewAuthentication creates an error for a blob that failed verification.
func NewAuthentication(err error) *StoreError {
	return &StoreError{Code: ErrAuthentication, Op: "open sealed blob", Err: err}
}

// NewDecoding creates an error for authenticated plaintext that did not parse.
func NewDecoding(op string, err error) *StoreError {
	return &StoreError{Code: ErrDecoding, Op: op, Err: err}
}

// NewStorage creates an error for a file I/O failure.
func NewStorage(op string, err error) *StoreError {
	return &StoreError{Code: ErrStorage, Op: op, Err: err}
}

// Is reports whether err, or any error it wraps, is a StoreError with the given code.
// For joined errors the first StoreError found in the tree decides.
func Is(err error, code ErrorCode) bool {
	var sErr *StoreError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}

// CodeOf returns the code of the first StoreError in err's tree, or "" when there is none.
func CodeOf(err error) ErrorCode {
	var sErr *StoreError
	if stderrors.As(err, &sErr) {
		return sErr.Code
	}
	return ""
}

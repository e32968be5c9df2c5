// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCountMismatch        = InvalidError("node count does not match tree")
	ErrHeightMismatch       = InvalidError("cached height does not match sub-tree")
	ErrInvalidKey           = InvalidError("key is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWorkload      = InvalidError("workload setting is invalid")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = InvalidError("keys out of order")
	ErrLookupMismatch       = ProcessError("lookup returned unexpected value")
	ErrMissingKey           = InvalidError("key is required")
	ErrMixedKeyTypes        = InvalidError("script mixes integer and string keys")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOracleMismatch       = ProcessError("tree contents differ from reference map")
	ErrParentLink           = InvalidError("parent link inconsistent")
	ErrRootParent           = InvalidError("root node has a parent")
	ErrUnbalanced           = InvalidError("balance factor out of range")
	ErrUnexpectedKey        = ProcessError("key unexpectedly present")
	ErrUnknownOperation     = InvalidError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }

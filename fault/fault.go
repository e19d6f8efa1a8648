// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Burst Apps Team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountUnknown            = NotFoundError("account unknown")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrInsufficientFunds         = InvalidError("insufficient funds")
	ErrInvalidConfigFile         = InvalidError("invalid config file")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPoolSize           = InvalidError("invalid pool size")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidTransactionRecord  = InvalidError("invalid transaction record")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrNotAValidAccountRecord    = InvalidError("not a valid account record")
	ErrNotFoundConfigFile        = NotFoundError("config file is not found")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrRateLimiting              = ProcessError("rate limiting")
	ErrTooManyItemsToProcess     = ProcessError("too many items to process")
	ErrTransactionIsNotAvailable = NotFoundError("transaction is not available")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

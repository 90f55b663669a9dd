// ABOUTME: Storage failure classification for the availability guard.
// ABOUTME: Maps driver and platform errors to a closed FailureKind enum.
package storage

import (
	"database/sql"
	"errors"
	"syscall"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrClosed is returned by every operation issued after Close. The guard
// treats it as transient and reopens the store once.
var ErrClosed = errors.New("storage: database is closed")

// FailureKind is the closed set of storage failure categories. The guard
// matches it exhaustively instead of inspecting error messages.
type FailureKind int

const (
	// FailureNone means the error is nil.
	FailureNone FailureKind = iota
	// FailureClosed means the handle was closed; a single reopen-and-retry
	// is worth attempting.
	FailureClosed
	// FailureQuota means the disk or database is full. Not transient.
	FailureQuota
	// FailureInvalidState means the store cannot be operated on at all:
	// read-only filesystem, corrupt file, permission denial. Not transient.
	FailureInvalidState
	// FailureOther covers everything else and is treated as a one-off.
	FailureOther
)

// String renders the kind for diagnostics output.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureClosed:
		return "closed"
	case FailureQuota:
		return "quota-exceeded"
	case FailureInvalidState:
		return "invalid-state"
	default:
		return "other"
	}
}

// Classify assigns a FailureKind to an error from any DB operation.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	if errors.Is(err, ErrClosed) || errors.Is(err, sql.ErrConnDone) {
		return FailureClosed
	}
	if errors.Is(err, syscall.ENOSPC) {
		return FailureQuota
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		// Mask extended result codes down to the primary code.
		switch se.Code() & 0xff {
		case sqlite3.SQLITE_FULL:
			return FailureQuota
		case sqlite3.SQLITE_READONLY, sqlite3.SQLITE_CANTOPEN,
			sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB,
			sqlite3.SQLITE_PERM, sqlite3.SQLITE_AUTH, sqlite3.SQLITE_MISUSE:
			return FailureInvalidState
		}
	}
	return FailureOther
}

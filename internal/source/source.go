// Package source defines the mailbox capability the sync engine consumes.
package source

import (
	"errors"
	"fmt"
	"time"
)

// AuthError indicates that authentication failed for an account. The sync
// engine skips the account and moves on when it sees one.
type AuthError struct {
	Account string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error (%s): %v", e.Account, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// IsAuthError reports whether err (or any error in its chain) is an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// Mailbox is one authenticated IMAP session. Implementations are not safe
// for concurrent use; the sync engine drives a session from a single
// goroutine.
type Mailbox interface {
	// Select opens a folder and returns its UIDVALIDITY token. A changed
	// token invalidates every UID recorded for the folder.
	Select(folder string) (uint32, error)

	// SearchSince returns the UIDs of messages received on or after the
	// given day, ascending. A folder must be selected first.
	SearchSince(since time.Time) ([]uint32, error)

	// SearchAfterUID searches the UID range above last. Servers may echo
	// the folder's highest UID even when it does not exceed last, so
	// callers filter the result.
	SearchAfterUID(last uint32) ([]uint32, error)

	// FetchRaw retrieves the full RFC 822 text of one message without
	// marking it read.
	FetchRaw(uid uint32) ([]byte, error)

	// Close logs out of the session.
	Close() error
}

// Package contracts defines the interfaces between the sync engine and its
// collaborators. The mailbox contract is what any mail source must provide
// for the engine to mirror it.
//
// Library: emersion/go-imap v2 + emersion/go-message
// Auth: username + password (inline, password_cmd, or system keychain)
package contracts

import "time"

// Mailbox is one authenticated IMAP session. The engine opens one session
// per account and selects each configured label in turn.
type Mailbox interface {
	// Select opens a folder read-only and returns its UIDVALIDITY.
	//
	// IMAP: SELECT <folder>
	// A changed UIDVALIDITY invalidates every stored UID for the folder;
	// the engine reacts by refetching the whole sync window.
	Select(folder string) (uint32, error)

	// SearchSince returns the UIDs of messages delivered on or after the
	// given time, used for full fetches of the sync window.
	//
	// IMAP: UID SEARCH SINCE <date>
	SearchSince(since time.Time) ([]uint32, error)

	// SearchAfterUID returns the UIDs of messages above the last seen UID,
	// used for incremental fetches.
	//
	// IMAP: UID SEARCH UID <last+1>:*
	// Servers answer the highest existing UID even when the range is
	// empty, so the caller must drop UIDs at or below last.
	SearchAfterUID(last uint32) ([]uint32, error)

	// FetchRaw returns the full RFC 5322 source of one message.
	//
	// IMAP: UID FETCH <uid> BODY.PEEK[]
	// PEEK keeps the server from marking the message \Seen; mirroring
	// must not alter mailbox state.
	FetchRaw(uid uint32) ([]byte, error)

	// Close logs out and releases the connection.
	Close() error
}

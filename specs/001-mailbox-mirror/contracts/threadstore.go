// Thread store contract: how fetched messages become Markdown files.
package contracts

// The thread store owns the conversations directory. Every conversation is
// one Markdown file; the file is the database.

// File layout:
//
//   # <subject>
//
//   **Thread ID**: <key>
//   **Labels**: a, b
//   **Accounts**: work, personal
//   **Last updated**: <date of newest message>
//
//   ---
//
//   ## <from> — <date>
//
//   <body>
//
// The thread key is the subject, trimmed, lowercased, with one leading
// "re:"/"fw:"/"fwd:" prefix removed. The filename is a slug of the first
// subject seen: lowercased, non-alphanumerics collapsed to "-", capped at
// 60 bytes, "untitled" when nothing survives. A slug collision with a
// different thread appends -2, -3, ...

// Merge rules, applied one message at a time:
//
//   1. Find the existing file by scanning *.md for the Thread ID line.
//   2. Decode it; a file that no longer parses is rebuilt from scratch at
//      the same path.
//   3. Record the label and account on the thread (no duplicates).
//   4. A message with the same From and Date as an existing one is a
//      duplicate: the file is rewritten (labels may have changed) but the
//      message is not appended.
//   5. Otherwise append, sort messages by parsed date (stable), set
//      Last updated from the newest message, and write.
//
// After writing, the file mtime is set to the newest message date so
// directory listings sort by activity. Unparseable dates fall back to the
// Unix epoch and leave the mtime alone.

// Orphan cleanup, full syncs only: every *.md in the primary conversations
// directory that no merged message touched is deleted. Other file types
// and subdirectories are kept. Routed copies in other mailbox directories
// are never cleaned.

// Manifest: after every sync the store regenerates manifest.toml next to
// the conversations directory, one [threads.<stem>] table per decodable
// file, carrying subject, labels, accounts, last_date, message_count, and
// the contact names matched against the senders. The manifest is derived
// data; hand edits are overwritten.

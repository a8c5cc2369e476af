// Package sessionlog records scan history as a stream of CBOR events.
//
// Each scale or chord scan appends one compact event: when it ran, which
// session it belonged to, the query, the tuning, and the match counts.
// Events use integer CBOR keys and append-only files, so a history file
// can be shared between sessions and replayed later.
//
// # Sessions
//
// A session is one CLI invocation or one interactive shell. Every session
// generates a UUID and stamps it on its events, which lets a shared
// history file be grouped or filtered by invocation.
package sessionlog

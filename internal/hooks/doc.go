// Package hooks resolves dispatch indices for global hook objects.
//
// A global hook observes every instance of a content category. Each hook
// declares a TypeToken naming its implementation type. While exactly one
// registration of a token exists in the session, the token maps to that
// registration's position and callers may dispatch through it directly.
// As soon as a second registration of the same token arrives, from any owner,
// the token collapses to PerInstance and stays there for the rest of the
// session, including after owners unload.
//
// Every registration remains individually addressable by "owner:name" at its
// own position regardless of collapse.
package hooks

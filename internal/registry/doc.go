// Package registry is the per-session content registry.
//
// A Registry owns one Category per content kind, one HookCategory per global
// hook kind, the cross-reference tables, and the asset binder. It is created
// at session start with New, emptied with Clear at session end, and handed to
// each owner's setup through a Registrar bound to that owner.
//
// Every Add operation runs the same pipeline: the owner's registration gate,
// the name collision check, asset binding and link validation, slot
// reservation, stamping of the object, cross-reference updates, and finally
// insertion into the owner's names and the category's ordered list. Nothing
// is mutated before every check has passed, so a failed call leaves the
// registry exactly as it was.
//
// Registries are not safe for concurrent use. All registration happens on the
// loader goroutine; concurrent readers are only allowed after loading ends.
package registry

// Package drafts persists the in-progress values of a form so they survive a
// reload.
//
// A draft is a flat field-name to value map stored as JSON under a key scoped
// to one form. Saves overwrite unconditionally (last write wins). Loading never
// fails: a missing, unreadable or corrupt draft yields an empty map so the
// form simply starts empty. Storage failures are logged, never surfaced.
package drafts

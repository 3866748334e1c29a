// Package formspec describes the forms the engine validates and submits: field
// order, kinds, requiredness, choice sets, the messages shown for each failure
// and the routing metadata attached to submissions.
//
// Definitions are JSON or YAML documents. The contact and membership forms
// ship embedded and are returned by Embedded.
package formspec

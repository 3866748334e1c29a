// Package countries provides the fixed country directory used by phone inputs:
// ISO2 code, display name, international dial prefix and flag glyph for every
// supported country, in presentation order.
//
// The directory is immutable. List returns a copy so callers can reorder or
// filter without affecting other users. Component serves the directory over
// net/http as JSON dropdown options, each carrying the country code and its
// dial prefix together.
package countries

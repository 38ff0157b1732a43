// Package syntax holds the rule tables used to classify characters for
// highlighting.
//
// A Profile is immutable once built by New: its compiled matchers live next to
// the rules and nothing can edit them afterwards, so a single *Profile is shared
// by every row of a buffer. Switching file type means handing out a different
// *Profile, never editing the current one.
package syntax

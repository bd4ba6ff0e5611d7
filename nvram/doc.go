// Package nvram inspects and mutates a firmware-resident variable store.
//
// The store itself is an external capability (see Store); this package owns
// the protocol around it: the growable-buffer fetch loop used to read
// unsized values and walk the name sequence, the reversible percent-escaped
// text rendering of binary payloads, and the compare-then-write logic used
// to set or toggle a variable idempotently.
//
// All drivers are synchronous and single-threaded. Callers sharing one
// Store across goroutines must serialize access themselves.
package nvram

// Package visitor offers generic visitors over conversion sources.
// It iterates slices, arrays, sets, maps, structs and delimited text,
// exposing them as element sequences or key/value pairs.
package visitor

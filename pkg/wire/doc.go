// Package wire holds the generic JSON value exchanged between generated
// models and the transport layer: a tagged union over null, boolean, number,
// string, array and object, with objects that keep key insertion order so
// encoded payloads are reproducible.
package wire

// Package codegen renders Go model source from model descriptors.
//
// Every generated model keeps its fields as model.Optional values, registers
// its descriptor with the package registry at init, and offers constructors,
// FromWire/ToWire conversion, structural equality and per-field accessors.
// Templates are rendered through the pongo2 engine in the gotemplate
// subpackage and the result is passed through go/format.
package codegen

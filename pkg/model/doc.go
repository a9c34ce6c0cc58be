// Package model holds the contract shared by the generated Polaris Management
// Service models. Each model is described by a Schema (ordered Field
// descriptors with wire names, types, required/nullable flags, formats and
// enums) and built on three helpers exposed here:
//
//   - Optional distinguishes an absent field from an explicit null and from a
//     present value, so payloads round-trip without losing either state.
//   - Decoder reads a wire object field by field, collecting every violation
//     into a single ValidationError and applying the UnknownPolicy once the
//     declared fields are consumed.
//   - Encoder writes fields back in schema order, followed by any unknown keys
//     retained under UnknownRetain.
//
// Document offers the same validation driven purely by a Schema, and Registry
// indexes schemas by model name for tooling that does not know the concrete
// type at compile time. Errors unwrap to the Err* sentinels so callers can use
// errors.Is and errors.As through the aggregate.
package model

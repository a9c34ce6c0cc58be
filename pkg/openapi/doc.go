// Package openapi exposes the public contracts for loading and parsing the
// OpenAPI documents the models are generated from. Implementations live under
// internal/openapi so kin-openapi types never leak to consumers; the root
// polaris package wires them through NewLoader and NewParser.
//
// Component schemas are returned as Schema values and converted into model
// descriptors with ModelSchema.
package openapi

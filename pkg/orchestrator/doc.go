// Package orchestrator wires the loader → parser → descriptor → code
// generator pipeline that turns an OpenAPI document into typed model
// sources, with dependency injection friendly options for each stage.
package orchestrator

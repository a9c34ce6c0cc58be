// Package polaris exposes the OpenAPI loader, parser and model generation
// pipeline behind the typed Polaris management models in pkg/management.
package polaris

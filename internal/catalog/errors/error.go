// Package errors provides custom error types for catalog operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")

// ErrCatalogUnavailable marks a catalog whose one-time load failed. Consumers
// must distinguish it from a catalog that is simply still empty while loading.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Package file provides the TOML-file-backed configuration store.
//
// Configuration lives in ~/.collegedex/config.toml by default. Nested
// TOML tables are flattened to dot-notation keys, so [cache] capacity
// reads as "cache.capacity".
package file

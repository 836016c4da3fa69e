// Package services implements the driving port interfaces.
// Services contain the core business logic - fuzzy matching,
// suggestion ranking and filter synchronization - and orchestrate
// calls to driven ports (adapters) through the result cache.
//
// Services are pure Go with no external dependencies beyond the
// cache and logger.
package services

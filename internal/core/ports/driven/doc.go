// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - EntityStore: College and course record access. Every query path
//     needs the directory snapshot it provides.
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration. Callers fall back to
//     built-in defaults without it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

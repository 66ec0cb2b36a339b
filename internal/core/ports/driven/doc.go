// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentParser: Turns yCard text into a normalised domain.Document
//   - RecordStore: Durable single-key persistence of saved documents
//   - EditorSurface: The text editor a session reads from and sends undo/redo to
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RecordVerifier: Schema check of stored records on load. Without it,
//     stored values are trusted as written.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

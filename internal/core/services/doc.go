// Package services implements the driving port interfaces.
//
// The validator, snapshot tracker, activity log and persistence service are
// composed by Session, which owns one editor's lifecycle. Services depend only
// on domain types and driven ports.
package services

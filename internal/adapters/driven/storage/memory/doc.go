// Package memory provides in-process stores used by the memory backend and by tests.
package memory

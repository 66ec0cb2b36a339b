// Package schema verifies stored yCard records against an embedded JSON Schema.
package schema

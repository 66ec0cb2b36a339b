// Package yaml parses yCard text with gopkg.in/yaml.v3 and normalises the
// result into domain nodes.
//
// Exactly one document is accepted. Aliases are resolved, merge keys are
// applied without overriding explicit keys, and duplicate keys are rejected.
package yaml

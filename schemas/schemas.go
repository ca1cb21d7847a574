// Package schemas embeds the JSON Schema files describing the portable resume encoding.
package schemas

import _ "embed"

// Resume is the JSON Schema of the portable resume encoding.
//
//go:embed resume.schema.json
var Resume string

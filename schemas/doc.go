// Package schemas holds the generator for the published Offboarding JSON schema.
//
// Run: go generate ./schemas/...
package schemas

//go:generate go run gen_schema.go offboarding.schema.json

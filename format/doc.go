// Package format names the output formats of a document: the tag format
// itself and the JSON, YAML and TOML renderings of its generic form.
package format

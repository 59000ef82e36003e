package akbarlang

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// QueryDump extracts a single field from a JSON dump produced by DumpAST or
// DumpIR using a gjson path expression, e.g. "statements.0" (§10.7).
func QueryDump(dump, path string) (string, error) {
	result := gjson.Get(dump, path)
	if !result.Exists() {
		return "", nil
	}
	return result.String(), nil
}

// PatchDump sets a single field of a JSON dump to value, for building test
// fixtures by editing a captured dump rather than hand-writing one (§10.7).
func PatchDump(dump, path, value string) (string, error) {
	return sjson.Set(dump, path, value)
}

package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tfgpu/internal/types"
)

// ParseQueryResult decodes the index's JSON document and extracts the
// entries listed under the package name.
func ParseQueryResult(raw []byte, name string) (types.QueryResult, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(raw, &document); err != nil {
		return types.QueryResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid package index output").
			WithCause(err)
	}
	payload, ok := document[name]
	if !ok || bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return types.QueryResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("package %s not found in index output", name))
	}
	var entries []types.PackageEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return types.QueryResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid entries for package %s", name)).
			WithCause(err)
	}
	return types.QueryResult{Package: name, Entries: entries}, nil
}

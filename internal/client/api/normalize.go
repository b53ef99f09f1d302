package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// normalizeList decodes a list payload that the API serves in two
// shapes, a flat array or a wrapper object such as
// {"badges": [...], "page": 1}. keys are the wrapper fields to try, in
// order; when none match, the first array-valued field wins. This is
// the one place both shapes are accepted; call sites never special-case
// it.
func normalizeList[T any](raw json.RawMessage, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return list, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("decode list wrapper: %w", err)
	}

	for _, key := range keys {
		if inner, ok := wrapper[key]; ok {
			return normalizeList[T](inner)
		}
	}
	for _, inner := range wrapper {
		if len(bytes.TrimSpace(inner)) > 0 && bytes.TrimSpace(inner)[0] == '[' {
			return normalizeList[T](inner)
		}
	}
	return nil, fmt.Errorf("no list found in wrapper payload")
}

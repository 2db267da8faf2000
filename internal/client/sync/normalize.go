package sync

import (
	"encoding/json"
	"fmt"
	"time"
)

// Documents that passed through a Firestore export carry timestamps as
// {"_seconds": N, "_nanoseconds": N} objects instead of RFC 3339 strings.
// NormalizeTimestamps rewrites every such object, at any depth, into the
// string form the models unmarshal.
func NormalizeTimestamps(data []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	normalized, err := json.Marshal(normalizeValue(v))
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode document: %w", err)
	}
	return normalized, nil
}

func normalizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		if t, ok := exportedTimestamp(value); ok {
			return t.UTC().Format(time.RFC3339Nano)
		}
		for k, item := range value {
			value[k] = normalizeValue(item)
		}
		return value
	case []any:
		for i, item := range value {
			value[i] = normalizeValue(item)
		}
		return value
	default:
		return v
	}
}

func exportedTimestamp(m map[string]any) (time.Time, bool) {
	if len(m) != 2 {
		return time.Time{}, false
	}
	sec, ok := m["_seconds"].(float64)
	if !ok {
		return time.Time{}, false
	}
	nsec, ok := m["_nanoseconds"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(sec), int64(nsec)), true
}

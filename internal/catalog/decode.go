package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

type record[T any] interface {
	*T
	Validate() error
}

// unwrap strips one level of nesting when data is an object whose only key is
// key, "data" or "items". Older writers stored some values that way.
func unwrap(key string, data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &outer); err != nil || len(outer) != 1 {
		return trimmed
	}
	for _, k := range []string{key, "data", "items"} {
		if inner, ok := outer[k]; ok {
			return bytes.TrimSpace(inner)
		}
	}
	return trimmed
}

// decodeOne decodes and validates a single record stored under key.
func decodeOne[T any, P record[T]](key string, data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(unwrap(key, data), &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", key, err)
	}
	if err := P(&out).Validate(); err != nil {
		return out, fmt.Errorf("%s: %w", key, err)
	}
	return out, nil
}

// decodeList decodes a collection stored under key. Invalid records are
// dropped and logged rather than failing the whole list.
func decodeList[T any, P record[T]](key string, data []byte, logger *zap.Logger) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(unwrap(key, data), &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		var rec T
		if err := json.Unmarshal(item, &rec); err != nil {
			logger.Warn("dropping undecodable record", zap.String("key", key), zap.Int("index", i), zap.Error(err))
			continue
		}
		if err := P(&rec).Validate(); err != nil {
			logger.Warn("dropping invalid record", zap.String("key", key), zap.Int("index", i), zap.Error(err))
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

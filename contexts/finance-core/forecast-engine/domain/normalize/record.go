package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// RawRecord is the loosely-typed row shape produced by storage. Rows carry
// primary fields plus an optional payloadJson string holding a JSON object
// with overlapping legacy field names from earlier schema phases.
type RawRecord = map[string]any

// Context carries the caller-resolved defaults every normalizer needs.
// Now is injected so normalization stays deterministic.
type Context struct {
	BaseCurrency string
	Now          time.Time
}

var cycleKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsCycleKey reports whether value is a YYYY-MM budgeting cycle key.
func IsCycleKey(value string) bool {
	return cycleKeyPattern.MatchString(strings.TrimSpace(value))
}

// payloadObject parses the row's payloadJson field. Malformed JSON and
// non-object payloads become an empty object, never an error.
func payloadObject(row RawRecord) map[string]any {
	raw, ok := row["payloadJson"]
	if !ok || raw == nil {
		return map[string]any{}
	}
	text, ok := raw.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return map[string]any{}
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil || parsed == nil {
		return map[string]any{}
	}
	return parsed
}

// lookup resolves a field with the documented precedence: every candidate
// key on the primary row first, then the parsed payload object.
func lookup(row RawRecord, payload map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := row[key]; ok && value != nil {
			return value, true
		}
	}
	for _, key := range keys {
		if value, ok := payload[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func floatField(row RawRecord, payload map[string]any, fallback float64, keys ...string) float64 {
	value, ok := lookup(row, payload, keys...)
	if !ok {
		return fallback
	}
	return toFloat(value, fallback)
}

func intField(row RawRecord, payload map[string]any, fallback, lo, hi int, keys ...string) int {
	value, ok := lookup(row, payload, keys...)
	if !ok {
		return clampInt(fallback, lo, hi)
	}
	return clampInt(toInt(value, fallback), lo, hi)
}

func boolField(row RawRecord, payload map[string]any, fallback bool, keys ...string) bool {
	value, ok := lookup(row, payload, keys...)
	if !ok {
		return fallback
	}
	return toBool(value, fallback)
}

func stringField(row RawRecord, payload map[string]any, fallback string, keys ...string) string {
	value, ok := lookup(row, payload, keys...)
	if !ok {
		return fallback
	}
	return toString(value, fallback)
}

func millisField(row RawRecord, payload map[string]any, fallback int64, keys ...string) int64 {
	value, ok := lookup(row, payload, keys...)
	if !ok {
		return fallback
	}
	return toMillis(value, fallback)
}

// currencyField upper-cases the resolved code; blank resolves to the base.
func currencyField(row RawRecord, payload map[string]any, base string, keys ...string) string {
	code := strings.ToUpper(strings.TrimSpace(stringField(row, payload, "", keys...)))
	if code == "" {
		return strings.ToUpper(strings.TrimSpace(base))
	}
	return code
}

// cycleKeyField returns the resolved cycle key, or "" when the value does
// not match YYYY-MM. Callers apply their own fallback chain for "".
func cycleKeyField(row RawRecord, payload map[string]any, keys ...string) string {
	value := strings.TrimSpace(stringField(row, payload, "", keys...))
	if !IsCycleKey(value) {
		return ""
	}
	return value
}

// objectField returns the first nested object found under the given keys.
func objectField(row RawRecord, payload map[string]any, keys ...string) map[string]any {
	value, ok := lookup(row, payload, keys...)
	if !ok {
		return map[string]any{}
	}
	if nested, ok := value.(map[string]any); ok && nested != nil {
		return nested
	}
	if text, ok := value.(string); ok && strings.TrimSpace(text) != "" {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(text), &parsed); err == nil && parsed != nil {
			return parsed
		}
	}
	return map[string]any{}
}

func stringSliceField(row RawRecord, payload map[string]any, limit int, keys ...string) []string {
	value, ok := lookup(row, payload, keys...)
	if !ok {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(toString(item, ""))
		if text == "" {
			continue
		}
		out = append(out, text)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Scalar coercion for values arriving through JSON payloads and loosely
// typed storage rows. Every coercer degrades to the fallback instead of
// returning an error, so normalization never fails on malformed input.

func finiteOr(value, fallback float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	return value
}

func finitePtr(value any) *float64 {
	f := toFloat(value, math.NaN())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func clampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func toFloat(value any, fallback float64) float64 {
	switch v := value.(type) {
	case float64:
		return finiteOr(v, fallback)
	case float32:
		return finiteOr(float64(v), fallback)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return fallback
		}
		return finiteOr(parsed, fallback)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return fallback
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return fallback
		}
		return finiteOr(parsed, fallback)
	default:
		return fallback
	}
}

// toInt truncates toward zero, matching integer coercion everywhere a day
// of month or horizon arrives as a float.
func toInt(value any, fallback int) int {
	f := toFloat(value, math.NaN())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return int(f)
}

func toBool(value any, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
		return fallback
	case float64, float32, int, int32, int64, uint, uint32, uint64, json.Number:
		return toFloat(v, 0) != 0
	default:
		return fallback
	}
}

func toString(value any, fallback string) string {
	switch v := value.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return fallback
		}
		return trimmed
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fallback
	}
}

// toMillis accepts epoch-millisecond numbers, time.Time values and RFC3339
// strings. Anything else resolves to the fallback.
func toMillis(value any, fallback int64) int64 {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return fallback
		}
		return v.UnixMilli()
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return fallback
		}
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int64(parsed)
		}
		if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return parsed.UnixMilli()
		}
		return fallback
	default:
		f := toFloat(value, math.NaN())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fallback
		}
		return int64(f)
	}
}

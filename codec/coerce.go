package codec

import "math"

// Value coercion accepts the dynamic shapes a JSON decoder produces
// (int, int64, uint64, float64) alongside exact Go widths, so callers
// can hand decoded documents straight to Pack.

func coerceToUint64(v any) (uint64, bool) {
	switch val := v.(type) {
	case uint64:
		return val, true
	case uint32:
		return uint64(val), true
	case uint16:
		return uint64(val), true
	case uint8:
		return uint64(val), true
	case uint:
		return uint64(val), true
	case int64:
		return uint64(val), true
	case int32:
		return uint64(val), true
	case int16:
		return uint64(val), true
	case int8:
		return uint64(val), true
	case int:
		return uint64(val), true
	case float64:
		return uint64(int64(val)), true
	case float32:
		return uint64(int64(val)), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func coerceToInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case int32:
		return int64(val), true
	case int16:
		return int64(val), true
	case int8:
		return int64(val), true
	case int:
		return int64(val), true
	case uint64:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint:
		return int64(val), true
	case float64:
		return int64(val), true
	case float32:
		return int64(val), true
	}
	return 0, false
}

func coerceToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case int16:
		return float64(val), true
	case int8:
		return float64(val), true
	case int:
		return float64(val), true
	case uint64:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint:
		return float64(val), true
	}
	return 0, false
}

// floatBits converts a float value to the bit pattern of the target
// width (4 for binary32, 8 for binary64).
func floatBits(f float64, size int) uint64 {
	if size == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(f)
}

// bitsToFloat is the inverse of floatBits, returning float32 or
// float64 matching the stored width.
func bitsToFloat(bits uint64, size int) any {
	if size == 4 {
		return math.Float32frombits(uint32(bits))
	}
	return math.Float64frombits(bits)
}

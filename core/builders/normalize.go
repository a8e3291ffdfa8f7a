package builders

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Normalize converts a scanned database value to one of the scalar types
// the console works with: int64, float64, string, bool or nil.
// typ is the database type name reported by the driver and is only used
// to recognize decimals that arrive as text.
func Normalize(typ string, val any) any {
	switch v := val.(type) {
	case nil, int64, float64, string, bool:
		if s, ok := v.(string); ok {
			return normalizeText(typ, s)
		}
		return v
	case []byte:
		return normalizeText(typ, string(v))
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return normalizeUint(uint64(v))
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return normalizeUint(v)
	case float32:
		return float64(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return val
	}
}

func normalizeText(typ, s string) any {
	switch strings.ToUpper(typ) {
	case "DECIMAL", "NUMERIC", "MONEY", "SMALLMONEY", "NUMBER",
		"FLOAT", "DOUBLE", "REAL", "DOUBLE PRECISION", "FLOAT4", "FLOAT8":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	case "INT", "INTEGER", "BIGINT", "SMALLINT", "TINYINT", "MEDIUMINT", "UNSIGNED INT", "UNSIGNED BIGINT", "UNSIGNED SMALLINT", "UNSIGNED TINYINT", "UNSIGNED MEDIUMINT", "YEAR":
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	}
	return s
}

// normalizeUint keeps values that don't fit an int64 as decimal text.
func normalizeUint(v uint64) any {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10)
	}
	return int64(v)
}

package sqlgen

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	clientDateLayout = "02/01/2006"
	engineDateLayout = "2006-01-02"
)

// Literal converts a client-supplied value into a single self-contained SQL
// literal token. Nil and the empty string become NULL. Structured values are
// serialized as JSON text (double-quoted keys, which the engine accepts) and
// quoted as strings. Ten-character DD/MM/YYYY strings are rewritten to the
// engine's YYYY-MM-DD form; the heuristic is deliberately this narrow and a
// string like "1999/12/21" falls through to plain quoting.
func Literal(v any) string {
	if v == nil {
		return "NULL"
	}
	if s, ok := v.(string); ok && s == "" {
		return "NULL"
	}

	str := strings.TrimSpace(stringify(v))

	if strings.Contains(str, "/") && len(str) == 10 {
		if t, err := time.Parse(clientDateLayout, str); err == nil {
			return "'" + t.Format(engineDateLayout) + "'"
		}
	}

	return "'" + strings.ReplaceAll(str, "'", "''") + "'"
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	}

	// JSON-decoded bodies hand objects and arrays over as maps and slices.
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}

	return fmt.Sprintf("%v", v)
}

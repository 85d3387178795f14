package pdfgen

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Stringify renders any submitted value as display text. It is total: every
// value has a representation and nil becomes the empty string, so a dangling
// field reference never fails a render.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		return val.Format(time.RFC3339)
	case []string:
		return strings.Join(val, ", ")
	case []interface{}:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return strings.Trim(string(b), `"`)
	}
}

// HumanizeLabel turns a camelCase field name into a display label:
// "fullName" -> "Full Name".
func HumanizeLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

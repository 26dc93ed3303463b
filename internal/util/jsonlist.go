package util

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseList decodes a JSON-encoded string list stored in a text column.
// Malformed data never fails the caller: a comma-separated string is split,
// any other non-empty value becomes a single-element list.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	parsed := gjson.Parse(raw)
	if parsed.IsArray() {
		items := parsed.Array()
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.String())
		}
		return out
	}

	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	return []string{raw}
}

// EncodeList marshals a string list for storage in a text column. A nil
// list encodes as "[]".
func EncodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

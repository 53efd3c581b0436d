package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeErrorMessage extracts a user-facing message from an error body.
// Recognised shapes, in order: a JSON string, {"detail": string},
// {"detail": [{"msg": ...}, ...]} joined with ", ", {"message"}, {"error"}.
// Any other JSON is returned compacted. Empty and non-JSON bodies (proxy
// HTML pages, plain text) yield fallback.
func DecodeErrorMessage(body []byte, fallback string) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return fallback
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fallback
	}

	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if msg := detailMessage(t["detail"]); msg != "" {
			return msg
		}
		for _, key := range []string{"message", "error"} {
			if s, ok := t[key].(string); ok && s != "" {
				return s
			}
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return fallback
	}
	return buf.String()
}

func detailMessage(d any) string {
	switch t := d.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				if msg, ok := m["msg"].(string); ok {
					parts = append(parts, msg)
					continue
				}
			}
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

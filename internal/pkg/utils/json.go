package utils

import (
	"bytes"

	"github.com/goccy/go-json"
)

func IsValidJSON(data []byte) bool {
	return len(bytes.TrimSpace(data)) > 0 && json.Valid(data)
}

// PrettyJSON indents data with two spaces. Invalid input is returned as is.
func PrettyJSON(data []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return string(data)
	}
	return out.String()
}

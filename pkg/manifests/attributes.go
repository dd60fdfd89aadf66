package manifests

import (
	"encoding/json"
	"fmt"
)

// attributeText renders a decoded attribute value as annotation text.
// Strings are kept as is, composite values become JSON.
func attributeText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any, []any:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	default:
		return fmt.Sprint(t)
	}
}

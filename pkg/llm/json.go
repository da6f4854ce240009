package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject pulls the JSON object out of a model reply that may wrap
// it in prose or a code fence. The span from the leftmost '{' to the
// rightmost '}' is parsed greedily; when no braces exist or the span does not
// parse, an empty map is returned rather than an error. Downstream
// normalization must tolerate a fully empty parse.
func ExtractJSONObject(raw string) map[string]interface{} {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return map[string]interface{}{}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return map[string]interface{}{}
	}
	if parsed == nil {
		return map[string]interface{}{}
	}
	return parsed
}

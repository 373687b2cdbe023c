package domain

import "encoding/json"

// toJSONList serializes a list the same way the json serializer does, so
// column updates built from Fields() stay byte-compatible with full-row
// writes.
func toJSONList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

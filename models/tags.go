package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TagList accepts either a single comma-delimited string or a JSON list of
// values. Entries are trimmed and empties dropped on decode; order is
// preserved and duplicates are allowed.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*t = nil
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = NormalizeTags(strings.Split(s, ","))
	case '[':
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		raw := make([]string, 0, len(items))
		for _, item := range items {
			raw = append(raw, fmt.Sprint(item))
		}
		*t = NormalizeTags(raw)
	default:
		// Any other JSON value is treated as no tags.
		*t = nil
	}
	return nil
}

// NormalizeTags trims each entry and drops the ones that end up empty.
func NormalizeTags(raw []string) TagList {
	tags := make(TagList, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Join returns the internal comma-joined form.
func (t TagList) Join() string {
	return strings.Join(t, ",")
}

// SplitTags expands the internal comma-joined form back into a list.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

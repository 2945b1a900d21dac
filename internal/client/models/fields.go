package models

import "strings"

// SplitListField converts raw comma-separated input into the list form the
// remote store expects. Each segment is trimmed, but empty segments are kept:
// "a,,b" becomes ["a","","b"], and a trailing comma yields a trailing "".
//
// TODO: confirm with the API owners whether empty segments should be dropped;
// the admin UI has always sent them through as-is.
func SplitListField(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// JoinListField renders a list field back into the editable comma form.
func JoinListField(values []string) string {
	return strings.Join(values, ", ")
}

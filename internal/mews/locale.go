package mews

import (
	"encoding/json"
	"sort"
)

// LocalizedText models the upstream string-or-locale-map union. Mews returns
// plain strings for some properties and {"en-US": "...", ...} maps for
// others, sometimes both shapes for the same field across entries, so the
// union is decoded at the boundary and resolved immediately.
type LocalizedText struct {
	plain     string
	isPlain   bool
	localized map[string]string
}

// PlainText builds the plain-string variant. Mostly useful in tests.
func PlainText(s string) LocalizedText {
	return LocalizedText{plain: s, isPlain: true}
}

// LocalizedMap builds the locale-map variant.
func LocalizedMap(m map[string]string) LocalizedText {
	return LocalizedText{localized: m}
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = LocalizedText{plain: s, isPlain: true}
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err == nil {
		*t = LocalizedText{localized: m}
		return nil
	}

	// null or an unexpected shape resolves to the fallback later
	*t = LocalizedText{}
	return nil
}

// Resolve picks a display string: the plain value if one was given, else the
// first preferred locale present in order, else the first map entry (sorted
// by locale code for determinism), else the fallback. Empty strings never
// win. Resolution cannot fail.
func (t LocalizedText) Resolve(preferences []string, fallback string) string {
	if t.isPlain {
		if t.plain != "" {
			return t.plain
		}
		return fallback
	}

	for _, locale := range preferences {
		if v := t.localized[locale]; v != "" {
			return v
		}
	}

	keys := make([]string, 0, len(t.localized))
	for k := range t.localized {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := t.localized[k]; v != "" {
			return v
		}
	}

	return fallback
}

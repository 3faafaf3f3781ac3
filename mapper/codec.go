package mapper

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical flattening conventions. The same delimiters apply in both
// mapping directions so round-trips are lossless for values that avoid them:
// raw text containing ListDelimiter, FieldDelimiter, EntrySeparator, or a
// trailing language marker corrupts the round-trip. That is an accepted
// boundary of the flat attribute model, not masked here.
const (
	// LanguageMarker suffixes natural-language text with its language code,
	// e.g. "Datasett 1@nb".
	LanguageMarker = "@"

	// ListDelimiter joins list-valued attributes and multi-language text
	// variants, e.g. "Dataset 1@en;Datasett 1@nb".
	ListDelimiter = ";"

	// FieldDelimiter joins the key/value fields of one distribution entry.
	FieldDelimiter = "|"

	// EntrySeparator joins multiple distribution entries within one
	// attribute value.
	EntrySeparator = "\n"
)

// flattenText renders a per-language text map as marker-suffixed variants
// joined by ListDelimiter, sorted by language code for determinism. An empty
// map yields "".
func flattenText(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	parts := make([]string, 0, len(langs))
	for _, lang := range langs {
		if m[lang] == "" {
			continue
		}
		parts = append(parts, m[lang]+LanguageMarker+lang)
	}
	return strings.Join(parts, ListDelimiter)
}

// parseText is the inverse of flattenText. Variants without a language
// marker are assigned to defaultLang. Empty input yields nil, never a map
// with empty entries.
func parseText(s, defaultLang string) map[string]string {
	if s == "" {
		return nil
	}
	var m map[string]string
	for _, part := range strings.Split(s, ListDelimiter) {
		if part == "" {
			continue
		}
		lang := defaultLang
		text := part
		if i := strings.LastIndex(part, LanguageMarker); i >= 0 {
			lang = part[i+1:]
			text = part[:i]
		}
		if text == "" {
			continue
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[lang] = text
	}
	return m
}

// joinList joins list values with ListDelimiter; empty lists yield "".
func joinList(values []string) string {
	return strings.Join(values, ListDelimiter)
}

// splitList is the inverse of joinList. Empty input yields an empty list,
// never a list containing one empty string.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ListDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// encodeFields renders one distribution entry as FieldDelimiter-joined
// key/value pairs, skipping absent values. Known keys come first in a fixed
// order; keys this package does not model follow sorted, so a decode-encode
// cycle never strips them from the term.
func encodeFields(fields map[string]string) string {
	order := []string{
		fieldIdentifier, fieldTitle, fieldDescription,
		fieldFormat, fieldLicense, fieldAccessURL, fieldDownloadURL,
	}
	known := make(map[string]bool, len(order))
	var parts []string
	for _, key := range order {
		known[key] = true
		if v := fields[key]; v != "" {
			parts = append(parts, key, v)
		}
	}

	var extra []string
	for key := range fields {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		if v := fields[key]; v != "" {
			parts = append(parts, key, v)
		}
	}

	return strings.Join(parts, FieldDelimiter)
}

// decodeFields parses one distribution entry back into its key/value pairs.
// An odd number of fields means a truncated or corrupted entry; unknown keys
// are kept so a later encode pass does not drop them.
func decodeFields(entry string) (map[string]string, error) {
	parts := strings.Split(entry, FieldDelimiter)
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("odd number of fields (%d) in entry", len(parts))
	}
	fields := make(map[string]string, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		key := strings.TrimSpace(parts[i])
		if key == "" {
			continue
		}
		fields[key] = parts[i+1]
	}
	return fields, nil
}

// splitEntries splits a distribution attribute into its entries.
func splitEntries(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, EntrySeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// joinEntries is the inverse of splitEntries.
func joinEntries(entries []string) string {
	return strings.Join(entries, EntrySeparator)
}

package i18n

import (
	"bytes"
	"encoding/json"
)

// Text is a value carrying up to three language variants of the same text.
// Any subset of variants may be absent.
type Text struct {
	EN string `json:"en,omitempty"`
	FR string `json:"fr,omitempty"`
	AR string `json:"ar,omitempty"`
}

// UnmarshalJSON accepts the backend object form. Null, missing or
// non-object values decode to an empty Text rather than failing the
// surrounding record.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	t.EN = rawString(raw["en"])
	t.FR = rawString(raw["fr"])
	t.AR = rawString(raw["ar"])
	return nil
}

func rawString(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// Get returns the variant for lang, empty when absent or unsupported.
func (t Text) Get(lang Language) string {
	switch lang {
	case English:
		return t.EN
	case French:
		return t.FR
	case Arabic:
		return t.AR
	}
	return ""
}

// IsEmpty reports whether no variant carries text.
func (t Text) IsEmpty() bool {
	return t.EN == "" && t.FR == "" && t.AR == ""
}

// Resolve picks the best available string for lang.
// Order: requested language, then en, fr, ar, then fallback.
func Resolve(field *Text, lang Language, fallback string) string {
	if field == nil {
		return fallback
	}
	if s := field.Get(lang); s != "" {
		return s
	}
	for _, l := range Supported {
		if s := field.Get(l); s != "" {
			return s
		}
	}
	return fallback
}

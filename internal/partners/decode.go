package partners

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/richxcame/partner-showcase/pkg/i18n"
)

// looseString accepts a JSON string or number; any other shape decodes to "".
type looseString string

// UnmarshalJSON implements json.Unmarshaler
func (s *looseString) UnmarshalJSON(data []byte) error {
	*s = looseString(looseText(data))
	return nil
}

// looseText returns the text of a JSON string or the literal of a JSON
// number, and "" for every other value.
func looseText(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// looseInt parses a JSON integer or a numeric string
func looseInt(data json.RawMessage) (int64, bool) {
	text := strings.TrimSpace(looseText(data))
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// looseBool parses a JSON boolean or a "true"/"false" string
func looseBool(data json.RawMessage) (bool, bool) {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return b, true
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(looseText(data))); err == nil {
		return b, true
	}
	return false, false
}

// looseAddresses accepts an array of addresses or a single address object.
// Elements that are not objects are skipped.
func looseAddresses(data json.RawMessage) []Address {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var items []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &items); err != nil {
			return nil
		}
	case '{':
		items = []json.RawMessage{data}
	default:
		return nil
	}

	var out []Address
	for _, item := range items {
		var a Address
		if err := json.Unmarshal(item, &a); err == nil {
			out = append(out, a)
		}
	}
	return out
}

// partnerWire mirrors the backend record with every scalar field loosely
// typed, so one badly shaped field never rejects the whole record.
type partnerWire struct {
	PartnerID     looseString     `json:"partenaire_id"`
	ID            json.RawMessage `json:"id"`
	Name          i18n.Text       `json:"nom_partenaire"`
	Description   i18n.Text       `json:"description"`
	Addresses     json.RawMessage `json:"adresse"`
	Email         looseString     `json:"email"`
	Phone         looseString     `json:"telephone"`
	Website       looseString     `json:"site_web"`
	StartDate     looseString     `json:"date_deb"`
	EndDate       looseString     `json:"date_fin"`
	FoundedDate   looseString     `json:"date_creation_entreprise"`
	AddedAt       looseString     `json:"date_ajout"`
	Logo          looseString     `json:"logo"`
	Banner        looseString     `json:"image_banniere"`
	Priority      json.RawMessage `json:"priorite_affichage"`
	Active        json.RawMessage `json:"actif"`
	Type          PartnerType     `json:"type_partenaire"`
	ExternalLinks LinkMap         `json:"liens_externes"`
	Facebook      looseString     `json:"facebook"`
	Instagram     looseString     `json:"instagram"`
	TikTok        looseString     `json:"tiktok"`
}

// UnmarshalJSON decodes a backend record. Only a non-object value is an
// error; mistyped fields decode to their zero value.
func (p *Partner) UnmarshalJSON(data []byte) error {
	var w partnerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Partner{
		PartnerID:     strings.TrimSpace(string(w.PartnerID)),
		Name:          w.Name,
		Description:   w.Description,
		Addresses:     looseAddresses(w.Addresses),
		Email:         string(w.Email),
		Phone:         string(w.Phone),
		Website:       string(w.Website),
		StartDate:     string(w.StartDate),
		EndDate:       string(w.EndDate),
		FoundedDate:   string(w.FoundedDate),
		AddedAt:       string(w.AddedAt),
		Logo:          string(w.Logo),
		Banner:        string(w.Banner),
		Type:          w.Type,
		ExternalLinks: w.ExternalLinks,
		Facebook:      string(w.Facebook),
		Instagram:     string(w.Instagram),
		TikTok:        string(w.TikTok),
	}

	if id, ok := looseInt(w.ID); ok {
		p.ID = &id
	}
	if prio, ok := looseInt(w.Priority); ok {
		p.Priority = int(prio)
	}
	if active, ok := looseBool(w.Active); ok {
		p.Active = &active
	}
	return nil
}

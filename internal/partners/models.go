package partners

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/richxcame/partner-showcase/pkg/i18n"
)

// Address is a translatable postal address
type Address struct {
	Street  i18n.Text `json:"rue"`
	City    i18n.Text `json:"ville"`
	Country i18n.Text `json:"pays"`
}

// Partner is a read-only snapshot of a backend partner record.
// Either PartnerID or ID may be populated depending on the record version.
type Partner struct {
	PartnerID   string    `json:"partenaire_id,omitempty"`
	ID          *int64    `json:"id,omitempty"`
	Name        i18n.Text `json:"nom_partenaire"`
	Description i18n.Text `json:"description"`
	Addresses   []Address `json:"adresse,omitempty"`

	// Contact
	Email   string `json:"email"`
	Phone   string `json:"telephone"`
	Website string `json:"site_web"`

	// Dates (ISO-8601, optional)
	StartDate   string `json:"date_deb,omitempty"`
	EndDate     string `json:"date_fin,omitempty"`
	FoundedDate string `json:"date_creation_entreprise,omitempty"`
	AddedAt     string `json:"date_ajout,omitempty"`

	// Display
	Logo          string      `json:"logo,omitempty"`
	Banner        string      `json:"image_banniere,omitempty"`
	Priority      int         `json:"priorite_affichage"`
	Active        *bool       `json:"actif,omitempty"`
	Type          PartnerType `json:"type_partenaire,omitempty"`
	ExternalLinks LinkMap     `json:"liens_externes,omitempty"`

	// Legacy top-level social links
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
}

// Link is a named external URL
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LinkMap maps a link name to its URL. Non-string values are skipped and a
// non-object value decodes to nil.
type LinkMap map[string]string

// UnmarshalJSON implements json.Unmarshaler
func (m *LinkMap) UnmarshalJSON(data []byte) error {
	*m = nil

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil
	}

	out := make(LinkMap, len(raw))
	for name, v := range raw {
		var url string
		if err := json.Unmarshal(v, &url); err == nil && url != "" {
			out[name] = url
		}
	}
	*m = out
	return nil
}

// PartnerType is the loosely typed partner classifier. Strings and numbers
// are kept as text; any other JSON shape decodes to empty.
type PartnerType string

// UnmarshalJSON implements json.Unmarshaler
func (t *PartnerType) UnmarshalJSON(data []byte) error {
	*t = PartnerType(strings.TrimSpace(looseText(data)))
	return nil
}

// Identifier returns the string id, or the numeric id in decimal form.
func (p *Partner) Identifier() string {
	if p.PartnerID != "" {
		return p.PartnerID
	}
	if p.ID != nil {
		return strconv.FormatInt(*p.ID, 10)
	}
	return ""
}

// MatchesID reports whether id equals the string identifier or the decimal
// form of the numeric identifier. Both fields are checked.
func (p *Partner) MatchesID(id string) bool {
	if id == "" {
		return false
	}
	if p.PartnerID == id {
		return true
	}
	return p.ID != nil && strconv.FormatInt(*p.ID, 10) == id
}

// IsActive treats a missing actif flag as active
func (p *Partner) IsActive() bool {
	return p.Active == nil || *p.Active
}

// Headquarters returns the first address, by convention the head office
func (p *Partner) Headquarters() *Address {
	if len(p.Addresses) == 0 {
		return nil
	}
	return &p.Addresses[0]
}

// Links merges liens_externes with the legacy social fields. Empty URLs are
// dropped and liens_externes wins on name clashes. Sorted by name.
func (p *Partner) Links() []Link {
	merged := make(map[string]string, len(p.ExternalLinks)+3)
	for name, url := range map[string]string{
		"facebook":  p.Facebook,
		"instagram": p.Instagram,
		"tiktok":    p.TikTok,
	} {
		if url != "" {
			merged[name] = url
		}
	}
	for name, url := range p.ExternalLinks {
		if url = strings.TrimSpace(url); url != "" {
			merged[name] = url
		}
	}

	links := make([]Link, 0, len(merged))
	for name, url := range merged {
		links = append(links, Link{Name: name, URL: url})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Name < links[j].Name })
	return links
}

package partners

import (
	"strings"
	"time"

	"github.com/richxcame/partner-showcase/pkg/i18n"
	"github.com/richxcame/partner-showcase/pkg/security"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DetailView is a partner fully resolved for one page language
type DetailView struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description,omitempty"`
	TypeLabel        string        `json:"type,omitempty"`
	FoundedYear      int           `json:"founded_year,omitempty"`
	PartnerSinceYear int           `json:"partner_since_year,omitempty"`
	Headquarters     string        `json:"headquarters,omitempty"`
	Location         string        `json:"location,omitempty"`
	Email            string        `json:"email,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	PhoneDial        string        `json:"phone_dial,omitempty"`
	Website          string        `json:"website,omitempty"`
	LogoURL          string        `json:"logo_url"`
	BannerURL        string        `json:"banner_url,omitempty"`
	ExternalLinks    []Link        `json:"external_links"`
	Language         i18n.Language `json:"language"`
	Dir              string        `json:"dir"`
}

// BuildDetailView resolves every display field of p for lang. The id the
// partner was requested by identifies the view and fills the fallback name;
// the record's own identifier is used only when no id was requested.
func BuildDetailView(p *Partner, requestedID string, lang i18n.Language, media *MediaResolver) *DetailView {
	id := strings.TrimSpace(requestedID)
	if id == "" {
		id = p.Identifier()
	}

	v := &DetailView{
		ID:               id,
		Name:             i18n.Resolve(&p.Name, lang, i18n.Translate("partner.defaultName", lang, id)),
		Description:      i18n.Resolve(&p.Description, lang, ""),
		TypeLabel:        string(p.Type),
		FoundedYear:      parseYear(p.FoundedDate),
		PartnerSinceYear: parseYear(p.StartDate),
		Email:            security.SanitizeEmail(p.Email),
		Phone:            security.NormalizeWhitespace(p.Phone),
		PhoneDial:        security.SanitizePhone(p.Phone),
		Website:          security.SanitizeURL(p.Website),
		LogoURL:          media.ResolveImageURL(p.Logo),
		ExternalLinks:    safeLinks(p.Links()),
		Language:         lang,
		Dir:              lang.Dir(),
	}

	// The gallery section is only shown for partners that have a banner.
	if strings.TrimSpace(p.Banner) != "" {
		v.BannerURL = media.ResolveImageURL(p.Banner)
	}

	if hq := p.Headquarters(); hq != nil {
		v.Headquarters = i18n.Resolve(&hq.City, lang, "")
		v.Location = joinNonEmpty(", ",
			i18n.Resolve(&hq.Street, lang, ""),
			v.Headquarters,
			i18n.Resolve(&hq.Country, lang, ""),
		)
	}

	return v
}

// parseYear returns the year of an ISO-8601 date, 0 when absent or invalid
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year()
		}
	}
	return 0
}

// safeLinks drops links whose URL is not an absolute http(s) URL
func safeLinks(links []Link) []Link {
	out := links[:0]
	for _, l := range links {
		if u := security.SanitizeURL(l.URL); u != "" {
			out = append(out, Link{Name: l.Name, URL: u})
		}
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

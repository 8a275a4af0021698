package partners

import (
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/richxcame/partner-showcase/pkg/common"
	"github.com/richxcame/partner-showcase/pkg/i18n"
	"github.com/richxcame/partner-showcase/pkg/middleware"
)

// Handler handles HTTP requests for partners
type Handler struct {
	service   *Service
	templates *template.Template
	siteURL   string
}

// NewHandler creates a new partner handler. siteURL is the base of the host
// site that serves /partnerships and /contact; empty keeps those links relative.
func NewHandler(service *Service, siteURL string) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		service:   service,
		templates: tmpl,
		siteURL:   strings.TrimRight(siteURL, "/"),
	}, nil
}

// ListQuery holds the partner list query parameters
type ListQuery struct {
	Lang   string `form:"lang" validate:"omitempty,page_lang"`
	Active bool   `form:"active"`
}

// DetailQuery holds the partner detail query parameters
type DetailQuery struct {
	Lang string `form:"lang" validate:"omitempty,page_lang"`
}

// PartnerSummary is a list entry resolved for one language
type PartnerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LogoURL  string `json:"logo_url"`
	Type     string `json:"type,omitempty"`
	Priority int    `json:"priority"`
	Active   bool   `json:"active"`
}

// PartnerDetailResponse carries the raw record and its resolved view
type PartnerDetailResponse struct {
	Partner *Partner    `json:"partner"`
	View    *DetailView `json:"view"`
}

// ========================================
// API ENDPOINTS
// ========================================

// ListPartners returns partners ordered by display priority
// GET /api/v1/partners?active=true&lang=fr
func (h *Handler) ListPartners(c *gin.Context) {
	var q ListQuery
	if !middleware.ValidateAndBindQuery(c, &q) {
		return
	}
	lang := i18n.Negotiate(q.Lang, c.GetHeader("Accept-Language"))

	partners, err := h.service.ListPartners(c.Request.Context(), q.Active)
	if err != nil {
		reportTransportFailure(c, err)
		common.AppErrorResponse(c, common.NewBadGatewayError("failed to fetch partners", err))
		return
	}

	media := h.service.Media()
	summaries := make([]PartnerSummary, 0, len(partners))
	for _, p := range partners {
		id := p.Identifier()
		summaries = append(summaries, PartnerSummary{
			ID:       id,
			Name:     i18n.Resolve(&p.Name, lang, i18n.Translate("partner.defaultName", lang, id)),
			LogoURL:  media.ResolveImageURL(p.Logo),
			Type:     string(p.Type),
			Priority: p.Priority,
			Active:   p.IsActive(),
		})
	}

	common.SuccessResponseWithMeta(c, summaries, &common.Meta{
		Total: int64(len(summaries)),
		Lang:  lang.String(),
	})
}

// GetPartner returns one partner with its resolved view
// GET /api/v1/partners/:id?lang=fr
func (h *Handler) GetPartner(c *gin.Context) {
	var q DetailQuery
	if !middleware.ValidateAndBindQuery(c, &q) {
		return
	}
	lang := i18n.Negotiate(q.Lang, c.GetHeader("Accept-Language"))

	partner, view, err := h.service.GetPartnerDetail(c.Request.Context(), c.Param("id"), lang)
	if err != nil {
		if errors.Is(err, ErrPartnerNotFound) {
			common.AppErrorResponse(c, common.NewNotFoundError("partner not found", err))
			return
		}
		reportTransportFailure(c, err)
		common.AppErrorResponse(c, common.NewBadGatewayError("failed to fetch partner", err))
		return
	}

	common.SuccessResponse(c, PartnerDetailResponse{Partner: partner, View: view})
}

// ========================================
// PAGES
// ========================================

type pageData struct {
	T           i18n.Translator
	Lang        i18n.Language
	Dir         string
	View        *DetailView
	Title       string
	Placeholder string
	Site        string
}

// PartnerPage renders the partner detail page. A missing partner and an
// unreachable backend both render the not-found page.
// GET /partners/:id?lang=fr
func (h *Handler) PartnerPage(c *gin.Context) {
	lang := i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
	data := pageData{
		T:           i18n.Translator{Lang: lang},
		Lang:        lang,
		Dir:         lang.Dir(),
		Placeholder: PlaceholderImage,
		Site:        h.siteURL,
	}

	_, view, err := h.service.GetPartnerDetail(c.Request.Context(), c.Param("id"), lang)
	if err != nil {
		if IsTransportFailure(err) {
			reportTransportFailure(c, err)
		}
		data.Title = data.T.T("partner.notFound")
		c.Render(http.StatusNotFound, render.HTML{Template: h.templates, Name: "not_found", Data: data})
		return
	}

	data.View = view
	data.Title = view.Name
	c.Render(http.StatusOK, render.HTML{Template: h.templates, Name: "detail", Data: data})
}

// RegisterRoutes registers partner API routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	p := rg.Group("/partners")
	{
		p.GET("", h.ListPartners)
		p.GET("/:id", h.GetPartner)
	}
}

// RegisterPages registers the HTML pages and their static assets
func (h *Handler) RegisterPages(r gin.IRoutes) error {
	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return err
	}

	r.GET("/partners/:id", h.PartnerPage)
	r.StaticFS("/static", http.FS(static))
	r.StaticFileFS(PlaceholderImage, "placeholder.svg", http.FS(static))
	return nil
}

func reportTransportFailure(c *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

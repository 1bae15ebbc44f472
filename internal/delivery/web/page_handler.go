package web

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	PageUC usecase.PageUsecase
	Logger *slog.Logger
}

// PageHandler renders the public site.
type PageHandler struct {
	pageUC usecase.PageUsecase
	logger *slog.Logger
}

func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		pageUC: params.PageUC,
		logger: params.Logger,
	}
}

// Paths lists the routes Page serves.
func (h *PageHandler) Paths() []string {
	entries := h.pageUC.Sitemap()
	paths := make([]string, 0, len(entries))
	base := h.pageUC.BaseURL()
	for _, entry := range entries {
		paths = append(paths, strings.TrimPrefix(entry.Loc, base))
	}

	return paths
}

// Page renders the public route registered at c.Path().
func (h *PageHandler) Page(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.pageUC.GetPage(ctx, c.Path())
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to compose page", slog.Any("error", err))

		return err
	}

	return c.Render(http.StatusOK, templateName(page.Path), page)
}

// Robots allows everything except the admin area.
func (h *PageHandler) Robots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: " + h.pageUC.BaseURL() + "/sitemap.xml\n"

	return c.String(http.StatusOK, body)
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *PageHandler) Sitemap(c echo.Context) error {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, entry := range h.pageUC.Sitemap() {
		set.URLs = append(set.URLs, sitemapURL{Loc: entry.Loc, Priority: entry.Priority})
	}

	return c.XML(http.StatusOK, set)
}

func templateName(path string) string {
	if path == "/" {
		return "pages/home"
	}

	return "pages" + path
}

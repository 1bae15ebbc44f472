package jsonld

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"housecash/config"
	"housecash/internal/domain/entity"
)

// Assembler builds page level schemas for one site.
type Assembler struct {
	baseURL string
}

// NewAssembler reads the site URL from configuration.
func NewAssembler(cfg *config.Config) *Assembler {
	return NewAssemblerWithBaseURL(cfg.Site.BaseURL)
}

// NewAssemblerWithBaseURL is used by tests and tools that have no config.
func NewAssemblerWithBaseURL(baseURL string) *Assembler {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Assembler{baseURL: baseURL}
}

// BaseURL returns the site root used in generated URLs.
func (a *Assembler) BaseURL() string {
	return a.baseURL
}

// WebsiteSchema builds the WebSite schema carried by every page.
func (a *Assembler) WebsiteSchema(seo *entity.SeoSettings, info *entity.BusinessInfo) Schema {
	seo = orEmptySeo(seo)
	info = orEmptyInfo(info)

	return newSchema("WebSite").
		with("name", firstNonEmpty(info.BusinessName, seo.SiteName, defaultName)).
		with("url", firstNonEmpty(info.Website, a.baseURL)).
		with("description", firstNonEmpty(info.Description, seo.SiteDescription, defaultDescription)).
		with("potentialAction", newNode("SearchAction").
			with("target", a.baseURL+"/search?q={search_term_string}"))
}

// LocalBusinessSchema builds the RealEstateAgent schema for the home page.
func (a *Assembler) LocalBusinessSchema(seo *entity.SeoSettings, info *entity.BusinessInfo) Schema {
	seo = orEmptySeo(seo)
	info = orEmptyInfo(info)

	schema := newSchema("RealEstateAgent").
		with("name", firstNonEmpty(info.BusinessName, seo.SiteName, defaultName)).
		with("description", firstNonEmpty(info.Description, seo.SiteDescription, defaultDescription)).
		with("url", firstNonEmpty(info.Website, a.baseURL)).
		withString("telephone", info.Telephone)

	if info.StreetAddress != "" {
		schema = schema.with("address", newNode("PostalAddress").
			with("streetAddress", info.StreetAddress).
			withString("addressLocality", info.City).
			withString("addressRegion", info.State).
			withString("postalCode", info.PostalCode).
			withString("addressCountry", info.Country))
	}

	if info.HasGeo() {
		schema = schema.with("geo", newNode("GeoCoordinates").
			with("latitude", *info.Latitude).
			with("longitude", *info.Longitude))
	}

	if info.OpeningHours != nil {
		schema = schema.with("openingHoursSpecification", openingHoursSpecification(info.OpeningHours))
	}

	return schema.
		withString("priceRange", info.PriceRange).
		withString("image", firstNonEmpty(info.Image, seo.DefaultOgImage))
}

// Breadcrumbs derives the trail for path. Intermediate segments are
// capitalised and the last one takes the page title.
func (a *Assembler) Breadcrumbs(path, title string) []BreadcrumbItem {
	items := []BreadcrumbItem{{Name: "Home", URL: a.baseURL}}
	if path == "/" {
		return items
	}

	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	current := ""

	for i, segment := range segments {
		current += "/" + segment

		name := capitalise(segment)
		if i == len(segments)-1 {
			name = title
		}

		items = append(items, BreadcrumbItem{Name: name, URL: a.baseURL + current})
	}

	return items
}

// PageSchemas returns Website and Breadcrumb schemas for every page, plus
// the local business schema on the home page when business info is known.
func (a *Assembler) PageSchemas(pageType entity.PageType, path, title string, seo *entity.SeoSettings, info *entity.BusinessInfo) []Schema {
	schemas := []Schema{
		a.WebsiteSchema(seo, info),
		BreadcrumbSchema(a.Breadcrumbs(path, title)),
	}

	if pageType == entity.PageTypeHome && info != nil {
		schemas = append(schemas, a.LocalBusinessSchema(seo, info))
	}

	return schemas
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func orEmptySeo(seo *entity.SeoSettings) *entity.SeoSettings {
	if seo == nil {
		return &entity.SeoSettings{}
	}

	return seo
}

func orEmptyInfo(info *entity.BusinessInfo) *entity.BusinessInfo {
	if info == nil {
		return &entity.BusinessInfo{}
	}

	return info
}

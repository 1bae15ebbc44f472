// Package web renders the public site and the admin pages with html/template.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"housecash/internal/domain/entity"
	"housecash/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Layout names defined by templates/partials.
const (
	siteLayout  = "site_layout"
	adminLayout = "admin_layout"
)

// Renderer implements echo.Renderer. Each page is parsed into its own set with
// the shared partials so every page can define "content".
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/partials/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse partials")
	}

	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, dir := range []string{"pages", "admin"} {
		files, err := fs.Glob(templateFS, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, errors.WithStack(err)
		}

		for _, file := range files {
			set, err := base.Clone()
			if err != nil {
				return nil, errors.WithStack(err)
			}
			if _, err := set.ParseFS(templateFS, file); err != nil {
				return nil, errors.Wrapf(err, "failed to parse %s", file)
			}

			name := dir + "/" + strings.TrimSuffix(path.Base(file), ".html")
			r.pages[name] = set
		}
	}

	return r, nil
}

// Render executes the layout for name, e.g. "pages/home" or "admin/seo".
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	set, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	layout := siteLayout
	if strings.HasPrefix(name, "admin/") {
		layout = adminLayout
	}

	return errors.WithStack(set.ExecuteTemplate(w, layout, data))
}

// StaticFS exposes the embedded assets under their own root.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// toJSON is safe inside <script> bodies: json.Marshal escapes <, > and &.
		"toJSON": func(v any) (template.JS, error) {
			raw, err := json.Marshal(v)
			if err != nil {
				return "", errors.WithStack(err)
			}

			return template.JS(raw), nil
		},
		"ago": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return humanize.Time(t)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return t.Format("2 January 2006")
		},
		"isoDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return t.Format("2006-01-02")
		},
		"count": func(v any) string {
			return humanize.Comma(cast.ToInt64(v))
		},
		"stars": func(rating any) string {
			n := cast.ToInt(rating)
			if n < 0 {
				n = 0
			}
			if n > 5 {
				n = 5
			}

			return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
		},
		"coord": func(v *float64) string {
			if v == nil {
				return ""
			}

			return cast.ToString(*v)
		},
		"telHref": func(phone string) template.URL {
			return template.URL("tel:" + strings.Map(func(r rune) rune {
				if r == '+' || (r >= '0' && r <= '9') {
					return r
				}

				return -1
			}, phone))
		},
		"dataURI": func(s string) template.URL {
			if !strings.HasPrefix(s, "data:image/png;base64,") {
				return ""
			}

			return template.URL(s)
		},
		"siteName": func(page *usecase.Page) string {
			if page.Seo != nil && page.Seo.SiteName != "" {
				return page.Seo.SiteName
			}
			if page.Business != nil {
				return page.Business.BusinessName
			}

			return ""
		},
		"weekdays": func() []string {
			return entity.Weekdays
		},
		"hourFor": func(hours entity.OpeningHours, day string) entity.BusinessHour {
			for _, h := range hours {
				if h.Day == day {
					return h
				}
			}

			return entity.BusinessHour{Day: day, IsClosed: true}
		},
	}
}

package web

import (
	"log/slog"
	"net/http"

	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/entity"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DashboardUC   usecase.DashboardUsecase
	BusinessUC    usecase.BusinessUsecase
	LocationUC    usecase.LocationUsecase
	SeoUC         usecase.SeoUsecase
	TestimonialUC usecase.TestimonialUsecase
	SessionUC     usecase.SessionUsecase
	Logger        *slog.Logger
}

// AdminHandler renders the CMS pages. Forms post JSON to the API via admin.js.
type AdminHandler struct {
	dashboardUC   usecase.DashboardUsecase
	businessUC    usecase.BusinessUsecase
	locationUC    usecase.LocationUsecase
	seoUC         usecase.SeoUsecase
	testimonialUC usecase.TestimonialUsecase
	sessionUC     usecase.SessionUsecase
	logger        *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		dashboardUC:   params.DashboardUC,
		businessUC:    params.BusinessUC,
		locationUC:    params.LocationUC,
		seoUC:         params.SeoUC,
		testimonialUC: params.TestimonialUC,
		sessionUC:     params.SessionUC,
		logger:        params.Logger,
	}
}

// AdminView is the data every admin template receives.
type AdminView struct {
	Title       string
	Active      string
	AuthEnabled bool
	Admin       *entity.AdminUser
	Data        any
}

func (h *AdminHandler) render(c echo.Context, active, title string, data any) error {
	view := AdminView{
		Title:       title,
		Active:      active,
		AuthEnabled: h.sessionUC.Enabled(),
		Data:        data,
	}
	view.Admin, _ = deliverycontext.GetAdmin(c.Request().Context())

	return c.Render(http.StatusOK, "admin/"+active, view)
}

func (h *AdminHandler) fail(c echo.Context, err error) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to load admin page", slog.Any("error", err))

	return err
}

// Login shows the sign-in form, or skips straight to the dashboard when
// sessions are disabled.
func (h *AdminHandler) Login(c echo.Context) error {
	if !h.sessionUC.Enabled() {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	return h.render(c, "login", "Log in", nil)
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboardUC.GetStats(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return h.render(c, "dashboard", "Dashboard", stats)
}

func (h *AdminHandler) BusinessInfo(c echo.Context) error {
	info, err := h.businessUC.GetBusinessInfo(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return h.render(c, "business-info", "Business Info", info)
}

func (h *AdminHandler) BusinessHours(c echo.Context) error {
	hours, err := h.businessUC.GetOpeningHours(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return h.render(c, "business-hours", "Business Hours", hours)
}

func (h *AdminHandler) Locations(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return h.render(c, "locations", "Locations", locations)
}

func (h *AdminHandler) SocialProfiles(c echo.Context) error {
	profiles, err := h.businessUC.GetSocialProfiles(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return h.render(c, "social-profiles", "Social Profiles", profiles)
}

func (h *AdminHandler) Seo(c echo.Context) error {
	settings, err := h.seoUC.GetSettings(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return h.render(c, "seo", "SEO Settings", settings)
}

func (h *AdminHandler) Testimonials(c echo.Context) error {
	testimonials, err := h.testimonialUC.ListTestimonials(c.Request().Context(), &usecase.ListTestimonialsInput{})
	if err != nil {
		return h.fail(c, err)
	}

	return h.render(c, "testimonials", "Testimonials", testimonials)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"housecash/internal/delivery/api/middleware"
	"housecash/internal/delivery/api/router/handler"
	"housecash/internal/delivery/web"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler    *handler.BusinessHandler
	SeoHandler         *handler.SeoHandler
	LocationHandler    *handler.LocationHandler
	TestimonialHandler *handler.TestimonialHandler
	EnquiryHandler     *handler.EnquiryHandler
	MediaHandler       *handler.MediaHandler
	SessionHandler     *handler.SessionHandler
	HealthHandler      *handler.HealthHandler
	PageHandler        *web.PageHandler
	AdminHandler       *web.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler    *handler.BusinessHandler
	seoHandler         *handler.SeoHandler
	locationHandler    *handler.LocationHandler
	testimonialHandler *handler.TestimonialHandler
	enquiryHandler     *handler.EnquiryHandler
	mediaHandler       *handler.MediaHandler
	sessionHandler     *handler.SessionHandler
	healthHandler      *handler.HealthHandler
	pageHandler        *web.PageHandler
	adminHandler       *web.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler:    params.BusinessHandler,
		seoHandler:         params.SeoHandler,
		locationHandler:    params.LocationHandler,
		testimonialHandler: params.TestimonialHandler,
		enquiryHandler:     params.EnquiryHandler,
		mediaHandler:       params.MediaHandler,
		sessionHandler:     params.SessionHandler,
		healthHandler:      params.HealthHandler,
		pageHandler:        params.PageHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the API, the admin area and the public pages.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	r.registerAPIRoutes(e)
	r.registerAdminRoutes(e)
	r.registerPublicRoutes(e)
}

func (r *router) registerAPIRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/db-check", r.healthHandler.DBCheck)

	// Session routes stay open so the login form can reach them.
	session := api.Group("/admin")
	{
		session.POST("/login", r.sessionHandler.Login)
		session.POST("/logout", r.sessionHandler.Logout)
	}

	// Public submissions
	api.POST("/enquiries", r.enquiryHandler.SubmitEnquiry)

	// Reads are public, writes need an admin session.
	content := api.Group("", r.authMiddleware.RequireAdminForWrites)
	{
		content.GET("/business-info", r.businessHandler.GetBusinessInfo)
		content.PUT("/business-info", r.businessHandler.UpdateBusinessInfo)

		content.GET("/business-hours", r.businessHandler.GetBusinessHours)
		content.PUT("/business-hours", r.businessHandler.UpdateBusinessHours)

		content.GET("/social-profiles", r.businessHandler.GetSocialProfiles)
		content.PUT("/social-profiles", r.businessHandler.UpdateSocialProfiles)

		content.GET("/locations", r.locationHandler.ListLocations)
		content.PUT("/locations", r.locationHandler.ReplaceLocations)
		content.GET("/locations/geojson", r.locationHandler.LocationsGeoJSON)

		content.GET("/testimonials", r.testimonialHandler.ListTestimonials)
		content.POST("/testimonials", r.testimonialHandler.CreateTestimonial)
		content.GET("/testimonials/:id", r.testimonialHandler.GetTestimonial)
		content.PUT("/testimonials/:id", r.testimonialHandler.UpdateTestimonial)
		content.PATCH("/testimonials/:id", r.testimonialHandler.PatchTestimonial)
		content.DELETE("/testimonials/:id", r.testimonialHandler.DeleteTestimonial)

		content.GET("/seo-settings", r.seoHandler.GetSeoSettings)
		content.POST("/seo-settings", r.seoHandler.SaveSeoSettings)

		content.POST("/media", r.mediaHandler.Upload)
	}

	// Admin only reads
	api.GET("/enquiries", r.enquiryHandler.ListEnquiries, r.authMiddleware.RequireAdmin)
}

func (r *router) registerAdminRoutes(e *echo.Echo) {
	e.GET(middleware.AdminLoginPath, r.adminHandler.Login)

	admin := e.Group("/admin", r.authMiddleware.RequireAdmin)
	{
		admin.GET("", r.adminHandler.Dashboard)
		admin.GET("/dashboard", r.adminHandler.Dashboard)
		admin.GET("/business-info", r.adminHandler.BusinessInfo)
		admin.GET("/business-hours", r.adminHandler.BusinessHours)
		admin.GET("/locations", r.adminHandler.Locations)
		admin.GET("/social-profiles", r.adminHandler.SocialProfiles)
		admin.GET("/seo", r.adminHandler.Seo)
		admin.GET("/testimonials", r.adminHandler.Testimonials)
	}
}

func (r *router) registerPublicRoutes(e *echo.Echo) {
	for _, path := range r.pageHandler.Paths() {
		e.GET(path, r.pageHandler.Page)
	}

	e.GET("/robots.txt", r.pageHandler.Robots)
	e.GET("/sitemap.xml", r.pageHandler.Sitemap)
	e.GET("/media/*", r.mediaHandler.Serve)
	e.StaticFS("/static", web.StaticFS())

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Page not found")
	})
}

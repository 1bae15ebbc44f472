package main

import (
	"context"
	"log/slog"
	"os"

	"housecash/config"
	"housecash/internal/delivery"
	"housecash/internal/delivery/api"
	"housecash/internal/delivery/api/middleware"
	"housecash/internal/delivery/api/router/handler"
	"housecash/internal/delivery/web"
	"housecash/internal/domain/service"
	"housecash/internal/infra/auth"
	"housecash/internal/infra/cache"
	logs "housecash/internal/infra/log"
	"housecash/internal/infra/persistence/postgres"
	"housecash/internal/infra/pubsub"
	"housecash/internal/infra/qrcode"
	"housecash/internal/infra/storage"
	"housecash/internal/jsonld"
	"housecash/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewFromConfig,
		jsonld.NewAssembler,
		storage.NewMediaStorage,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBusinessInfoRepository,
			postgres.NewSeoSettingsRepository,
			postgres.NewLocationRepository,
			postgres.NewTestimonialRepository,
			postgres.NewEnquiryRepository,
			postgres.NewHealthRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBusinessService,
			impl.NewSeoService,
			impl.NewLocationService,
			impl.NewTestimonialService,
			impl.NewEnquiryService,
			impl.NewMediaService,
			impl.NewSessionService,
			impl.NewHealthService,
			impl.NewPageService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBusinessHandler,
			handler.NewSeoHandler,
			handler.NewLocationHandler,
			handler.NewTestimonialHandler,
			handler.NewEnquiryHandler,
			handler.NewMediaHandler,
			handler.NewSessionHandler,
			handler.NewHealthHandler,
			web.NewPageHandler,
			web.NewAdminHandler,
			web.NewRenderer,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

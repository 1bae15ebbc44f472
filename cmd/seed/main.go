// Command seed creates the schema and the default site content.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"housecash/config"
	"housecash/internal/content"
	"housecash/internal/domain/entity"
	"housecash/internal/domain/repository"
	logs "housecash/internal/infra/log"
	"housecash/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

func main() {
	withTestimonials := flag.Bool("testimonials", false, "Insert sample testimonials when none exist")
	skipMigrate := flag.Bool("skip-migrate", false, "Only insert default rows")
	timeout := flag.Duration("timeout", time.Minute, "Overall timeout")
	flag.Parse()

	if err := run(*withTestimonials, *skipMigrate, *timeout); err != nil {
		slog.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(withTestimonials, skipMigrate bool, timeout time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if !skipMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("Schema migrated")
	}

	s := &seeder{
		businessRepo:    postgres.NewBusinessInfoRepository(db),
		seoRepo:         postgres.NewSeoSettingsRepository(db),
		testimonialRepo: postgres.NewTestimonialRepository(db),
		defaultName:     cfg.Site.DefaultName,
		logger:          logger,
	}

	return s.seed(ctx, withTestimonials)
}

type seeder struct {
	businessRepo    repository.BusinessInfoRepository
	seoRepo         repository.SeoSettingsRepository
	testimonialRepo repository.TestimonialRepository
	defaultName     string
	logger          *slog.Logger
}

// seed only fills what is missing, so running it twice changes nothing.
func (s *seeder) seed(ctx context.Context, withTestimonials bool) error {
	if _, err := s.seoRepo.FindOrCreate(ctx, entity.DefaultSeoSettings()); err != nil {
		return errors.Wrap(err, "failed to seed SEO settings")
	}

	info, err := s.businessRepo.Find(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read business info")
	}
	if info == nil {
		info = &entity.BusinessInfo{
			BusinessName: s.defaultName,
			Country:      "Australia",
			AreaServed:   "Melbourne",
			OpeningHours: entity.DefaultOpeningHours(),
		}
		if err := s.businessRepo.Upsert(ctx, info); err != nil {
			return errors.Wrap(err, "failed to seed business info")
		}
		s.logger.Info("Business info created", slog.String("name", info.BusinessName))
	}

	if !withTestimonials {
		return nil
	}

	count, err := s.testimonialRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count testimonials")
	}
	if count > 0 {
		s.logger.Info("Testimonials already present", slog.Int64("count", count))

		return nil
	}

	for _, testimonial := range content.FallbackTestimonials() {
		testimonial.Date = time.Now().UTC()
		if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
			return errors.Wrapf(err, "failed to seed testimonial %q", testimonial.Name)
		}
	}
	s.logger.Info("Sample testimonials created", slog.Int("count", len(content.FallbackTestimonials())))

	return nil
}

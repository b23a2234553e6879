package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/edunova/backend/internal/app/models"
	appRepos "github.com/edunova/backend/internal/app/repositories"
	"github.com/edunova/backend/internal/pkg/apperrors"
	"github.com/edunova/backend/internal/pkg/auth"
)

// Default admin account created on an empty database. The password must be
// changed after first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@edunova.app"
)

// CreateDefaultData seeds the default admin account, settings record and a
// couple of sample catalog entries. Every step is idempotent, so running it
// on every startup is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	settingsRepo := appRepos.NewSettingsRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		hash, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}
		admin := &appModels.Admin{
			Username: defaultAdminUsername,
			Email:    defaultAdminEmail,
			Password: hash,
			FullName: "Default Administrator",
			Role:     "admin",
			IsActive: true,
		}
		if _, err := adminRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrAdminExists) {
			lgr.Error().Err(err).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Warn().Str("username", defaultAdminUsername).Msg("Default admin created, change the password after first login")
		}
	}

	// --- Settings record --- //
	if err := settingsRepo.EnsureDefaults(ctx, &appModels.AppSettings{
		SiteName:            "EduNova Institute",
		ContactEmail:        defaultAdminEmail,
		EnableRegistrations: true,
	}); err != nil {
		lgr.Error().Err(err).Msg("Error seeding settings")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Sample courses --- //
	sampleCourses := []appModels.Course{
		{Name: "Mathematics Foundation", Code: "MATH101", Duration: "6 months", Fee: 1500, Capacity: 40, Status: appModels.CourseStatusActive},
		{Name: "Science Explorer", Code: "SCI101", Duration: "6 months", Fee: 1800, Capacity: 35, Status: appModels.CourseStatusActive},
	}
	for i := range sampleCourses {
		sampleCourses[i].CreatedBy = 1
		if _, err := courseRepo.Create(ctx, &sampleCourses[i]); err != nil && !errors.Is(err, apperrors.ErrCourseCodeExists) {
			lgr.Error().Err(err).Str("code", sampleCourses[i].Code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check completed")
	}
	return finalErr
}

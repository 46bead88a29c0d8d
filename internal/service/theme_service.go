package service

import (
	"context"
	"fmt"
	"time"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/rs/zerolog"
)

// themeService implements ThemeService.
type themeService struct {
	repo   repository.ThemeRepository
	logger zerolog.Logger
}

// NewThemeService creates a new theme service.
func NewThemeService(repo repository.ThemeRepository, logger zerolog.Logger) ThemeService {
	return &themeService{
		repo:   repo,
		logger: logger.With().Str("service", "theme").Logger(),
	}
}

// Themes retrieves all themes, seeding the default on first read.
func (s *themeService) Themes(ctx context.Context) ([]model.Theme, error) {
	themes, err := s.repo.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	if len(themes) == 0 {
		def := model.DefaultTheme()
		def.UpdatedAt = time.Now()
		if err := s.repo.UpsertTheme(ctx, &def); err != nil {
			return nil, fmt.Errorf("failed to seed default theme: %w", err)
		}
		themes = []model.Theme{def}
	}
	return themes, nil
}

// Theme retrieves a theme by ID.
func (s *themeService) Theme(ctx context.Context, id string) (*model.Theme, error) {
	theme, err := s.repo.GetTheme(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, model.ErrThemeNotFound
	}
	return theme, nil
}

// SaveTheme creates or replaces a theme. Missing colours fall back to the
// default palette so a partial admin payload never produces a blank theme.
func (s *themeService) SaveTheme(ctx context.Context, theme model.Theme) (*model.Theme, error) {
	if theme.ID == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Theme ID is required")
	}

	def := model.DefaultTheme()
	if theme.Name == "" {
		theme.Name = theme.ID
	}
	if theme.PrimaryColor == "" {
		theme.PrimaryColor = def.PrimaryColor
	}
	if theme.SecondaryColor == "" {
		theme.SecondaryColor = def.SecondaryColor
	}
	if theme.AccentColor == "" {
		theme.AccentColor = def.AccentColor
	}
	theme.UpdatedAt = time.Now()

	if err := s.repo.UpsertTheme(ctx, &theme); err != nil {
		s.logger.Error().Err(err).Str("theme_id", theme.ID).Msg("failed to save theme")
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}

	s.logger.Info().Str("theme_id", theme.ID).Msg("theme saved")
	return &theme, nil
}

// DeleteTheme removes a theme. The default theme can never be deleted.
func (s *themeService) DeleteTheme(ctx context.Context, id string) error {
	if id == model.DefaultThemeID {
		return model.ErrThemeProtected
	}

	found, err := s.repo.DeleteTheme(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	if !found {
		return model.ErrThemeNotFound
	}

	s.logger.Info().Str("theme_id", id).Msg("theme deleted")
	return nil
}

// ActivateTheme marks a theme as the active one.
func (s *themeService) ActivateTheme(ctx context.Context, id string) (*model.Theme, error) {
	found, err := s.repo.ActivateTheme(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to activate theme: %w", err)
	}
	if !found {
		return nil, model.ErrThemeNotFound
	}

	s.logger.Info().Str("theme_id", id).Msg("theme activated")
	return s.Theme(ctx, id)
}

// ChristmasStatus retrieves the seasonal mode, creating the default record
// on first read.
func (s *themeService) ChristmasStatus(ctx context.Context) (*model.ChristmasMode, error) {
	mode, err := s.repo.GetChristmasMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get christmas mode: %w", err)
	}
	if mode == nil {
		mode = &model.ChristmasMode{
			Enabled:           false,
			Discount:          25,
			SnowflakesEnabled: true,
			UpdatedAt:         time.Now(),
		}
		if err := s.repo.SaveChristmasMode(ctx, mode); err != nil {
			return nil, fmt.Errorf("failed to seed christmas mode: %w", err)
		}
	}
	return mode, nil
}

// UpdateChristmas applies a partial update to the seasonal mode.
func (s *themeService) UpdateChristmas(ctx context.Context, update model.ChristmasUpdate, actor string) (*model.ChristmasMode, error) {
	if update.Discount != nil && (*update.Discount < 0 || *update.Discount > 100) {
		return nil, model.ErrInvalidDiscount
	}

	mode, err := s.ChristmasStatus(ctx)
	if err != nil {
		return nil, err
	}

	if update.Enabled != nil {
		mode.Enabled = *update.Enabled
	}
	if update.Discount != nil {
		mode.Discount = *update.Discount
	}
	if update.SnowflakesEnabled != nil {
		mode.SnowflakesEnabled = *update.SnowflakesEnabled
	}
	mode.UpdatedBy = actor
	mode.UpdatedAt = time.Now()

	if err := s.repo.SaveChristmasMode(ctx, mode); err != nil {
		return nil, fmt.Errorf("failed to save christmas mode: %w", err)
	}

	s.logger.Info().
		Bool("enabled", mode.Enabled).
		Int("discount", mode.Discount).
		Str("actor", actor).
		Msg("christmas mode updated")

	return mode, nil
}

// SetChristmasDiscount sets the seasonal discount percentage.
func (s *themeService) SetChristmasDiscount(ctx context.Context, discount int, actor string) (*model.ChristmasMode, error) {
	return s.UpdateChristmas(ctx, model.ChristmasUpdate{Discount: &discount}, actor)
}

package repository

import (
	"context"
	"fmt"

	"storefront-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// themeRepository implements the ThemeRepository interface using PostgreSQL.
// The seasonal mode is a single row keyed by a fixed ID.
type themeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewThemeRepository creates a new PostgreSQL-backed theme repository.
func NewThemeRepository(pool *pgxpool.Pool, logger zerolog.Logger) ThemeRepository {
	return &themeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "theme").Logger(),
	}
}

const themeColumns = `
	id, name, primary_color, secondary_color, accent_color, enable_snow, enable_particles, background_image, description, active, updated_at
`

// ListThemes retrieves all themes.
func (r *themeRepository) ListThemes(ctx context.Context) ([]model.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM themes ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query themes")
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	var themes []model.Theme
	for rows.Next() {
		theme, err := r.scanTheme(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan theme row")
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		themes = append(themes, *theme)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating theme rows")
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}

	return themes, nil
}

// GetTheme retrieves a theme by ID.
func (r *themeRepository) GetTheme(ctx context.Context, id string) (*model.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM themes WHERE id = $1`

	theme, err := r.scanTheme(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("theme_id", id).Msg("failed to query theme")
		return nil, fmt.Errorf("failed to query theme: %w", err)
	}

	return theme, nil
}

// UpsertTheme creates or replaces a theme.
func (r *themeRepository) UpsertTheme(ctx context.Context, theme *model.Theme) error {
	query := `
		INSERT INTO themes (` + themeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			accent_color = EXCLUDED.accent_color,
			enable_snow = EXCLUDED.enable_snow,
			enable_particles = EXCLUDED.enable_particles,
			background_image = EXCLUDED.background_image,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		theme.ID, theme.Name, theme.PrimaryColor, theme.SecondaryColor, theme.AccentColor,
		theme.EnableSnow, theme.EnableParticles, theme.BackgroundImage, theme.Description,
		theme.Active, theme.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("theme_id", theme.ID).Msg("failed to upsert theme")
		return fmt.Errorf("failed to upsert theme: %w", err)
	}

	return nil
}

// DeleteTheme removes a theme.
func (r *themeRepository) DeleteTheme(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM themes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("theme_id", id).Msg("failed to delete theme")
		return false, fmt.Errorf("failed to delete theme: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ActivateTheme marks one theme active and all others inactive, atomically.
func (r *themeRepository) ActivateTheme(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if _, err = tx.Exec(ctx, `UPDATE themes SET active = false WHERE active`); err != nil {
		r.logger.Error().Err(err).Msg("failed to deactivate themes")
		return false, fmt.Errorf("failed to deactivate themes: %w", err)
	}

	tag, err := tx.Exec(ctx, `UPDATE themes SET active = true WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("theme_id", id).Msg("failed to activate theme")
		return false, fmt.Errorf("failed to activate theme: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetChristmasMode retrieves the seasonal-mode singleton, or nil if it has
// never been saved.
func (r *themeRepository) GetChristmasMode(ctx context.Context) (*model.ChristmasMode, error) {
	query := `
		SELECT enabled, discount, snowflakes_enabled, updated_by, updated_at
		FROM christmas_mode
		WHERE id = 1
	`

	var mode model.ChristmasMode
	err := r.pool.QueryRow(ctx, query).Scan(
		&mode.Enabled, &mode.Discount, &mode.SnowflakesEnabled, &mode.UpdatedBy, &mode.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query christmas mode")
		return nil, fmt.Errorf("failed to query christmas mode: %w", err)
	}

	return &mode, nil
}

// SaveChristmasMode creates or replaces the seasonal-mode singleton.
func (r *themeRepository) SaveChristmasMode(ctx context.Context, mode *model.ChristmasMode) error {
	query := `
		INSERT INTO christmas_mode (id, enabled, discount, snowflakes_enabled, updated_by, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			discount = EXCLUDED.discount,
			snowflakes_enabled = EXCLUDED.snowflakes_enabled,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		mode.Enabled, mode.Discount, mode.SnowflakesEnabled, mode.UpdatedBy, mode.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to save christmas mode")
		return fmt.Errorf("failed to save christmas mode: %w", err)
	}

	return nil
}

// scanTheme reads one theme row in themeColumns order.
func (r *themeRepository) scanTheme(row pgx.Row) (*model.Theme, error) {
	var t model.Theme
	err := row.Scan(
		&t.ID, &t.Name, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor,
		&t.EnableSnow, &t.EnableParticles, &t.BackgroundImage, &t.Description,
		&t.Active, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package service

import (
	"context"
	"testing"

	"storefront-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockThemeRepository is a mock implementation of ThemeRepository.
type MockThemeRepository struct {
	mock.Mock
}

func (m *MockThemeRepository) ListThemes(ctx context.Context) ([]model.Theme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Theme), args.Error(1)
}

func (m *MockThemeRepository) GetTheme(ctx context.Context, id string) (*model.Theme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theme), args.Error(1)
}

func (m *MockThemeRepository) UpsertTheme(ctx context.Context, theme *model.Theme) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockThemeRepository) DeleteTheme(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockThemeRepository) ActivateTheme(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockThemeRepository) GetChristmasMode(ctx context.Context) (*model.ChristmasMode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChristmasMode), args.Error(1)
}

func (m *MockThemeRepository) SaveChristmasMode(ctx context.Context, mode *model.ChristmasMode) error {
	args := m.Called(ctx, mode)
	return args.Error(0)
}

func newThemeService(repo *MockThemeRepository) ThemeService {
	return NewThemeService(repo, zerolog.Nop())
}

func TestThemeService_Themes_SeedsDefault(t *testing.T) {
	repo := new(MockThemeRepository)
	svc := newThemeService(repo)

	repo.On("ListThemes", mock.Anything).Return([]model.Theme{}, nil)
	repo.On("UpsertTheme", mock.Anything, mock.MatchedBy(func(th *model.Theme) bool {
		return th.ID == model.DefaultThemeID && th.Active
	})).Return(nil)

	themes, err := svc.Themes(context.Background())
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "#dc2626", themes[0].PrimaryColor)
	repo.AssertExpectations(t)
}

func TestThemeService_SaveTheme_FillsDefaults(t *testing.T) {
	repo := new(MockThemeRepository)
	svc := newThemeService(repo)

	repo.On("UpsertTheme", mock.Anything, mock.Anything).Return(nil)

	saved, err := svc.SaveTheme(context.Background(), model.Theme{ID: "autumn", PrimaryColor: "#aa5500"})
	require.NoError(t, err)

	assert.Equal(t, "#aa5500", saved.PrimaryColor)
	assert.Equal(t, "#ffffff", saved.SecondaryColor)
	assert.Equal(t, "#3b82f6", saved.AccentColor)
	assert.Equal(t, "autumn", saved.Name)
}

func TestThemeService_DeleteTheme_ProtectsDefault(t *testing.T) {
	repo := new(MockThemeRepository)
	svc := newThemeService(repo)

	err := svc.DeleteTheme(context.Background(), model.DefaultThemeID)
	assert.ErrorIs(t, err, model.ErrThemeProtected)
	repo.AssertNotCalled(t, "DeleteTheme")
}

func TestThemeService_DeleteTheme(t *testing.T) {
	repo := new(MockThemeRepository)
	svc := newThemeService(repo)

	repo.On("DeleteTheme", mock.Anything, "autumn").Return(true, nil)
	assert.NoError(t, svc.DeleteTheme(context.Background(), "autumn"))

	repo.On("DeleteTheme", mock.Anything, "missing").Return(false, nil)
	assert.ErrorIs(t, svc.DeleteTheme(context.Background(), "missing"), model.ErrThemeNotFound)
}

func TestThemeService_ChristmasStatus_SeedsDefaults(t *testing.T) {
	repo := new(MockThemeRepository)
	svc := newThemeService(repo)

	repo.On("GetChristmasMode", mock.Anything).Return(nil, nil)
	repo.On("SaveChristmasMode", mock.Anything, mock.Anything).Return(nil)

	mode, err := svc.ChristmasStatus(context.Background())
	require.NoError(t, err)

	assert.False(t, mode.Enabled)
	assert.Equal(t, 25, mode.Discount)
	assert.True(t, mode.SnowflakesEnabled)
}

func TestThemeService_UpdateChristmas(t *testing.T) {
	repo := new(MockThemeRepository)
	svc := newThemeService(repo)

	repo.On("GetChristmasMode", mock.Anything).Return(&model.ChristmasMode{Discount: 25}, nil)
	repo.On("SaveChristmasMode", mock.Anything, mock.Anything).Return(nil)

	enabled := true
	discount := 40
	mode, err := svc.UpdateChristmas(context.Background(), model.ChristmasUpdate{
		Enabled: &enabled, Discount: &discount,
	}, "admin-1")
	require.NoError(t, err)

	assert.True(t, mode.Enabled)
	assert.Equal(t, 40, mode.Discount)
	assert.Equal(t, "admin-1", mode.UpdatedBy)
}

func TestThemeService_UpdateChristmas_InvalidDiscount(t *testing.T) {
	repo := new(MockThemeRepository)
	svc := newThemeService(repo)

	for _, d := range []int{-1, 101} {
		discount := d
		_, err := svc.UpdateChristmas(context.Background(), model.ChristmasUpdate{Discount: &discount}, "admin-1")
		assert.ErrorIs(t, err, model.ErrInvalidDiscount)
	}
	repo.AssertNotCalled(t, "SaveChristmasMode")
}

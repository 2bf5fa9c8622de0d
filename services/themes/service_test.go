package themes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/services"
)

// MockThemeRepository is a mock implementation of repositories.ThemeRepository
type MockThemeRepository struct {
	mock.Mock
}

func (m *MockThemeRepository) Get(ctx context.Context, tenantID string) (*models.ThemeOverrides, error) {
	args := m.Called(ctx, tenantID)
	if overrides := args.Get(0); overrides != nil {
		return overrides.(*models.ThemeOverrides), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockThemeRepository) Upsert(ctx context.Context, tenantID string, overrides *models.ThemeOverrides) error {
	args := m.Called(ctx, tenantID, overrides)
	return args.Error(0)
}

func (m *MockThemeRepository) Delete(ctx context.Context, tenantID string) (bool, error) {
	args := m.Called(ctx, tenantID)
	return args.Bool(0), args.Error(1)
}

func testTenant() *models.Tenant {
	return &models.Tenant{
		ID: "corp",
		Theme: models.ThemeConfig{
			PrimaryColor: "#1a73e8",
			DesignTokenSet: models.DesignTokenSet{
				Colors: models.TokenGroup{
					"background": "#ffffff",
					"text":       "#202124",
				},
			},
		},
	}
}

func TestThemeService_Resolve(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("no stored overrides resolves to base", func(t *testing.T) {
		mockRepo := new(MockThemeRepository)
		mockRepo.On("Get", ctx, "corp").Return(nil, nil)

		service := NewService(mockRepo, logger)
		resolved, err := service.Resolve(ctx, testTenant())

		require.NoError(t, err)
		assert.Equal(t, "#1a73e8", resolved.PrimaryColor)
		assert.Equal(t, "#ffffff", resolved.Colors["background"])
	})

	t.Run("stored overrides are applied", func(t *testing.T) {
		mockRepo := new(MockThemeRepository)
		mockRepo.On("Get", ctx, "corp").Return(&models.ThemeOverrides{
			Colors: models.TokenGroup{"background": "#000000"},
		}, nil)

		service := NewService(mockRepo, logger)
		resolved, err := service.Resolve(ctx, testTenant())

		require.NoError(t, err)
		assert.Equal(t, "#000000", resolved.Colors["background"])
		assert.Equal(t, "#202124", resolved.Colors["text"])
	})

	t.Run("repository failure yields internal error", func(t *testing.T) {
		mockRepo := new(MockThemeRepository)
		mockRepo.On("Get", ctx, "corp").Return(nil, errors.New("connection lost"))

		service := NewService(mockRepo, logger)
		_, err := service.Resolve(ctx, testTenant())

		require.Error(t, err)
		assert.True(t, services.IsInternalError(err))
	})
}

func TestThemeService_SaveModified(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("stores only the diff against the base", func(t *testing.T) {
		tenant := testTenant()
		modified := tenant.Theme
		modified.Colors = models.TokenGroup{
			"background": "#000000",
			"text":       "#202124",
		}

		mockRepo := new(MockThemeRepository)
		mockRepo.On("Upsert", ctx, "corp", mock.MatchedBy(func(o *models.ThemeOverrides) bool {
			return len(o.Colors) == 1 && o.Colors["background"] == "#000000" && o.PrimaryColor == ""
		})).Return(nil)

		service := NewService(mockRepo, logger)
		diff, err := service.SaveModified(ctx, tenant, modified)

		require.NoError(t, err)
		require.NotNil(t, diff)
		assert.Equal(t, models.TokenGroup{"background": "#000000"}, diff.Colors)
		mockRepo.AssertExpectations(t)
	})

	t.Run("submitting the base clears stored overrides", func(t *testing.T) {
		tenant := testTenant()

		mockRepo := new(MockThemeRepository)
		mockRepo.On("Delete", ctx, "corp").Return(true, nil)

		service := NewService(mockRepo, logger)
		diff, err := service.SaveModified(ctx, tenant, tenant.Theme)

		require.NoError(t, err)
		assert.Nil(t, diff)
		mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestThemeService_Clear(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("clears stored overrides", func(t *testing.T) {
		mockRepo := new(MockThemeRepository)
		mockRepo.On("Delete", ctx, "corp").Return(true, nil)

		service := NewService(mockRepo, logger)
		assert.NoError(t, service.Clear(ctx, testTenant()))
	})

	t.Run("nothing stored yields not found", func(t *testing.T) {
		mockRepo := new(MockThemeRepository)
		mockRepo.On("Delete", ctx, "corp").Return(false, nil)

		service := NewService(mockRepo, logger)
		err := service.Clear(ctx, testTenant())

		require.Error(t, err)
		assert.True(t, services.IsNotFoundError(err))
	})
}

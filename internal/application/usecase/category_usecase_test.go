package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Insert(ctx context.Context, category *entity.ProductCategory) error {
	return m.Called(ctx, category).Error(0)
}
func (m *mockCategoryRepo) InsertTranslations(ctx context.Context, translations []entity.CategoryTranslation) error {
	return m.Called(ctx, translations).Error(0)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*entity.ProductCategory, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.ProductCategory)
	return category, args.Error(1)
}
func (m *mockCategoryRepo) List(ctx context.Context) ([]entity.CategoryWithTranslations, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]entity.CategoryWithTranslations)
	return categories, args.Error(1)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func categoryTranslations() []dto.TranslationInput {
	return []dto.TranslationInput{{LanguageID: "lang-en", Name: "Shoes"}}
}

func TestCategoryCreate_Raiz_InsertaConTraducciones(t *testing.T) {
	categories := new(mockCategoryRepo)
	uc := usecase.NewCategoryUseCase(categories, &fakeCatalogTxRunner{categories: categories})

	categories.On("Insert", mock.Anything, mock.MatchedBy(func(c *entity.ProductCategory) bool {
		return c.ID != "" && c.ParentID == nil
	})).Return(nil)
	categories.On("InsertTranslations", mock.Anything, mock.MatchedBy(func(trs []entity.CategoryTranslation) bool {
		return len(trs) == 1 && trs[0].Name == "Shoes"
	})).Return(nil)

	id, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		Translations: categoryTranslations(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	categories.AssertExpectations(t)
}

func TestCategoryCreate_BajoPadreExistente_OK(t *testing.T) {
	categories := new(mockCategoryRepo)
	uc := usecase.NewCategoryUseCase(categories, &fakeCatalogTxRunner{categories: categories})

	padre := "cat-raiz"
	categories.On("GetByID", mock.Anything, "cat-raiz").
		Return(&entity.ProductCategory{ID: "cat-raiz"}, nil)
	categories.On("Insert", mock.Anything, mock.MatchedBy(func(c *entity.ProductCategory) bool {
		return c.ParentID != nil && *c.ParentID == "cat-raiz"
	})).Return(nil)
	categories.On("InsertTranslations", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		ParentID:     &padre,
		Translations: categoryTranslations(),
	})
	assert.NoError(t, err)
}

func TestCategoryCreate_PadreInexistente_RetornaErrValidation(t *testing.T) {
	categories := new(mockCategoryRepo)
	uc := usecase.NewCategoryUseCase(categories, &fakeCatalogTxRunner{categories: categories})

	padre := "fantasma"
	categories.On("GetByID", mock.Anything, "fantasma").Return(nil, nil)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		ParentID:     &padre,
		Translations: categoryTranslations(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	categories.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// Un padre en el tercer nivel dejaría al hijo en el cuarto: se rechaza.
func TestCategoryCreate_ProfundidadMaximaSuperada_RetornaErrValidation(t *testing.T) {
	categories := new(mockCategoryRepo)
	uc := usecase.NewCategoryUseCase(categories, &fakeCatalogTxRunner{categories: categories})

	nivel1 := "cat-1"
	nivel2 := "cat-2"
	categories.On("GetByID", mock.Anything, "cat-3").
		Return(&entity.ProductCategory{ID: "cat-3", ParentID: &nivel2}, nil)
	categories.On("GetByID", mock.Anything, "cat-2").
		Return(&entity.ProductCategory{ID: "cat-2", ParentID: &nivel1}, nil)
	categories.On("GetByID", mock.Anything, "cat-1").
		Return(&entity.ProductCategory{ID: "cat-1"}, nil)

	padre := "cat-3"
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		ParentID:     &padre,
		Translations: categoryTranslations(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	categories.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// Un padre en el segundo nivel deja al hijo en el tercero: todavía permitido.
func TestCategoryCreate_TercerNivel_OK(t *testing.T) {
	categories := new(mockCategoryRepo)
	uc := usecase.NewCategoryUseCase(categories, &fakeCatalogTxRunner{categories: categories})

	nivel1 := "cat-1"
	categories.On("GetByID", mock.Anything, "cat-2").
		Return(&entity.ProductCategory{ID: "cat-2", ParentID: &nivel1}, nil)
	categories.On("GetByID", mock.Anything, "cat-1").
		Return(&entity.ProductCategory{ID: "cat-1"}, nil)
	categories.On("Insert", mock.Anything, mock.Anything).Return(nil)
	categories.On("InsertTranslations", mock.Anything, mock.Anything).Return(nil)

	padre := "cat-2"
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		ParentID:     &padre,
		Translations: categoryTranslations(),
	})
	assert.NoError(t, err)
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Insert(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}
func (m *mockProductRepo) InsertStock(ctx context.Context, stock *entity.ProductStock) error {
	return m.Called(ctx, stock).Error(0)
}
func (m *mockProductRepo) InsertTranslations(ctx context.Context, translations []entity.ProductTranslation) error {
	return m.Called(ctx, translations).Error(0)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*entity.ProductWithDetails, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.ProductWithDetails)
	return product, args.Error(1)
}
func (m *mockProductRepo) List(ctx context.Context) ([]entity.ProductWithDetails, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]entity.ProductWithDetails)
	return products, args.Error(1)
}
func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}
func (m *mockProductRepo) RegisterStock(ctx context.Context, productID string, importDelta, exportDelta int) error {
	return m.Called(ctx, productID, importDelta, exportDelta).Error(0)
}
func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// fakeCatalogTxRunner ejecuta el callback con los mocks, sin transacción real.
type fakeCatalogTxRunner struct {
	products   *mockProductRepo
	categories *mockCategoryRepo
}

func (f *fakeCatalogTxRunner) RunCatalog(ctx context.Context, fn func(repository.ProductRepository, repository.CategoryRepository) error) error {
	return fn(f.products, f.categories)
}

func TestProductCreate_InsertaProductoStockYTraducciones(t *testing.T) {
	products := new(mockProductRepo)
	uc := usecase.NewProductUseCase(products, &fakeCatalogTxRunner{products: products})

	products.On("Insert", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID != "" && p.Code == "ZAP-001" &&
			p.Status == entity.ProductStatusDraft && // default cuando no viene estado
			p.Price.Equal(decimal.RequireFromString("19.90"))
	})).Return(nil)
	products.On("InsertStock", mock.Anything, mock.MatchedBy(func(s *entity.ProductStock) bool {
		return s.ImportQuantity == 5 && s.ExportQuantity == 0
	})).Return(nil)
	products.On("InsertTranslations", mock.Anything, mock.MatchedBy(func(trs []entity.ProductTranslation) bool {
		return len(trs) == 1 && trs[0].LanguageID == "lang-en" && trs[0].Name == "Shoes"
	})).Return(nil)

	id, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code:          "ZAP-001",
		Price:         decimal.RequireFromString("19.90"),
		InitialImport: 5,
		Translations:  []dto.TranslationInput{{LanguageID: "lang-en", Name: "Shoes"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	products.AssertExpectations(t)
}

func TestProductCreate_SinTraducciones_NoInsertaTraducciones(t *testing.T) {
	products := new(mockProductRepo)
	uc := usecase.NewProductUseCase(products, &fakeCatalogTxRunner{products: products})

	products.On("Insert", mock.Anything, mock.Anything).Return(nil)
	products.On("InsertStock", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code:  "ZAP-002",
		Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	products.AssertNotCalled(t, "InsertTranslations", mock.Anything, mock.Anything)
}

// Crear y leer devuelven el mismo stock y las mismas traducciones.
func TestProductGetByID_DevuelveStockYTraducciones(t *testing.T) {
	products := new(mockProductRepo)
	uc := usecase.NewProductUseCase(products, &fakeCatalogTxRunner{products: products})

	detalle := &entity.ProductWithDetails{
		Product: entity.Product{
			ID:        "prod-1",
			Code:      "ZAP-001",
			Price:     decimal.RequireFromString("19.90"),
			Status:    entity.ProductStatusPublished,
			CreatedAt: time.Now().UTC(),
		},
		Stock:        entity.ProductStock{ProductID: "prod-1", ImportQuantity: 5, ExportQuantity: 2, StockQuantity: 3},
		Translations: []entity.ProductTranslation{{ProductID: "prod-1", LanguageID: "lang-en", Name: "Shoes"}},
	}
	products.On("GetByID", mock.Anything, "prod-1").Return(detalle, nil)

	got, err := uc.GetByID(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock.StockQuantity)
	require.Len(t, got.Translations, 1)
	assert.Equal(t, "Shoes", got.Translations[0].Name)
}

func TestProductGetByID_Inexistente_RetornaErrNotFound(t *testing.T) {
	products := new(mockProductRepo)
	uc := usecase.NewProductUseCase(products, &fakeCatalogTxRunner{products: products})

	products.On("GetByID", mock.Anything, "fantasma").Return(nil, nil)

	_, err := uc.GetByID(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRegisterStock_PasaDeltasAlRepo(t *testing.T) {
	products := new(mockProductRepo)
	uc := usecase.NewProductUseCase(products, &fakeCatalogTxRunner{products: products})

	products.On("RegisterStock", mock.Anything, "prod-1", 3, 1).Return(nil)

	err := uc.RegisterStock(context.Background(), "prod-1", dto.RegisterStockRequest{
		ImportQuantity: 3,
		ExportQuantity: 1,
	})
	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestProductUpdate_Inexistente_RetornaErrNotFound(t *testing.T) {
	products := new(mockProductRepo)
	uc := usecase.NewProductUseCase(products, &fakeCatalogTxRunner{products: products})

	products.On("GetByID", mock.Anything, "fantasma").Return(nil, nil)

	err := uc.Update(context.Background(), "fantasma", dto.UpdateProductRequest{
		Code:   "ZAP-001",
		Price:  decimal.NewFromInt(10),
		Status: entity.ProductStatusPublished,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

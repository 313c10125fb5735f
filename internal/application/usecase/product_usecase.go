package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// ProductUseCase gestión del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	txRunner    CatalogTxRunner
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, txRunner CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, txRunner: txRunner}
}

// Create inserta el producto, su fila de stock y sus traducciones en una
// sola transacción. El stock inicial entra como cantidad importada.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (string, error) {
	status := in.Status
	if status == "" {
		status = entity.ProductStatusDraft
	}
	product := &entity.Product{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Price:      in.Price,
		Status:     status,
		CategoryID: in.CategoryID,
		CreatedAt:  time.Now().UTC(),
	}
	translations := make([]entity.ProductTranslation, 0, len(in.Translations))
	for _, tr := range in.Translations {
		translations = append(translations, entity.ProductTranslation{
			ProductID:   product.ID,
			LanguageID:  tr.LanguageID,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}
	err := uc.txRunner.RunCatalog(ctx, func(products repository.ProductRepository, _ repository.CategoryRepository) error {
		if err := products.Insert(ctx, product); err != nil {
			return err
		}
		stock := &entity.ProductStock{ProductID: product.ID, ImportQuantity: in.InitialImport}
		if err := products.InsertStock(ctx, stock); err != nil {
			return err
		}
		if len(translations) == 0 {
			return nil
		}
		return products.InsertTranslations(ctx, translations)
	})
	if err != nil {
		return "", err
	}
	return product.ID, nil
}

// GetByID devuelve el producto con stock y traducciones, o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.ProductWithDetails, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve todos los productos con stock y traducciones.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.ProductWithDetails, error) {
	return uc.productRepo.List(ctx)
}

// Update actualiza código, precio, estado y categoría del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) error {
	existing, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	product := existing.Product
	product.Code = in.Code
	product.Price = in.Price
	product.Status = in.Status
	product.CategoryID = in.CategoryID
	return uc.productRepo.Update(ctx, &product)
}

// RegisterStock acumula cantidades importadas/exportadas en el stock del
// producto; la columna generada stock_quantity refleja la diferencia.
func (uc *ProductUseCase) RegisterStock(ctx context.Context, id string, in dto.RegisterStockRequest) error {
	return uc.productRepo.RegisterStock(ctx, id, in.ImportQuantity, in.ExportQuantity)
}

// Delete borra el producto; stock, traducciones e imágenes caen por cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.productRepo.Delete(ctx, id)
}

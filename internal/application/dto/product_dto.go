package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// TranslationInput traducción de producto/categoría en un idioma.
type TranslationInput struct {
	LanguageID  string  `json:"language_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CreateProductRequest entrada para crear un producto con traducciones y
// stock inicial opcional (cantidad importada).
type CreateProductRequest struct {
	Code          string             `json:"code"`
	Price         decimal.Decimal    `json:"price"`
	Status        string             `json:"status,omitempty"`
	CategoryID    *string            `json:"product_category_id,omitempty"`
	Translations  []TranslationInput `json:"translations"`
	InitialImport int                `json:"initial_import,omitempty"`
}

// Validate code no vacío, precio no negativo, estado en la enumeración (o
// vacío para usar el default draft) y traducciones con idioma y nombre.
func (r CreateProductRequest) Validate() error {
	if r.Code == "" {
		return domain.ErrValidation
	}
	if r.Price.IsNegative() {
		return domain.ErrValidation
	}
	if r.Status != "" && !entity.ValidProductStatus(r.Status) {
		return domain.ErrValidation
	}
	if r.InitialImport < 0 {
		return domain.ErrValidation
	}
	for _, tr := range r.Translations {
		if tr.LanguageID == "" || tr.Name == "" {
			return domain.ErrValidation
		}
	}
	return nil
}

// UpdateProductRequest entrada para actualizar código, precio, estado o categoría.
type UpdateProductRequest struct {
	Code       string          `json:"code"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	CategoryID *string         `json:"product_category_id,omitempty"`
}

// Validate mismas reglas que la creación, con estado obligatorio.
func (r UpdateProductRequest) Validate() error {
	if r.Code == "" || r.Price.IsNegative() || !entity.ValidProductStatus(r.Status) {
		return domain.ErrValidation
	}
	return nil
}

// RegisterStockRequest entrada para registrar movimientos de stock acumulativos.
type RegisterStockRequest struct {
	ImportQuantity int `json:"import_quantity"`
	ExportQuantity int `json:"export_quantity"`
}

// Validate las cantidades no pueden ser negativas ni ambas cero.
func (r RegisterStockRequest) Validate() error {
	if r.ImportQuantity < 0 || r.ExportQuantity < 0 {
		return domain.ErrValidation
	}
	if r.ImportQuantity == 0 && r.ExportQuantity == 0 {
		return domain.ErrValidation
	}
	return nil
}

// StockResponse existencias de un producto.
type StockResponse struct {
	ImportQuantity int `json:"import_quantity"`
	ExportQuantity int `json:"export_quantity"`
	StockQuantity  int `json:"stock_quantity"`
}

// ProductResponse salida de un producto con stock y traducciones.
type ProductResponse struct {
	ID           string             `json:"id"`
	Code         string             `json:"code"`
	Price        decimal.Decimal    `json:"price"`
	Status       string             `json:"status"`
	CategoryID   *string            `json:"product_category_id,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	Stock        StockResponse      `json:"stock"`
	Translations []TranslationInput `json:"translations"`
}

// NewProductResponse arma la respuesta desde la entidad.
func NewProductResponse(p *entity.ProductWithDetails) ProductResponse {
	translations := make([]TranslationInput, 0, len(p.Translations))
	for _, tr := range p.Translations {
		translations = append(translations, TranslationInput{
			LanguageID:  tr.LanguageID,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}
	return ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Price:      p.Price,
		Status:     p.Status,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		Stock: StockResponse{
			ImportQuantity: p.Stock.ImportQuantity,
			ExportQuantity: p.Stock.ExportQuantity,
			StockQuantity:  p.Stock.StockQuantity,
		},
		Translations: translations,
	}
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusDraft        = "draft"
	ProductStatusPublished    = "published"
	ProductStatusDiscontinued = "discontinued"
)

// ValidProductStatus indica si el estado pertenece a la enumeración.
func ValidProductStatus(s string) bool {
	return s == ProductStatusDraft || s == ProductStatusPublished || s == ProductStatusDiscontinued
}

// Product producto del catálogo. Los textos visibles viven en ProductTranslation.
type Product struct {
	ID         string
	Code       string
	Price      decimal.Decimal
	Status     string // draft, published, discontinued
	CategoryID *string
	CreatedAt  time.Time
}

// ProductStock existencias de un producto. StockQuantity es una columna
// generada (import - export); nunca se escribe directamente.
type ProductStock struct {
	ProductID      string
	ImportQuantity int
	ExportQuantity int
	StockQuantity  int
}

// ProductTranslation textos de un producto en un idioma (PK compuesta producto+idioma).
type ProductTranslation struct {
	ProductID   string
	LanguageID  string
	Name        string
	Description *string
}

// ProductImage imagen asociada a un producto; se muestra primero la de menor DisplayOrder.
type ProductImage struct {
	ID           string
	ProductID    string
	ImageURL     string
	DisplayOrder *int
}

// ProductWithDetails producto junto con stock y traducciones, para respuestas de lectura.
type ProductWithDetails struct {
	Product
	Stock        ProductStock
	Translations []ProductTranslation
}

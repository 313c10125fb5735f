package entity

// MaxCategoryDepth profundidad máxima del árbol de categorías.
// La raíz (sin padre) cuenta como nivel 1.
const MaxCategoryDepth = 3

// ProductCategory categoría jerárquica del catálogo. ParentID nulo = raíz.
type ProductCategory struct {
	ID           string
	DisplayOrder *int
	ParentID     *string
}

// CategoryTranslation textos de una categoría en un idioma (PK compuesta categoría+idioma).
type CategoryTranslation struct {
	CategoryID  string
	LanguageID  string
	Name        string
	Description *string
}

// CategoryWithTranslations categoría junto con sus traducciones.
type CategoryWithTranslations struct {
	ProductCategory
	Translations []CategoryTranslation
}

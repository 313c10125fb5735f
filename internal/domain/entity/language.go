package entity

// Idiomas soportados por las traducciones del catálogo. El nombre es único en DB.
const (
	LanguageEnUS = "en-US"
	LanguageViVN = "vi-VN"
)

// Language idioma disponible para traducciones de productos y categorías.
type Language struct {
	ID   string
	Name string
}

// KnownLanguageName indica si el nombre pertenece a la enumeración cerrada de idiomas.
func KnownLanguageName(name string) bool {
	return name == LanguageEnUS || name == LanguageViVN
}

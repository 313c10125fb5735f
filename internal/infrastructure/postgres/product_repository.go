package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Insert persiste un producto nuevo.
func (r *ProductRepo) Insert(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO product (id, code, price, status, product_category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Code, product.Price, product.Status, product.CategoryID, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrValidation // categoría inexistente
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// InsertStock persiste la fila de existencias del producto.
func (r *ProductRepo) InsertStock(ctx context.Context, stock *entity.ProductStock) error {
	query := `
		INSERT INTO product_stock (product_id, import_quantity, export_quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.ImportQuantity, stock.ExportQuantity)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// InsertTranslations persiste las traducciones del producto.
func (r *ProductRepo) InsertTranslations(ctx context.Context, translations []entity.ProductTranslation) error {
	const query = `
		INSERT INTO product_translation (product_id, language_id, name, description)
		VALUES ($1, $2, $3, $4)`
	for _, tr := range translations {
		if _, err := r.q.Exec(ctx, query, tr.ProductID, tr.LanguageID, tr.Name, tr.Description); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrValidation // idioma inexistente
			}
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert translation: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un producto con stock y traducciones, o nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.ProductWithDetails, error) {
	var p entity.ProductWithDetails
	err := r.q.QueryRow(ctx, `
		SELECT id, code, price, status, product_category_id, created_at
		FROM product WHERE id = $1`, id).
		Scan(&p.ID, &p.Code, &p.Price, &p.Status, &p.CategoryID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT product_id, import_quantity, export_quantity, stock_quantity
		FROM product_stock WHERE product_id = $1`, id).
		Scan(&p.Stock.ProductID, &p.Stock.ImportQuantity, &p.Stock.ExportQuantity, &p.Stock.StockQuantity)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get product stock: %w", err)
	}

	translations, err := r.translationsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Translations = translations
	return &p, nil
}

func (r *ProductRepo) translationsOf(ctx context.Context, productID string) ([]entity.ProductTranslation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, language_id, name, description
		FROM product_translation WHERE product_id = $1`, productID)
	if err != nil {
		return nil, fmt.Errorf("get product translations: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductTranslation
	for rows.Next() {
		var tr entity.ProductTranslation
		if err := rows.Scan(&tr.ProductID, &tr.LanguageID, &tr.Name, &tr.Description); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		list = append(list, tr)
	}
	return list, rows.Err()
}

// List devuelve todos los productos con stock y traducciones.
func (r *ProductRepo) List(ctx context.Context) ([]entity.ProductWithDetails, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.code, p.price, p.status, p.product_category_id, p.created_at,
		       COALESCE(s.import_quantity, 0), COALESCE(s.export_quantity, 0), COALESCE(s.stock_quantity, 0)
		FROM product p
		LEFT JOIN product_stock s ON s.product_id = p.id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductWithDetails
	for rows.Next() {
		var p entity.ProductWithDetails
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Price, &p.Status, &p.CategoryID, &p.CreatedAt,
			&p.Stock.ImportQuantity, &p.Stock.ExportQuantity, &p.Stock.StockQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Stock.ProductID = p.ID
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trRows, err := r.q.Query(ctx, `
		SELECT product_id, language_id, name, description FROM product_translation`)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer trRows.Close()
	byProduct := make(map[string][]entity.ProductTranslation)
	for trRows.Next() {
		var tr entity.ProductTranslation
		if err := trRows.Scan(&tr.ProductID, &tr.LanguageID, &tr.Name, &tr.Description); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		byProduct[tr.ProductID] = append(byProduct[tr.ProductID], tr)
	}
	if err := trRows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Translations = byProduct[list[i].ID]
	}
	return list, nil
}

// Update actualiza código, precio, estado y categoría.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE product SET code = $2, price = $3, status = $4, product_category_id = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Code, product.Price, product.Status, product.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrValidation
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// RegisterStock acumula importaciones/exportaciones; stock_quantity lo
// recalcula la columna generada.
func (r *ProductRepo) RegisterStock(ctx context.Context, productID string, importDelta, exportDelta int) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE product_stock
		SET import_quantity = import_quantity + $2, export_quantity = export_quantity + $3
		WHERE product_id = $1`,
		productID, importDelta, exportDelta,
	)
	if err != nil {
		return fmt.Errorf("register stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el producto; stock, traducciones e imágenes caen por cascada.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

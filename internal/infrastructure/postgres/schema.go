package postgres

import (
	"context"
	"fmt"
)

// Sentencias DDL del esquema. Las cascadas van como acciones de clave foránea:
// borrar un rol arrastra grants y asignaciones; borrar un producto arrastra
// stock, traducciones e imágenes. Los CHECK de enumeración deben mantenerse
// en sincronía con las constantes de internal/domain/entity.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS app_user (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		password_retry_counter INTEGER NOT NULL DEFAULT 0,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_role (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS role_privilege (
		id TEXT PRIMARY KEY,
		user_role_id TEXT NOT NULL REFERENCES user_role (id) ON DELETE CASCADE ON UPDATE CASCADE,
		privilege TEXT NOT NULL CHECK (privilege IN (
			'admin.all',
			'user.create', 'user.read', 'user.update', 'user.delete',
			'category.read', 'category.write', 'category.update', 'category.delete',
			'product.create', 'product.read', 'product.update', 'product.delete',
			'stock.update',
			'order.create', 'order.read', 'order.update', 'order.delete'
		)),
		UNIQUE (user_role_id, privilege)
	)`,
	`CREATE TABLE IF NOT EXISTS user_on_user_role (
		user_id TEXT NOT NULL REFERENCES app_user (id) ON DELETE CASCADE ON UPDATE CASCADE,
		user_role_id TEXT NOT NULL REFERENCES user_role (id) ON DELETE CASCADE ON UPDATE CASCADE,
		PRIMARY KEY (user_id, user_role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS language (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (name IN ('en-US', 'vi-VN'))
	)`,
	`CREATE TABLE IF NOT EXISTS product_category (
		id TEXT PRIMARY KEY,
		display_order INTEGER,
		product_category_id TEXT REFERENCES product_category (id)
	)`,
	`CREATE TABLE IF NOT EXISTS product_category_translation (
		product_category_id TEXT NOT NULL REFERENCES product_category (id) ON DELETE CASCADE ON UPDATE CASCADE,
		language_id TEXT NOT NULL REFERENCES language (id) ON DELETE CASCADE ON UPDATE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		PRIMARY KEY (product_category_id, language_id)
	)`,
	`CREATE TABLE IF NOT EXISTS product (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		price NUMERIC(14,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'discontinued')),
		product_category_id TEXT REFERENCES product_category (id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS product_stock (
		product_id TEXT PRIMARY KEY REFERENCES product (id) ON DELETE CASCADE ON UPDATE CASCADE,
		import_quantity INTEGER NOT NULL DEFAULT 0,
		export_quantity INTEGER NOT NULL DEFAULT 0,
		stock_quantity INTEGER GENERATED ALWAYS AS (import_quantity - export_quantity) STORED
	)`,
	`CREATE TABLE IF NOT EXISTS product_translation (
		product_id TEXT NOT NULL REFERENCES product (id) ON DELETE CASCADE ON UPDATE CASCADE,
		language_id TEXT NOT NULL REFERENCES language (id) ON DELETE CASCADE ON UPDATE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		PRIMARY KEY (product_id, language_id)
	)`,
	`CREATE TABLE IF NOT EXISTS product_image (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL REFERENCES product (id) ON DELETE CASCADE ON UPDATE CASCADE,
		image_url TEXT NOT NULL,
		display_order INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN (
			'pending', 'processing', 'paid', 'shipped', 'delivered', 'cancelled'
		)),
		is_stock_subtracted BOOLEAN NOT NULL DEFAULT FALSE,
		discount_type TEXT NOT NULL DEFAULT 'percentage' CHECK (discount_type IN ('percentage', 'fixed')),
		discount_value NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_product_item (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders (id) ON DELETE CASCADE ON UPDATE CASCADE,
		product_id TEXT NOT NULL REFERENCES product (id),
		product_price NUMERIC(14,2) NOT NULL,
		quantity INTEGER NOT NULL,
		subtotal NUMERIC(14,2) GENERATED ALWAYS AS (product_price * quantity) STORED
	)`,
	`CREATE TABLE IF NOT EXISTS order_billing_information (
		order_id TEXT PRIMARY KEY REFERENCES orders (id) ON DELETE CASCADE ON UPDATE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		company TEXT,
		address_line_1 TEXT NOT NULL,
		address_line_2 TEXT,
		city TEXT NOT NULL,
		state TEXT,
		zip_code TEXT NOT NULL,
		country TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_shipping_information (
		order_id TEXT PRIMARY KEY REFERENCES orders (id) ON DELETE CASCADE ON UPDATE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		company TEXT,
		address_line_1 TEXT NOT NULL,
		address_line_2 TEXT,
		city TEXT NOT NULL,
		state TEXT,
		zip_code TEXT NOT NULL,
		country TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customer_message (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL CHECK (type IN ('question', 'support', 'feedback', 'other')),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'seen', 'solved'))
	)`,
}

// EnsureSchema crea las tablas si no existen. Idempotente; lo invoca cmd/seed.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Insert persiste un rol nuevo.
func (r *RoleRepo) Insert(ctx context.Context, role *entity.Role) error {
	_, err := r.q.Exec(ctx, `INSERT INTO user_role (id, name) VALUES ($1, $2)`, role.ID, role.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// InsertGrants inserta un grant por privilegio. El par (rol, privilegio) es único.
func (r *RoleRepo) InsertGrants(ctx context.Context, roleID string, privileges []entity.Privilege) error {
	const query = `INSERT INTO role_privilege (id, user_role_id, privilege) VALUES ($1, $2, $3)`
	for _, p := range privileges {
		if _, err := r.q.Exec(ctx, query, uuid.New().String(), roleID, p.String()); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert grant: %w", err)
		}
	}
	return nil
}

// UpsertGrants inserta grants ignorando los pares que ya existen.
func (r *RoleRepo) UpsertGrants(ctx context.Context, roleID string, privileges []entity.Privilege) error {
	const query = `
		INSERT INTO role_privilege (id, user_role_id, privilege) VALUES ($1, $2, $3)
		ON CONFLICT (user_role_id, privilege) DO NOTHING`
	for _, p := range privileges {
		if _, err := r.q.Exec(ctx, query, uuid.New().String(), roleID, p.String()); err != nil {
			return fmt.Errorf("upsert grant: %w", err)
		}
	}
	return nil
}

// DeleteGrantsNotIn elimina los grants del rol cuyo privilegio no está en la
// lista deseada. Con lista vacía elimina todos.
func (r *RoleRepo) DeleteGrantsNotIn(ctx context.Context, roleID string, privileges []entity.Privilege) error {
	keep := make([]string, 0, len(privileges))
	for _, p := range privileges {
		keep = append(keep, p.String())
	}
	_, err := r.q.Exec(ctx,
		`DELETE FROM role_privilege WHERE user_role_id = $1 AND NOT (privilege = ANY($2))`,
		roleID, keep,
	)
	if err != nil {
		return fmt.Errorf("delete stale grants: %w", err)
	}
	return nil
}

// Rename cambia el nombre solo si difiere del actual.
func (r *RoleRepo) Rename(ctx context.Context, id, name string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE user_role SET name = $2 WHERE id = $1 AND name <> $2`,
		id, name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("rename role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol con sus privilegios, o nil si no existe.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.RoleWithPrivileges, error) {
	var role entity.RoleWithPrivileges
	err := r.q.QueryRow(ctx, `SELECT id, name FROM user_role WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by id: %w", err)
	}

	rows, err := r.q.Query(ctx,
		`SELECT privilege FROM role_privilege WHERE user_role_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get role grants: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		role.Privileges = append(role.Privileges, entity.Privilege(p))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &role, nil
}

// List devuelve todos los roles con sus privilegios (sin paginar).
func (r *RoleRepo) List(ctx context.Context) ([]entity.RoleWithPrivileges, error) {
	rows, err := r.q.Query(ctx, `
		SELECT r.id, r.name, p.privilege
		FROM user_role r
		LEFT JOIN role_privilege p ON p.user_role_id = r.id
		ORDER BY r.name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []entity.RoleWithPrivileges
	index := make(map[string]int)
	for rows.Next() {
		var id, name string
		var privilege *string
		if err := rows.Scan(&id, &name, &privilege); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		i, ok := index[id]
		if !ok {
			list = append(list, entity.RoleWithPrivileges{Role: entity.Role{ID: id, Name: name}})
			i = len(list) - 1
			index[id] = i
		}
		if privilege != nil {
			list[i].Privileges = append(list[i].Privileges, entity.Privilege(*privilege))
		}
	}
	return list, rows.Err()
}

// DeleteByIDs borra roles por id; grants y asignaciones caen por cascada.
func (r *RoleRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM user_role WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete roles: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla de roles (reset defensivo del bootstrap).
func (r *RoleRepo) DeleteAll(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `DELETE FROM user_role`)
	if err != nil {
		return fmt.Errorf("delete all roles: %w", err)
	}
	return nil
}

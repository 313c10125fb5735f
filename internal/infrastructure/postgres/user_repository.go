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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO app_user (id, email, username, first_name, last_name, is_email_verified, password_retry_counter, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Email, user.Username, user.FirstName, user.LastName,
		user.IsEmailVerified, user.PasswordRetryCounter, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const userColumns = `id, email, username, first_name, last_name, is_email_verified, password_retry_counter, password_hash`

// GetByID obtiene un usuario por ID, o nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE id = $1`, id).Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.IsEmailVerified, &u.PasswordRetryCounter, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email (único), o nil si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE email = $1`, email).Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.IsEmailVerified, &u.PasswordRetryCounter, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// CountExclusive cuenta usuarios tomando antes un lock de tabla. Solo tiene
// sentido dentro de una transacción (TxRunner): el lock serializa bootstraps
// concurrentes hasta el Commit/Rollback.
func (r *UserRepo) CountExclusive(ctx context.Context) (int, error) {
	if _, err := r.q.Exec(ctx, `LOCK TABLE app_user IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("lock users: %w", err)
	}
	var count int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM app_user`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// AssignRoles inserta una asignación usuario↔rol por cada id de rol.
func (r *UserRepo) AssignRoles(ctx context.Context, userID string, roleIDs []string) error {
	const query = `INSERT INTO user_on_user_role (user_id, user_role_id) VALUES ($1, $2)`
	for _, roleID := range roleIDs {
		if _, err := r.q.Exec(ctx, query, userID, roleID); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrValidation // rol inexistente
			}
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("assign role: %w", err)
		}
	}
	return nil
}

// IncrementRetryCounter suma 1 al contador de intentos fallidos del usuario.
func (r *UserRepo) IncrementRetryCounter(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE app_user SET password_retry_counter = password_retry_counter + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment retry counter: %w", err)
	}
	return nil
}

// ResetRetryCounter vuelve el contador a 0 para el usuario dado.
func (r *UserRepo) ResetRetryCounter(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE app_user SET password_retry_counter = 0 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("reset retry counter: %w", err)
	}
	return nil
}

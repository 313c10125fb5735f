package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/infrastructure/postgres"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "deben cumplirse todas las expectativas SQL")
		mock.Close()
	})
	return mock
}

func uniqueViolation() *pgconn.PgError {
	return &pgconn.PgError{Code: "23505"}
}

func TestRoleInsert_OK(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectExec(`INSERT INTO user_role`).
		WithArgs("role-1", "editor").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Insert(context.Background(), &entity.Role{ID: "role-1", Name: "editor"})
	assert.NoError(t, err)
}

// La violación de unicidad del nombre se traduce al error de dominio.
func TestRoleInsert_NombreDuplicado_MapeaErrDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectExec(`INSERT INTO user_role`).
		WithArgs("role-1", "editor").
		WillReturnError(uniqueViolation())

	err := repo.Insert(context.Background(), &entity.Role{ID: "role-1", Name: "editor"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El rename lleva el guard "AND name <> $2": renombrar al mismo nombre es un no-op.
func TestRoleRename_SoloSiDifiere(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectExec(`UPDATE user_role SET name = \$2 WHERE id = \$1 AND name <> \$2`).
		WithArgs("role-1", "gestor").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Rename(context.Background(), "role-1", "gestor")
	assert.NoError(t, err, "cero filas afectadas no es un error: el nombre ya era ese")
}

// El upsert de grants inserta ignorando los pares que ya existen.
func TestRoleUpsertGrants_UnoConConflicto(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectExec(`ON CONFLICT \(user_role_id, privilege\) DO NOTHING`).
		WithArgs(pgxmock.AnyArg(), "role-1", "product.read").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectExec(`ON CONFLICT \(user_role_id, privilege\) DO NOTHING`).
		WithArgs(pgxmock.AnyArg(), "role-1", "product.update").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.UpsertGrants(context.Background(), "role-1",
		[]entity.Privilege{entity.PrivilegeProductRead, entity.PrivilegeProductUpdate})
	assert.NoError(t, err)
}

// El borrado de grants sobrantes usa NOT (privilege = ANY($2)) con la lista deseada.
func TestRoleDeleteGrantsNotIn_PasaListaDeseada(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectExec(`DELETE FROM role_privilege WHERE user_role_id = \$1 AND NOT \(privilege = ANY\(\$2\)\)`).
		WithArgs("role-1", []string{"product.read"}).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err := repo.DeleteGrantsNotIn(context.Background(), "role-1",
		[]entity.Privilege{entity.PrivilegeProductRead})
	assert.NoError(t, err)
}

func TestRoleGetByID_Inexistente_RetornaNil(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectQuery(`SELECT id, name FROM user_role WHERE id = \$1`).
		WithArgs("no-existe").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	role, err := repo.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, role, "rol inexistente devuelve nil sin error; el use case decide el 404")
}

func TestRoleGetByID_ConGrants(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectQuery(`SELECT id, name FROM user_role WHERE id = \$1`).
		WithArgs("role-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow("role-1", "editor"))
	mock.ExpectQuery(`SELECT privilege FROM role_privilege WHERE user_role_id = \$1`).
		WithArgs("role-1").
		WillReturnRows(pgxmock.NewRows([]string{"privilege"}).
			AddRow("product.read").
			AddRow("product.update"))

	role, err := repo.GetByID(context.Background(), "role-1")
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "editor", role.Name)
	assert.Equal(t, []entity.Privilege{entity.PrivilegeProductRead, entity.PrivilegeProductUpdate},
		role.Privileges)
}

// El listado arma los roles desde el LEFT JOIN; un rol sin grants queda con
// la lista vacía.
func TestRoleList_AgrupaPorRol(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	read := "product.read"
	update := "product.update"
	mock.ExpectQuery(`SELECT r.id, r.name, p.privilege`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "privilege"}).
			AddRow("role-1", "editor", &read).
			AddRow("role-1", "editor", &update).
			AddRow("role-2", "vacio", (*string)(nil)))

	roles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Len(t, roles[0].Privileges, 2)
	assert.Empty(t, roles[1].Privileges)
}

func TestRoleDeleteByIDs_UnaSentencia(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewRoleRepository(mock)

	mock.ExpectExec(`DELETE FROM user_role WHERE id = ANY\(\$1\)`).
		WithArgs([]string{"a", "b"}).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err := repo.DeleteByIDs(context.Background(), []string{"a", "b"})
	assert.NoError(t, err)
}

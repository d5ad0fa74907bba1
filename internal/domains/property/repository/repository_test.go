package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basera/infras/otel/mocks"
	"basera/infras/postgres"
	"basera/internal/domains/property/model"
	"basera/internal/domains/property/repository"
	"basera/shared"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestPropertyRepository_Insert(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	mock.ExpectExec("INSERT INTO properties").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), model.Property{
		ID:                "test-id",
		Name:              "Sunrise PG",
		Address:           "12 MG Road, Bengaluru",
		OwnerID:           "owner-id",
		HygieneRating:     decimal.Zero,
		PreferredLanguage: "EN",
		Active:            true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Get(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	rows := sqlmock.NewRows([]string{"id", "name", "active"}).
		AddRow("test-id", "Sunrise PG", true)

	mock.ExpectPrepare("SELECT (.+) FROM properties").
		ExpectQuery().
		WithArgs("test-id").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), shared.FilterByID("test-id", model.FieldID, model.TableName))

	assert.NoError(t, err)
	assert.Equal(t, "test-id", got.ID)
	assert.Equal(t, "Sunrise PG", got.Name)
	assert.True(t, got.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_GetNoRows(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	mock.ExpectPrepare("SELECT (.+) FROM properties").
		ExpectQuery().
		WithArgs("missing-id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	got, err := repo.Get(context.Background(), shared.FilterByID("missing-id", model.FieldID, model.TableName))

	assert.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Exist(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	mock.ExpectPrepare("SELECT EXISTS").
		ExpectQuery().
		WithArgs("test-id").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exist, err := repo.Exist(context.Background(), shared.FilterByID("test-id", model.FieldID, model.TableName))

	assert.NoError(t, err)
	assert.True(t, exist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Count(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	mock.ExpectPrepare("SELECT COUNT(.+) FROM properties").
		ExpectQuery().
		WithArgs("test-id").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), shared.FilterByID("test-id", model.FieldID, model.TableName))

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

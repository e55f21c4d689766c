package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })

	return mock
}

func TestExistsByUsername(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected bool
	}{
		{name: "username taken", count: 1, expected: true},
		{name: "username free", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := setupMockDB(t)
			mock.ExpectQuery(`SELECT count`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			assert.Equal(t, tt.expected, ExistsByUsername("leo"))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		mockRows *sqlmock.Rows
		expected bool
	}{
		{
			name:     "admin user",
			mockRows: sqlmock.NewRows([]string{"is_admin"}).AddRow(true),
			expected: true,
		},
		{
			name:     "regular user",
			mockRows: sqlmock.NewRows([]string{"is_admin"}).AddRow(false),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := setupMockDB(t)
			mock.ExpectQuery(`SELECT`).WillReturnRows(tt.mockRows)

			result, err := IsAdmin("user1")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

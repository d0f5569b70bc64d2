package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"starwarsapi/internal/domain"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: DefaultSQLitePath},
		{in: "   ", want: DefaultSQLitePath},
		{in: "postgres://u:p@db:5432/swapi", want: "postgresql://u:p@db:5432/swapi"},
		{in: "postgresql://u:p@db:5432/swapi", want: "postgresql://u:p@db:5432/swapi"},
		{in: "sqlite:////tmp/test.db", want: "/tmp/test.db"},
		{in: "sqlite:///local.db", want: "local.db"},
		{in: "mysql://root@localhost/swapi", want: "mysql://root@localhost/swapi"},
		{in: "file:x?mode=memory", want: "file:x?mode=memory"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeURL(tc.in), tc.in)
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn, err := MySQLDSN("mysql://root:pa55@db:3306/swapi?charset=utf8mb4")
	require.NoError(t, err)

	assert.Contains(t, dsn, "root:pa55@tcp(db:3306)/swapi?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	_, err = MySQLDSN("mysql:///swapi")
	assert.Error(t, err)
}

func TestConnectSQLiteAndMigrate(t *testing.T) {
	db, err := Connect("file:database_test?mode=memory&cache=shared", logger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))

	m := db.Migrator()
	for _, table := range []string{"users", "people", "planets", "favorites"} {
		assert.True(t, m.HasTable(table), table)
	}
	assert.True(t, m.HasIndex(&domain.Favorite{}, "idx_favorites_user_planet"))
	assert.True(t, m.HasIndex(&domain.Favorite{}, "idx_favorites_user_people"))
	assert.True(t, m.HasConstraint(&domain.Favorite{}, "chk_favorites_target"))
}

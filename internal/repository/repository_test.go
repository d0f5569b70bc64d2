package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"starwarsapi/internal/database"
	"starwarsapi/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:repo_test_%s?mode=memory&cache=shared", name), logger.Silent)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Create(&domain.User{ID: 1, Email: "luke@rebellion.org", Password: "x", IsActive: true}).Error)
	return db
}

func ptr(v int64) *int64 { return &v }

func TestPlanetRepository_FindEmpty(t *testing.T) {
	repo := NewPlanetRepository(setupTestDB(t))

	planets, err := repo.Find(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, planets)
	assert.Empty(t, planets)
}

func TestPlanetRepository_InsertFindDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanetRepository(setupTestDB(t))

	require.NoError(t, repo.Insert(ctx, &domain.Planet{ID: 2, Name: "Alderaan"}))
	require.NoError(t, repo.Insert(ctx, &domain.Planet{ID: 1, Name: "Tatooine", Climate: "arid"}))

	planets, err := repo.Find(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 2)
	assert.Equal(t, "Tatooine", planets[0].Name)
	assert.Equal(t, "Alderaan", planets[1].Name)

	p, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "arid", p.Climate)

	_, err = repo.FindByID(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, 2))
	assert.ErrorIs(t, repo.Delete(ctx, 2), ErrNotFound)
}

func TestPeopleRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPeopleRepository(setupTestDB(t))

	require.NoError(t, repo.Insert(ctx, &domain.People{ID: 4, Name: "Darth Vader", Height: "202"}))

	p, err := repo.FindByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	assert.Equal(t, "202", p.Height)

	_, err = repo.FindByID(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	err := repo.Insert(ctx, &domain.User{Email: "luke@rebellion.org", Password: "y", IsActive: true})
	assert.ErrorIs(t, err, ErrDuplicate)

	users, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestFavoriteRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, db.Create(&domain.Planet{ID: 1, Name: "Tatooine"}).Error)
	require.NoError(t, db.Create(&domain.People{ID: 1, Name: "Luke Skywalker"}).Error)

	repo := NewFavoriteRepository(db)

	require.NoError(t, repo.Insert(ctx, &domain.Favorite{UserID: 1, PlanetID: ptr(1)}))
	require.NoError(t, repo.Insert(ctx, &domain.Favorite{UserID: 1, PeopleID: ptr(1)}))

	favorites, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	require.NotNil(t, favorites[0].Planet)
	assert.Equal(t, "Tatooine", favorites[0].Planet.Name)
	assert.Nil(t, favorites[0].People)
	require.NotNil(t, favorites[1].People)
	assert.Equal(t, "Luke Skywalker", favorites[1].People.Name)

	other, err := repo.FindByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)

	fav, err := repo.FindByUserAndPlanet(ctx, 1, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, fav.ID))

	_, err = repo.FindByUserAndPlanet(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, fav.ID), ErrNotFound)

	_, err = repo.FindByUserAndPeople(ctx, 1, 1)
	assert.NoError(t, err)
}

func TestFavoriteRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, db.Create(&domain.Planet{ID: i, Name: fmt.Sprintf("planet-%d", i)}).Error)
		require.NoError(t, db.Create(&domain.People{ID: i, Name: fmt.Sprintf("person-%d", i)}).Error)
	}
	repo := NewFavoriteRepository(db)

	require.NoError(t, repo.Insert(ctx, &domain.Favorite{UserID: 1, PlanetID: ptr(1)}))

	err := repo.Insert(ctx, &domain.Favorite{UserID: 1, PlanetID: ptr(1)})
	assert.ErrorIs(t, err, ErrDuplicate)

	// a second people favorite must not collide with the NULL planet_id of the first
	require.NoError(t, repo.Insert(ctx, &domain.Favorite{UserID: 1, PeopleID: ptr(1)}))
	require.NoError(t, repo.Insert(ctx, &domain.Favorite{UserID: 1, PeopleID: ptr(2)}))

	assert.Error(t, repo.Insert(ctx, &domain.Favorite{UserID: 1}), "neither target set")
	assert.Error(t, repo.Insert(ctx, &domain.Favorite{UserID: 1, PlanetID: ptr(2), PeopleID: ptr(3)}), "both targets set")

	favorites, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, favorites, 3)
}

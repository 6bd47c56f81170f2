package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/models"
)

func openTestDB(t *testing.T) Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return New(db)
}

func TestAboutRepoGetMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)

	about, err := db.AboutRepo().Get()
	require.NoError(t, err)
	assert.Nil(t, about)
}

func TestAboutRepoGetAfterAdd(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.AboutRepo().Add(&models.About{Title: "About me"}))

	about, err := db.AboutRepo().Get()
	require.NoError(t, err)
	require.NotNil(t, about)
	assert.Equal(t, "About me", about.Title)
}

func TestUserRepoFindByEmailMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)

	user, err := db.UserRepo().FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCategoryRepoFindBySlugMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)

	category, err := db.CategoryRepo().FindBySlug("no-such")
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestProjectRepoTrashQueries(t *testing.T) {
	db := openTestDB(t)

	live := &models.Project{Name: "Live", Description: "d"}
	require.NoError(t, db.ProjectRepo().Add(live))
	trashed := &models.Project{Name: "Trashed", Description: "d"}
	require.NoError(t, db.ProjectRepo().Add(trashed))
	require.NoError(t, db.ProjectRepo().SoftDelete(trashed.ID))

	all, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, live.ID, all[0].ID)

	bin, err := db.ProjectRepo().FindTrashed()
	require.NoError(t, err)
	require.Len(t, bin, 1)
	assert.Equal(t, trashed.ID, bin[0].ID)

	// FindByID skips trashed rows, FindByIDWithTrashed sees them.
	_, err = db.ProjectRepo().FindByID(trashed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := db.ProjectRepo().FindByIDWithTrashed(trashed.ID)
	require.NoError(t, err)
	assert.Equal(t, trashed.ID, found.ID)

	require.NoError(t, db.ProjectRepo().Restore(trashed.ID))
	all, err = db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCategorySlugUniqueConstraint(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.CategoryRepo().Add(&models.Category{Name: "Frontend"}))
	err := db.CategoryRepo().Add(&models.Category{Name: "Frontend"})
	assert.Error(t, err)
}

package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

func setupTestDB(t *testing.T) database.Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return database.New(db)
}

func seedUser(t *testing.T, db database.Database) *models.User {
	t.Helper()
	user := &models.User{
		Name:       "Operator",
		Email:      "operator@example.com",
		Occupation: "Engineer",
	}
	require.NoError(t, db.UserRepo().Add(user))
	return user
}

// smallJPEG is a 5KB stand-in payload; the pipeline never inspects image
// bytes, only the filename extension.
func smallJPEG() []byte {
	data := make([]byte, 5*1024)
	copy(data, "\xff\xd8\xff\xe0")
	return data
}

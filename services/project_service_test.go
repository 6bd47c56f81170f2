package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/storage"
)

func TestProjectCreateWithImage(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)
	ctx := context.Background()

	project, err := svc.Create(ctx, user.ID, ProjectInput{
		Title:       "  Portfolio Site  ",
		Description: "A site about me",
		Image:       forms.NewUpload(smallJPEG(), "cover.JPG"),
		Tags:        []string{" go ", "", "react"},
		DemoLink:    "https://demo.example.com",
		GithubLink:  "https://github.com/me/site",
		Featured:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio Site", project.Name)
	assert.Equal(t, []string{"go", "react"}, []string(project.Tags))
	assert.True(t, project.Featured)
	assert.Equal(t, user.ID, project.UserID)

	require.NotNil(t, project.Image)
	assert.True(t, strings.HasPrefix(*project.Image, "projects/"))
	assert.True(t, strings.HasSuffix(*project.Image, ".jpg"))
	assert.Equal(t, 1, store.Len())

	stored, err := svc.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, *project.Image, *stored.Image)
}

func TestProjectCreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)

	project, err := svc.Create(context.Background(), user.ID, ProjectInput{
		Title:       "Demo",
		Description: "D",
		Image:       forms.NewUpload(smallJPEG(), "demo.jpg"),
	})
	require.NoError(t, err)

	require.NotNil(t, project.Image)
	assert.Regexp(t, `^projects/[0-9a-f-]+\.jpg$`, *project.Image)
	assert.Empty(t, []string(project.Tags))
	assert.False(t, project.Featured)
}

func TestProjectCreateWithoutImage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService(db.ProjectRepo(), storage.NewMemoryStore())
	user := seedUser(t, db)

	project, err := svc.Create(context.Background(), user.ID, ProjectInput{
		Title:       "Bare",
		Description: "No image",
		Image:       forms.OmittedFile(),
	})
	require.NoError(t, err)
	assert.Nil(t, project.Image)
}

func TestProjectCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)

	_, err := svc.Create(context.Background(), user.ID, ProjectInput{
		Title:    "   ",
		Image:    forms.NewUpload(smallJPEG(), "cover.gif"),
		DemoLink: "not-a-url",
	})
	require.Error(t, err)

	ve, ok := errs.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "description")
	assert.Contains(t, ve.Fields, "image")
	assert.Contains(t, ve.Fields, "demoLink")

	// Validation failed before anything reached the store.
	assert.Equal(t, 0, store.Len())
	projects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectUpdateReplacesImage(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)
	ctx := context.Background()

	project, err := svc.Create(ctx, user.ID, ProjectInput{
		Title:       "Site",
		Description: "v1",
		Image:       forms.NewUpload(smallJPEG(), "old.jpg"),
	})
	require.NoError(t, err)
	oldPath := *project.Image

	updated, err := svc.Update(ctx, project.ID, ProjectInput{
		Title:       "Site",
		Description: "v2",
		Image:       forms.NewUpload(smallJPEG(), "new.png"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Image)
	assert.NotEqual(t, oldPath, *updated.Image)
	assert.True(t, strings.HasSuffix(*updated.Image, ".png"))

	// The superseded file was deleted only after the row write.
	assert.Contains(t, store.Deletes(), oldPath)
	assert.Equal(t, 1, store.Len())
}

func TestProjectUpdateOmittedKeepsImage(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)
	ctx := context.Background()

	project, err := svc.Create(ctx, user.ID, ProjectInput{
		Title:       "Site",
		Description: "v1",
		Image:       forms.NewUpload(smallJPEG(), "cover.jpg"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, project.ID, ProjectInput{
		Title:       "Site renamed",
		Description: "v2",
		Image:       forms.OmittedFile(),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Image)
	assert.Equal(t, *project.Image, *updated.Image)
	assert.Empty(t, store.Deletes())
}

func TestProjectUpdateClearDeletesImage(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)
	ctx := context.Background()

	project, err := svc.Create(ctx, user.ID, ProjectInput{
		Title:       "Site",
		Description: "v1",
		Image:       forms.NewUpload(smallJPEG(), "cover.jpg"),
	})
	require.NoError(t, err)
	oldPath := *project.Image

	updated, err := svc.Update(ctx, project.ID, ProjectInput{
		Title:       "Site",
		Description: "v1",
		Image:       forms.ClearFile(),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Image)
	assert.Equal(t, []string{oldPath}, store.Deletes())
	assert.Equal(t, 0, store.Len())
}

func TestProjectUploadFailureLeavesNothingBehind(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	store.FailPuts = true
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)

	_, err := svc.Create(context.Background(), user.ID, ProjectInput{
		Title:       "Site",
		Description: "v1",
		Image:       forms.NewUpload(smallJPEG(), "cover.jpg"),
	})
	require.Error(t, err)
	assert.True(t, errs.IsBlobUploadError(err))

	projects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectTrashLifecycle(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)
	ctx := context.Background()

	project, err := svc.Create(ctx, user.ID, ProjectInput{
		Title:       "Site",
		Description: "v1",
		Image:       forms.NewUpload(smallJPEG(), "cover.jpg"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, project.ID))

	// Soft delete keeps the attachment and hides the row.
	assert.Empty(t, store.Deletes())
	_, err = svc.Get(ctx, project.ID)
	assert.True(t, errs.IsNotFound(err))

	active, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	trashed, err := svc.ListTrashed(ctx)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	assert.Equal(t, project.ID, trashed[0].ID)

	require.NoError(t, svc.Restore(ctx, project.ID))
	restored, err := svc.Get(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, restored.Image)
	assert.Equal(t, *project.Image, *restored.Image)
}

func TestProjectPermanentDelete(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	svc := NewProjectService(db.ProjectRepo(), store)
	user := seedUser(t, db)
	ctx := context.Background()

	project, err := svc.Create(ctx, user.ID, ProjectInput{
		Title:       "Site",
		Description: "v1",
		Image:       forms.NewUpload(smallJPEG(), "cover.jpg"),
	})
	require.NoError(t, err)
	imagePath := *project.Image

	require.NoError(t, svc.Delete(ctx, project.ID))
	require.NoError(t, svc.PermanentDelete(ctx, project.ID))

	assert.Equal(t, []string{imagePath}, store.Deletes())
	assert.Equal(t, 0, store.Len())

	trashed, err := svc.ListTrashed(ctx)
	require.NoError(t, err)
	assert.Empty(t, trashed)

	_, err = svc.Get(ctx, project.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectGetUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService(db.ProjectRepo(), storage.NewMemoryStore())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, errs.IsNotFound(err))
}

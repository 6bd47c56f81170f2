package forms

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/storage"
)

func strPtr(s string) *string { return &s }

func TestSingleOmittedCarriesForward(t *testing.T) {
	store := storage.NewMemoryStore()
	rec := NewReconciler(store)

	prior := strPtr("projects/old.jpg")
	final, err := rec.Single(context.Background(), prior, OmittedFile(), storage.HintProjectImage)
	require.NoError(t, err)
	assert.Equal(t, prior, final)
	assert.Empty(t, rec.PendingDeletions())
	assert.Empty(t, rec.Uploaded())
}

func TestSingleClearSchedulesDeletion(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Seed("projects/old.jpg", []byte("old"))
	rec := NewReconciler(store)

	final, err := rec.Single(context.Background(), strPtr("projects/old.jpg"), ClearFile(), storage.HintProjectImage)
	require.NoError(t, err)
	assert.Nil(t, final)
	assert.Equal(t, []string{"projects/old.jpg"}, rec.PendingDeletions())

	// Nothing touched until the record write succeeds.
	assert.Empty(t, store.Deletes())

	rec.Commit(context.Background())
	assert.Equal(t, []string{"projects/old.jpg"}, store.Deletes())
	assert.Equal(t, 0, store.Len())
}

func TestSingleClearWithoutPrior(t *testing.T) {
	store := storage.NewMemoryStore()
	rec := NewReconciler(store)

	final, err := rec.Single(context.Background(), nil, ClearFile(), storage.HintProjectImage)
	require.NoError(t, err)
	assert.Nil(t, final)
	assert.Empty(t, rec.PendingDeletions())
}

func TestSingleUploadReplacesPrior(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Seed("projects/old.jpg", []byte("old"))
	rec := NewReconciler(store)

	final, err := rec.Single(context.Background(), strPtr("projects/old.jpg"), NewUpload([]byte("new"), "cover.PNG"), storage.HintProjectImage)
	require.NoError(t, err)
	require.NotNil(t, final)
	assert.True(t, strings.HasPrefix(*final, "projects/"))
	assert.True(t, strings.HasSuffix(*final, ".png"))
	assert.NotEqual(t, "projects/old.jpg", *final)

	// New bytes are written immediately, the old file only on commit.
	exists, err := store.Exists(context.Background(), *final)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []string{"projects/old.jpg"}, rec.PendingDeletions())

	rec.Commit(context.Background())
	assert.Equal(t, []string{"projects/old.jpg"}, store.Deletes())
	assert.Equal(t, 1, store.Len())
}

func TestSingleUploadFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailPuts = true
	rec := NewReconciler(store)

	_, err := rec.Single(context.Background(), strPtr("projects/old.jpg"), NewUpload([]byte("new"), "cover.jpg"), storage.HintProjectImage)
	require.Error(t, err)
	assert.True(t, errs.IsBlobUploadError(err))

	// The failed field must not leave the prior file scheduled for deletion.
	assert.Empty(t, rec.PendingDeletions())
}

func TestListPositionalReconciliation(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Seed("about/company_logo_a.png", []byte("a"))
	store.Seed("about/company_logo_b.png", []byte("b"))
	rec := NewReconciler(store)

	prior := []*string{strPtr("about/company_logo_a.png"), strPtr("about/company_logo_b.png")}
	submitted := []FileInput{OmittedFile(), ClearFile()}

	finals, err := rec.List(context.Background(), prior, submitted, storage.HintTrustedByLogo)
	require.NoError(t, err)
	require.Len(t, finals, 2)
	assert.Equal(t, prior[0], finals[0])
	assert.Nil(t, finals[1])
	assert.Equal(t, []string{"about/company_logo_b.png"}, rec.PendingDeletions())
}

func TestListLongerThanPrior(t *testing.T) {
	store := storage.NewMemoryStore()
	rec := NewReconciler(store)

	prior := []*string{strPtr("about/company_logo_a.png")}
	submitted := []FileInput{OmittedFile(), NewUpload([]byte("new"), "logo.svg")}

	finals, err := rec.List(context.Background(), prior, submitted, storage.HintTrustedByLogo)
	require.NoError(t, err)
	require.Len(t, finals, 2)
	assert.Equal(t, prior[0], finals[0])
	require.NotNil(t, finals[1])
	assert.True(t, strings.HasPrefix(*finals[1], "about/company_logo_"))
	assert.Empty(t, rec.PendingDeletions())
}

func TestRollbackDeletesFreshUploadsOnly(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Seed("projects/old.jpg", []byte("old"))
	rec := NewReconciler(store)

	final, err := rec.Single(context.Background(), strPtr("projects/old.jpg"), NewUpload([]byte("new"), "cover.jpg"), storage.HintProjectImage)
	require.NoError(t, err)

	rec.Rollback(context.Background())

	// The fresh upload is gone, the prior file survives.
	assert.Equal(t, []string{*final}, store.Deletes())
	exists, err := store.Exists(context.Background(), "projects/old.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Empty(t, rec.PendingDeletions())
	assert.Empty(t, rec.Uploaded())
}

func TestCommitSwallowsDeleteFailures(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Seed("projects/old.jpg", []byte("old"))
	store.FailDeletes = true
	rec := NewReconciler(store)

	rec.ScheduleDelete("projects/old.jpg")
	rec.Commit(context.Background())

	assert.Equal(t, []string{"projects/old.jpg"}, store.Deletes())
	assert.Empty(t, rec.PendingDeletions())
}

func TestScheduleDeleteIgnoresEmptyPath(t *testing.T) {
	rec := NewReconciler(storage.NewMemoryStore())
	rec.ScheduleDelete("")
	assert.Empty(t, rec.PendingDeletions())
}

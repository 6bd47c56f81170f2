package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func TestSkillCreateResolvesCategorySlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db.SkillRepo(), db.CategoryRepo())
	ctx := context.Background()

	category := &models.Category{Name: "Frontend"}
	require.NoError(t, db.CategoryRepo().Add(category))

	skill, err := svc.Create(ctx, SkillInput{
		Name:      "React",
		Level:     80,
		Category:  "frontend",
		Published: true,
	})
	require.NoError(t, err)
	require.NotNil(t, skill.CategoryID)
	assert.Equal(t, category.ID, *skill.CategoryID)
}

func TestSkillCreateUnknownSlugStoresNull(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db.SkillRepo(), db.CategoryRepo())

	skill, err := svc.Create(context.Background(), SkillInput{
		Name:     "Go",
		Level:    90,
		Category: "no-such-category",
	})
	require.NoError(t, err)
	assert.Nil(t, skill.CategoryID)
}

func TestSkillCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db.SkillRepo(), db.CategoryRepo())

	_, err := svc.Create(context.Background(), SkillInput{Name: "  ", Level: 150})
	require.Error(t, err)

	ve, ok := errs.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "level")
}

func TestSkillLevelBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db.SkillRepo(), db.CategoryRepo())
	ctx := context.Background()

	for _, level := range []int{0, -5, 101} {
		_, err := svc.Create(ctx, SkillInput{Name: "Go", Level: level})
		require.Error(t, err, "level %d", level)
		ve, ok := errs.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "The skill level must be between 1 and 100.", ve.Fields["level"])
	}

	for _, level := range []int{1, 100} {
		skill, err := svc.Create(ctx, SkillInput{Name: "Go", Level: level})
		require.NoError(t, err, "level %d", level)
		assert.Equal(t, level, skill.Level)
		require.NoError(t, svc.Delete(ctx, skill.ID))
	}
}

func TestSkillUpdateChangesCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db.SkillRepo(), db.CategoryRepo())
	ctx := context.Background()

	frontend := &models.Category{Name: "Frontend"}
	require.NoError(t, db.CategoryRepo().Add(frontend))
	backend := &models.Category{Name: "Backend"}
	require.NoError(t, db.CategoryRepo().Add(backend))

	skill, err := svc.Create(ctx, SkillInput{Name: "GraphQL", Level: 60, Category: "frontend"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, skill.ID, SkillInput{Name: "GraphQL", Level: 70, Category: "backend"})
	require.NoError(t, err)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, backend.ID, *updated.CategoryID)
	assert.Equal(t, 70, updated.Level)
}

func TestSkillDeleteIsPermanent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db.SkillRepo(), db.CategoryRepo())
	ctx := context.Background()

	skill, err := svc.Create(ctx, SkillInput{Name: "Go", Level: 90})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, skill.ID))

	_, err = svc.Get(ctx, skill.ID)
	assert.True(t, errs.IsNotFound(err))

	skills, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

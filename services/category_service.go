package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// CategoryService manages skill categories. The slug is derived from the
// name at creation and never changes afterwards, since skills reference
// categories through it.
type CategoryService struct {
	logger     zerolog.Logger
	categories *database.CategoryRepo
}

func NewCategoryService(categories *database.CategoryRepo) CategoryService {
	return CategoryService{
		logger:     log.With().Str("serviceName", "categoryService").Logger(),
		categories: categories,
	}
}

func (s CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		v := errs.NewValidationError()
		v.Add("name", "The name field is required.")
		return nil, v
	}

	slug := models.Slugify(name)
	existing, err := s.categories.FindBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("category")
	}

	category := &models.Category{Name: name, Slug: slug}
	if err := s.categories.Add(category); err != nil {
		return nil, errs.NewDatabaseError("create", "category", err)
	}
	return category, nil
}

func (s CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	return categories, nil
}

func (s CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("category")
		}
		return errs.NewDatabaseError("find", "category", err)
	}
	if err := s.categories.HardDelete(id); err != nil {
		return errs.NewDatabaseError("delete", "category", err)
	}
	return nil
}

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

// SkillService orchestrates skill writes. Skills carry no attachments and
// have no trash workflow: Delete removes the row outright.
type SkillService struct {
	logger     zerolog.Logger
	skills     *database.SkillRepo
	categories *database.CategoryRepo
}

func NewSkillService(skills *database.SkillRepo, categories *database.CategoryRepo) SkillService {
	return SkillService{
		logger:     log.With().Str("serviceName", "skillService").Logger(),
		skills:     skills,
		categories: categories,
	}
}

// SkillInput uses the public category slug; normalization resolves it to the
// internal category id.
type SkillInput struct {
	Name        string
	Level       int
	Description string
	Category    string
	Published   bool
}

func (in SkillInput) validate() error {
	v := errs.NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "The skill name field is required.")
	}
	if in.Level < 1 || in.Level > 100 {
		v.Add("level", "The skill level must be between 1 and 100.")
	}
	return v.ErrOrNil()
}

// resolveCategory maps a submitted slug to a category id. An unresolvable
// slug maps to nil rather than an error, matching the observed behavior of
// the system this replaces; the miss is logged so operator typos are at
// least visible.
func (s SkillService) resolveCategory(slug string) (*uuid.UUID, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	category, err := s.categories.FindBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	if category == nil {
		s.logger.Warn().Str("slug", slug).Msg("category slug did not resolve, storing null")
		return nil, nil
	}
	id := category.ID
	return &id, nil
}

func (s SkillService) Create(ctx context.Context, in SkillInput) (*models.Skill, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(in.Category)
	if err != nil {
		return nil, err
	}

	skill := &models.Skill{
		Name:        strings.TrimSpace(in.Name),
		Level:       in.Level,
		Description: in.Description,
		CategoryID:  categoryID,
		Published:   in.Published,
	}

	if err := s.skills.Add(skill); err != nil {
		return nil, errs.NewDatabaseError("create", "skill", err)
	}
	return skill, nil
}

func (s SkillService) Update(ctx context.Context, id uuid.UUID, in SkillInput) (*models.Skill, error) {
	skill, err := s.findSkill(id)
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(in.Category)
	if err != nil {
		return nil, err
	}

	skill.Name = strings.TrimSpace(in.Name)
	skill.Level = in.Level
	skill.Description = in.Description
	skill.CategoryID = categoryID
	skill.Category = nil
	skill.Published = in.Published

	if err := s.skills.Update(skill); err != nil {
		return nil, errs.NewDatabaseError("update", "skill", err)
	}
	return skill, nil
}

// Delete removes a skill permanently.
func (s SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findSkill(id); err != nil {
		return err
	}
	if err := s.skills.HardDelete(id); err != nil {
		return errs.NewDatabaseError("delete", "skill", err)
	}
	return nil
}

func (s SkillService) Get(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	return s.findSkill(id)
}

func (s SkillService) List(ctx context.Context) ([]*models.Skill, error) {
	skills, err := s.skills.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	return skills, nil
}

func (s SkillService) findSkill(id uuid.UUID) (*models.Skill, error) {
	skill, err := s.skills.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("skill")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skill", err)
	}
	return skill, nil
}

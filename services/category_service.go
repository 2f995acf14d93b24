package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) Create(p *Principal, name string) (*entity.Category, error) {
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "category"}); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}

	cat := &entity.Category{Name: name}
	if err := s.Repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Rename(p *Principal, id uint, name string) (*entity.Category, error) {
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "category"}); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}

	cat, err := s.find(id)
	if err != nil {
		return nil, err
	}
	cat.Name = name
	if err := s.Repo.Save(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Delete(p *Principal, id uint) error {
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "category"}); err != nil {
		return err
	}
	if _, err := s.find(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *CategoryService) find(id uint) (*entity.Category, error) {
	cat, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "category not found")
		}
		return nil, err
	}
	return cat, nil
}

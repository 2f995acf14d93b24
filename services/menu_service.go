package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	CatRepo  *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository, catRepo *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo, CatRepo: catRepo}
}

type MenuItemIn struct {
	RestaurantID uint            `json:"restaurantId" binding:"required"`
	CategoryID   uint            `json:"categoryId" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageUrl"`
}

func (s *MenuService) Create(p *Principal, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "menu_item"}); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, apperr.New(apperr.InvalidArgument, "price cannot be negative")
	}
	if _, err := s.RestRepo.FindByID(in.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "restaurant not found")
		}
		return nil, err
	}
	if _, err := s.CatRepo.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "category not found")
		}
		return nil, err
	}

	item := &entity.MenuItem{
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price.Round(2),
		ImageURL:     in.ImageURL,
		IsAvailable:  true,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// List is a public read; region scoping applies only to authenticated
// non-admin callers, matching the restaurant listing.
func (s *MenuService) List(p *Principal, restaurantID uint) ([]entity.MenuItem, error) {
	region := ""
	if p != nil && p.Role != entity.RoleAdmin && p.Region != entity.RegionGlobal {
		region = p.Region
	}
	return s.Repo.List(restaurantID, region)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.find(id)
}

type MenuItemUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	IsAvailable *bool            `json:"isAvailable"`
	CategoryID  *uint            `json:"categoryId"`
}

func (s *MenuService) Update(p *Principal, id uint, in MenuItemUpdate) (*entity.MenuItem, error) {
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "menu_item"}); err != nil {
		return nil, err
	}
	if _, err := s.find(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, apperr.New(apperr.InvalidArgument, "price cannot be negative")
		}
		updates["price"] = in.Price.Round(2)
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.CategoryID != nil {
		if _, err := s.CatRepo.FindByID(*in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.NotFound, "category not found")
			}
			return nil, err
		}
		updates["category_id"] = *in.CategoryID
	}
	if len(updates) == 0 {
		return s.find(id)
	}

	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.find(id)
}

func (s *MenuService) Delete(p *Principal, id uint) error {
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "menu_item"}); err != nil {
		return err
	}
	if _, err := s.find(id); err != nil {
		return err
	}
	referenced, err := s.Repo.HasOrderItems(id)
	if err != nil {
		return err
	}
	if referenced {
		return apperr.New(apperr.FailedPrecondition, "menu item appears on orders and cannot be deleted")
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) find(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "menu item not found")
		}
		return nil, err
	}
	return item, nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type RestaurantIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CuisineType string `json:"cuisineType"`
	Region      string `json:"region" binding:"required"`
	Rating      string `json:"rating"`
	ImageURL    string `json:"imageUrl"`
}

func (s *RestaurantService) Create(p *Principal, in *RestaurantIn) (*entity.Restaurant, error) {
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "restaurant", Region: in.Region}); err != nil {
		return nil, err
	}
	if !entity.ValidRestaurantRegion(in.Region) {
		return nil, apperr.Newf(apperr.InvalidArgument, "unknown region %q", in.Region)
	}

	creator := p.ID
	rest := &entity.Restaurant{
		Name:        in.Name,
		Description: in.Description,
		CuisineType: in.CuisineType,
		Region:      in.Region,
		Rating:      in.Rating,
		ImageURL:    in.ImageURL,
		IsActive:    true,
		CreatedByID: &creator,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// List is region-scoped for non-admin callers, mirroring what they are
// allowed to read.
func (s *RestaurantService) List(p *Principal) ([]entity.Restaurant, error) {
	if p.Role == entity.RoleAdmin || p.Region == entity.RegionGlobal {
		return s.Repo.List("")
	}
	return s.Repo.List(p.Region)
}

func (s *RestaurantService) Get(p *Principal, id uint) (*entity.Restaurant, error) {
	rest, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := Require(p, ActionCatalogRead, Resource{Kind: "restaurant", Region: rest.Region}); err != nil {
		return nil, err
	}
	return rest, nil
}

type RestaurantUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CuisineType *string `json:"cuisineType"`
	Region      *string `json:"region"`
	Rating      *string `json:"rating"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

func (s *RestaurantService) Update(p *Principal, id uint, in RestaurantUpdate) (*entity.Restaurant, error) {
	rest, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "restaurant", Region: rest.Region}); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.CuisineType != nil {
		updates["cuisine_type"] = *in.CuisineType
	}
	if in.Region != nil {
		if !entity.ValidRestaurantRegion(*in.Region) {
			return nil, apperr.Newf(apperr.InvalidArgument, "unknown region %q", *in.Region)
		}
		updates["region"] = *in.Region
	}
	if in.Rating != nil {
		updates["rating"] = *in.Rating
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		return rest, nil
	}

	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// Delete refuses while orders reference the restaurant (PROTECT semantics).
func (s *RestaurantService) Delete(p *Principal, id uint) error {
	rest, err := s.find(id)
	if err != nil {
		return err
	}
	if err := Require(p, ActionCatalogWrite, Resource{Kind: "restaurant", Region: rest.Region}); err != nil {
		return err
	}

	hasOrders, err := s.Repo.HasOrders(id)
	if err != nil {
		return err
	}
	if hasOrders {
		return apperr.New(apperr.FailedPrecondition, "restaurant has orders and cannot be deleted")
	}
	return s.Repo.Delete(id)
}

func (s *RestaurantService) find(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "restaurant not found")
		}
		return nil, err
	}
	return rest, nil
}

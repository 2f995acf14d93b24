package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/repository"
)

// UserService is the admin-side user management: listing, role and region
// changes, deactivation, deletion.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

// List shows all users to admins and the caller's region to managers.
func (s *UserService) List(p *Principal) ([]entity.User, error) {
	switch p.Role {
	case entity.RoleAdmin:
		return s.Repo.List("")
	case entity.RoleManager:
		if p.Region == entity.RegionGlobal {
			return s.Repo.List("")
		}
		return s.Repo.List(p.Region)
	}
	return nil, apperr.New(apperr.PermissionDenied, "user records are admin/manager only")
}

func (s *UserService) Get(p *Principal, userID uint) (*entity.User, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	res := Resource{Kind: "user", Region: user.Region, OwnerID: user.ID}
	if err := Require(p, ActionUserRead, res); err != nil {
		return nil, err
	}
	return user, nil
}

type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role"`
	Region    *string `json:"region"`
	IsActive  *bool   `json:"isActive"`
}

func (s *UserService) Update(p *Principal, userID uint, in UserUpdate) (*entity.User, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	if err := Require(p, ActionUserWrite, Resource{Kind: "user", Region: user.Region, OwnerID: user.ID}); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, apperr.Newf(apperr.InvalidArgument, "unknown role %q", *in.Role)
		}
		updates["role"] = *in.Role
	}
	if in.Region != nil {
		if !entity.ValidRegion(*in.Region) {
			return nil, apperr.Newf(apperr.InvalidArgument, "unknown region %q", *in.Region)
		}
		// the global region grants cross-region authority; only admins hand
		// it out (enforced above: user writes are admin only)
		updates["region"] = *in.Region
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.Repo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(userID)
}

// Delete refuses while the user still has orders (PROTECT semantics).
func (s *UserService) Delete(p *Principal, userID uint) error {
	user, err := s.find(userID)
	if err != nil {
		return err
	}
	if err := Require(p, ActionUserWrite, Resource{Kind: "user", Region: user.Region, OwnerID: user.ID}); err != nil {
		return err
	}

	hasOrders, err := s.Repo.HasOrders(userID)
	if err != nil {
		return err
	}
	if hasOrders {
		return apperr.New(apperr.FailedPrecondition, "user has orders and cannot be deleted")
	}
	return s.Repo.Delete(userID)
}

func (s *UserService) find(userID uint) (*entity.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

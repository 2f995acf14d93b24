package services

import (
	"github.com/shopspring/decimal"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/repository"
)

// DashboardService produces the per-role overview numbers. Revenue counts
// orders that were committed and not cancelled.
type DashboardService struct {
	UserRepo  *repository.UserRepository
	RestRepo  *repository.RestaurantRepository
	OrderRepo *repository.OrderRepository
}

func NewDashboardService(ur *repository.UserRepository, rr *repository.RestaurantRepository, or *repository.OrderRepository) *DashboardService {
	return &DashboardService{UserRepo: ur, RestRepo: rr, OrderRepo: or}
}

type AdminDashboard struct {
	TotalUsers       int64                             `json:"totalUsers"`
	TotalRestaurants int64                             `json:"totalRestaurants"`
	TotalOrders      int64                             `json:"totalOrders"`
	TotalRevenue     decimal.Decimal                   `json:"totalRevenue"`
	RecentOrders     []repository.OrderSummary         `json:"recentOrders"`
	TopRestaurants   []repository.RestaurantOrderCount `json:"topRestaurants"`
}

func (s *DashboardService) Admin(p *Principal) (*AdminDashboard, error) {
	if p.Role != entity.RoleAdmin {
		return nil, apperr.New(apperr.PermissionDenied, "admin dashboard is admin only")
	}

	out := &AdminDashboard{}
	var err error
	if out.TotalUsers, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if out.TotalRestaurants, err = s.RestRepo.Count(""); err != nil {
		return nil, err
	}
	if out.TotalOrders, err = s.OrderRepo.CountOrders(0, ""); err != nil {
		return nil, err
	}
	if out.TotalRevenue, err = s.OrderRepo.SumRevenue(0, ""); err != nil {
		return nil, err
	}
	if out.RecentOrders, err = s.OrderRepo.RecentOrders(0, "", 5); err != nil {
		return nil, err
	}
	if out.TopRestaurants, err = s.OrderRepo.TopRestaurants(0, "", 3); err != nil {
		return nil, err
	}
	return out, nil
}

type ManagerDashboard struct {
	Region           string                            `json:"region"`
	TotalRestaurants int64                             `json:"totalRestaurants"`
	TotalOrders      int64                             `json:"totalOrders"`
	TotalRevenue     decimal.Decimal                   `json:"totalRevenue"`
	RecentOrders     []repository.OrderSummary         `json:"recentOrders"`
	TopRestaurants   []repository.RestaurantOrderCount `json:"topRestaurants"`
}

func (s *DashboardService) Manager(p *Principal) (*ManagerDashboard, error) {
	if p.Role != entity.RoleManager {
		return nil, apperr.New(apperr.PermissionDenied, "manager dashboard is manager only")
	}

	region := p.Region
	if region == entity.RegionGlobal {
		region = ""
	}

	out := &ManagerDashboard{Region: p.Region}
	var err error
	if out.TotalRestaurants, err = s.RestRepo.Count(region); err != nil {
		return nil, err
	}
	if out.TotalOrders, err = s.OrderRepo.CountOrders(0, region); err != nil {
		return nil, err
	}
	if out.TotalRevenue, err = s.OrderRepo.SumRevenue(0, region); err != nil {
		return nil, err
	}
	if out.RecentOrders, err = s.OrderRepo.RecentOrders(0, region, 5); err != nil {
		return nil, err
	}
	if out.TopRestaurants, err = s.OrderRepo.TopRestaurants(0, region, 3); err != nil {
		return nil, err
	}
	return out, nil
}

type MemberDashboard struct {
	TotalOrders  int64                             `json:"totalOrders"`
	TotalSpent   decimal.Decimal                   `json:"totalSpent"`
	RecentOrders []repository.OrderSummary         `json:"recentOrders"`
	TopChoices   []repository.RestaurantOrderCount `json:"topRestaurants"`
}

func (s *DashboardService) Member(p *Principal) (*MemberDashboard, error) {
	out := &MemberDashboard{}
	var err error
	if out.TotalOrders, err = s.OrderRepo.CountOrders(p.ID, ""); err != nil {
		return nil, err
	}
	if out.TotalSpent, err = s.OrderRepo.SumRevenue(p.ID, ""); err != nil {
		return nil, err
	}
	if out.RecentOrders, err = s.OrderRepo.RecentOrders(p.ID, "", 5); err != nil {
		return nil, err
	}
	if out.TopChoices, err = s.OrderRepo.TopRestaurants(p.ID, "", 3); err != nil {
		return nil, err
	}
	return out, nil
}

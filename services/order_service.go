package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo}
}

// List returns orders newest first, scoped by role: members their own,
// managers their region, admins everything.
func (s *OrderService) List(p *Principal, limit int) ([]entity.Order, error) {
	switch p.Role {
	case entity.RoleAdmin:
		return s.Repo.List(0, "", limit)
	case entity.RoleManager:
		if p.Region == entity.RegionGlobal {
			return s.Repo.List(0, "", limit)
		}
		return s.Repo.List(0, p.Region, limit)
	default:
		return s.Repo.List(p.ID, "", limit)
	}
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(p *Principal, orderID uint) (*OrderDetail, error) {
	order, res, err := s.load(orderID)
	if err != nil {
		return nil, err
	}
	if err := Require(p, ActionOrderRead, res); err != nil {
		return nil, err
	}
	items, err := s.Repo.GetItems(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *order, Items: items}, nil
}

// UpdateStatus moves the order along the state machine. Unknown statuses are
// InvalidArgument; anything off the adjacency table (including any move out
// of a terminal state) is FailedPrecondition.
func (s *OrderService) UpdateStatus(p *Principal, orderID uint, newStatus string) (*entity.Order, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, apperr.Newf(apperr.InvalidArgument, "unknown status %q", newStatus)
	}

	order, res, err := s.load(orderID)
	if err != nil {
		return nil, err
	}
	if err := Require(p, ActionStatusUpdate, res); err != nil {
		return nil, err
	}

	if order.Terminal() {
		return nil, apperr.Newf(apperr.FailedPrecondition, "order is already %s", order.Status)
	}
	if !canTransition(order.Status, newStatus) {
		return nil, apperr.Newf(apperr.FailedPrecondition, "cannot move from %s to %s", order.Status, newStatus)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var affected int64
		var err error
		if newStatus == entity.StatusCancelled {
			affected, err = s.Repo.CancelGuard(tx, order.ID, []string{order.Status}, time.Now())
		} else {
			affected, err = s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, newStatus)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.FailedPrecondition, "order status changed concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(order.ID)
}

// Cancel is allowed only while the order is still pending or confirmed.
func (s *OrderService) Cancel(p *Principal, orderID uint) (*entity.Order, error) {
	order, res, err := s.load(orderID)
	if err != nil {
		return nil, err
	}
	if err := Require(p, ActionOrderCancel, res); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelGuard(tx, order.ID, cancellable, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.FailedPrecondition, "order cannot be cancelled at this stage")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(order.ID)
}

func (s *OrderService) UpdatePaymentMethod(p *Principal, orderID uint, method string) (*entity.Order, error) {
	if !entity.ValidPaymentMethod(method) {
		return nil, apperr.Newf(apperr.InvalidArgument, "unknown payment method %q", method)
	}

	order, res, err := s.load(orderID)
	if err != nil {
		return nil, err
	}
	if err := Require(p, ActionPaymentUpdate, res); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdatePaymentMethod(order.ID, method); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(order.ID)
}

func (s *OrderService) Delete(p *Principal, orderID uint) error {
	_, res, err := s.load(orderID)
	if err != nil {
		return err
	}
	if err := Require(p, ActionOrderDelete, res); err != nil {
		return err
	}
	return s.Repo.Delete(orderID)
}

// load fetches the order plus the resource descriptor (owner, restaurant
// region) the authorization rules need.
func (s *OrderService) load(orderID uint) (*entity.Order, Resource, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Resource{}, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, Resource{}, err
	}
	res := Resource{Kind: "order", OwnerID: order.CustomerID}
	if rest, err := s.RestRepo.FindByID(order.RestaurantID); err == nil {
		res.Region = rest.Region
	}
	return order, res, nil
}

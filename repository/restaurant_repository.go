package repository

import (
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// List returns active restaurants, scoped to one region when region is
// non-empty.
func (r *RestaurantRepository) List(region string) ([]entity.Restaurant, error) {
	q := r.DB.Where("is_active = ?", true).Order("id")
	if region != "" {
		q = q.Where("region = ?", region)
	}
	var out []entity.Restaurant
	err := q.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) Count(region string) (int64, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if region != "" {
		q = q.Where("region = ?", region)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// HasOrders backs the PROTECT rule: a restaurant with orders cannot be
// deleted.
func (r *RestaurantRepository) HasOrders(restID uint) (bool, error) {
	var n int64
	if err := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Restaurant{}, id).Error
}

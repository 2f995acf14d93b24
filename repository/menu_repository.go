package repository

import (
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns available items; restaurantID and region filters are optional.
// The region filter goes through the owning restaurant.
func (r *MenuRepository) List(restaurantID uint, region string) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{}).Where("menu_items.is_available = ?", true)
	if restaurantID != 0 {
		q = q.Where("menu_items.restaurant_id = ?", restaurantID)
	}
	if region != "" {
		q = q.Joins("JOIN restaurants r ON r.id = menu_items.restaurant_id").
			Where("r.region = ?", region)
	}
	var out []entity.MenuItem
	err := q.Order("menu_items.category_id, menu_items.name").Find(&out).Error
	return out, err
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// HasOrderItems backs the PROTECT rule: a menu item referenced by order
// lines cannot be deleted.
func (r *MenuRepository) HasOrderItems(menuItemID uint) (bool, error) {
	var n int64
	if err := r.DB.Model(&entity.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

package repository

import (
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, or only one region's when region is non-empty.
func (r *UserRepository) List(region string) ([]entity.User, error) {
	q := r.DB.Model(&entity.User{}).Order("id")
	if region != "" {
		q = q.Where("region = ?", region)
	}
	var users []entity.User
	err := q.Find(&users).Error
	return users, err
}

func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Count(&n).Error
	return n, err
}

// HasOrders backs the PROTECT rule: a user with orders cannot be deleted.
func (r *UserRepository) HasOrders(userID uint) (bool, error) {
	var n int64
	if err := r.DB.Model(&entity.Order{}).Where("customer_id = ?", userID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) Delete(userID uint) error {
	return r.DB.Delete(&entity.User{}, userID).Error
}

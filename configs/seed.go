package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/abdul-09/slooze-restaurant/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		Role:      entity.RoleAdmin,
		Region:    entity.RegionGlobal,
		IsActive:  true,
	}
	return db.Create(&admin).Error
}

// SeedCategories seeds the default menu categories.
func SeedCategories() error {
	db := DB()
	for _, name := range []string{"Starters", "Main Course", "Desserts", "Beverages"} {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Println("categories seeded")
	return nil
}

package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

const (
	RegionIndia   = "india"
	RegionAmerica = "america"
	RegionGlobal  = "global"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

func ValidRegion(region string) bool {
	switch region {
	case RegionIndia, RegionAmerica, RegionGlobal:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:member" json:"role"`
	Region    string `gorm:"index;not null" json:"region"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`

	// Relations — preload only when needed
	RestaurantsCreated []Restaurant `gorm:"foreignKey:CreatedByID" json:"-"`
	Orders             []Order      `gorm:"foreignKey:CustomerID" json:"-"`
	Cart               *Cart        `gorm:"foreignKey:CustomerID" json:"-"`
}

package entity

import (
	"strings"
	"unicode"

	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Slug string `gorm:"uniqueIndex" json:"slug"`

	MenuItems []MenuItem `json:"-"`
}

// BeforeSave derives the slug from the name.
func (cat *Category) BeforeSave(tx *gorm.DB) error {
	cat.Slug = Slugify(cat.Name)
	return nil
}

func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

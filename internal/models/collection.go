package models

import "gorm.io/gorm"

const (
	ThemeLight    = "light"
	ThemeDark     = "dark"
	ThemeColorful = "colorful"
)

// ValidTheme reports whether theme is one of the supported collection themes.
func ValidTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeColorful:
		return true
	}
	return false
}

type Collection struct {
	gorm.Model

	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	IsPublic    bool   `gorm:"not null"`
	Image       string
	Theme       string `gorm:"default:light"`

	// Relationships
	Owner User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Links []Link `gorm:"foreignKey:CollectionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package models

import "gorm.io/gorm"

type Link struct {
	gorm.Model

	CollectionID uint   `gorm:"not null;index"`
	UserID       uint   `gorm:"not null;index"`
	URL          string `gorm:"not null"`
	Image        string `gorm:"not null"`
	Description  string
	Position     int `gorm:"not null"`

	// Relationships
	Collection Collection `gorm:"foreignKey:CollectionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

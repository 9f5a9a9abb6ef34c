package models

import (
	"strings"

	"gorm.io/gorm"
)

// Badge is a display-only achievement shown on the profile screen.
type Badge struct {
	DefaultModel
	Code  string `gorm:"uniqueIndex"`
	Title string
	Icon  string
}

func (b Badge) Self() string {
	return "Badge"
}

func (b *Badge) BeforeSave(_ *gorm.DB) error {
	b.Code = strings.TrimSpace(b.Code)
	b.Title = strings.TrimSpace(b.Title)

	return nil
}

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Deal is a student discount shown in the deals list.
type Deal struct {
	DefaultModel
	Title       string
	Description string
	Link        string
	ExpiresAt   time.Time
	Tags        []string `gorm:"serializer:json"`
}

func (d Deal) Self() string {
	return "Deal"
}

func (d *Deal) BeforeSave(_ *gorm.DB) error {
	d.Title = strings.TrimSpace(d.Title)

	if !d.ExpiresAt.IsZero() {
		d.ExpiresAt = d.ExpiresAt.In(time.UTC)
	}

	return nil
}

// AfterFind enforces UTC for the expiry, same as the model timestamps.
func (d *Deal) AfterFind(tx *gorm.DB) (err error) {
	err = d.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	d.ExpiresAt = d.ExpiresAt.In(time.UTC)
	return
}

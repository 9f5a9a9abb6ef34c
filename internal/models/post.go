package models

import (
	"strings"

	"gorm.io/gorm"
)

// Post is an entry in the community feed.
type Post struct {
	DefaultModel
	Author       string
	AuthorAvatar string
	Text         string
	ImageURL     string
	Likes        int
	Comments     int
}

func (p Post) Self() string {
	return "Post"
}

func (p *Post) BeforeSave(_ *gorm.DB) error {
	p.Text = strings.TrimSpace(p.Text)

	return nil
}

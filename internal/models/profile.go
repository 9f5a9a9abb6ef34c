package models

import (
	"strings"

	"gorm.io/gorm"
)

// defaultAvatar is a neutral user icon as a data URI, used until the user
// uploads a photo.
const defaultAvatar = "data:image/svg+xml,%3csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 24 24' fill='%239CA3AF'%3e%3cpath fill-rule='evenodd' d='M18.685 19.097A9.723 9.723 0 0021.75 12c0-5.385-4.365-9.75-9.75-9.75S2.25 6.615 2.25 12a9.723 9.723 0 003.065 7.097A9.716 9.716 0 0012 21.75a9.716 9.716 0 006.685-2.653zm-12.54-1.285A7.486 7.486 0 0112 15a7.486 7.486 0 015.855 2.812A8.224 8.224 0 0112 20.25a8.224 8.224 0 01-5.855-2.438zM15.75 9a3.75 3.75 0 11-7.5 0 3.75 3.75 0 017.5 0z' clip-rule='evenodd'/%3e%3c/svg%3e"

// Profile holds the user's profile. There is exactly one profile row, the
// backend serves a single user.
type Profile struct {
	DefaultModel
	DisplayName string
	School      string
	Bio         string
	PhotoURL    string
}

func (p Profile) Self() string {
	return "Profile"
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.School = strings.TrimSpace(p.School)

	return nil
}

// GetProfile returns the profile, creating it with default content when no
// profile exists yet.
func GetProfile() (Profile, error) {
	var profile Profile
	err := DB.Attrs(Profile{
		DisplayName: "Fredrik Åkare",
		School:      "KTH Royal Institute of Technology",
		Bio:         "CS student trying to save up for a new laptop. Avid budgeter and coffee enthusiast.",
		PhotoURL:    defaultAvatar,
	}).FirstOrCreate(&profile).Error
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}

package models

import (
	"time"
)

// Seed fills an empty database with the initial content: the default
// profile, the starter badges, the deals list and a few community posts.
// Tables that already contain data are left alone, so seeding is safe to
// run on every startup.
func Seed() error {
	_, err := GetProfile()
	if err != nil {
		return err
	}

	err = seedBadges()
	if err != nil {
		return err
	}

	err = seedDeals()
	if err != nil {
		return err
	}

	return seedPosts()
}

func seedBadges() error {
	var count int64
	err := DB.Model(&Badge{}).Count(&count).Error
	if err != nil || count > 0 {
		return err
	}

	badges := []Badge{
		{Code: "SAVER_1", Title: "Budget Beginner", Icon: "💰"},
		{Code: "STREAK_7", Title: "7-Day Streak", Icon: "🔥"},
		{Code: "COMMUNITY_1", Title: "First Post", Icon: "✍️"},
	}

	return DB.Create(&badges).Error
}

func seedDeals() error {
	var count int64
	err := DB.Model(&Deal{}).Count(&count).Error
	if err != nil || count > 0 {
		return err
	}

	deals := []Deal{
		{
			Title:       "50% off Coffee",
			Description: "Get half price on any coffee at Espresso House with your student ID.",
			Link:        "#",
			ExpiresAt:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"Food & Drink"},
		},
		{
			Title:       "15% off at Apple",
			Description: "Student discount on MacBooks and iPads. Perfect for your studies.",
			Link:        "#",
			ExpiresAt:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"Tech", "Education"},
		},
		{
			Title:       "Student price on SL",
			Description: "Travel cheaper in Stockholm with the student monthly pass.",
			Link:        "#",
			ExpiresAt:   time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"Transport"},
		},
		{
			Title:       "10% off Course Literature",
			Description: "Discount at Akademibokhandeln on all your course books.",
			Link:        "#",
			ExpiresAt:   time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"Books", "Education"},
		},
	}

	return DB.Create(&deals).Error
}

func seedPosts() error {
	var count int64
	err := DB.Model(&Post{}).Count(&count).Error
	if err != nil || count > 0 {
		return err
	}

	posts := []Post{
		{
			Author:       "Anna S.",
			AuthorAvatar: "https://picsum.photos/id/237/100/100",
			Text:         "Just managed to save 500 SEK this month by cooking at home! Small wins! 🎉",
			Likes:        15,
			Comments:     4,
		},
		{
			Author:       "Björn L.",
			AuthorAvatar: "https://picsum.photos/id/238/100/100",
			Text:         "Anyone have tips for cheap textbooks? The prices are insane this semester.",
			ImageURL:     "https://picsum.photos/seed/picsum/400/200",
			Likes:        8,
			Comments:     12,
		},
		{
			Author:       "Carla M.",
			AuthorAvatar: "https://picsum.photos/id/239/100/100",
			Text:         "My saving goal for a trip to Lofoten is 30% complete! So motivated right now.",
			Likes:        42,
			Comments:     7,
		},
	}

	return DB.Create(&posts).Error
}

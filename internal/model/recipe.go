package model

import (
	"strings"
	"time"
)

// Recipe is a shared recipe. Images holds up to three comma-joined image URLs.
type Recipe struct {
	ID          int64     `json:"recipeId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	Steps       string    `json:"steps"`
	Images      string    `json:"images"`
	Video       string    `json:"video"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SplitImages splits a comma-joined image list, dropping blanks.
func SplitImages(s string) []string {
	out := make([]string, 0, 3)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

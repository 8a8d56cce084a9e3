package model

import "time"

// CookingPlan groups recipes under a named plan. PlanRecipes is free text.
type CookingPlan struct {
	ID              int64     `json:"planId"`
	PlanName        string    `json:"planName"`
	PlanType        string    `json:"planType"`
	PlanDescription string    `json:"planDescription"`
	PlanRecipes     string    `json:"planRecipes"`
	PlanImage       string    `json:"planImage"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

package dto

import (
	"time"

	"main/model"
)

// CreateChallengeRequest is the POST /api/challenges body. CurrentDay,
// CompletedDays and IsActive in the request are ignored: creation always
// starts a fresh challenge.
type CreateChallengeRequest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Author      string     `json:"author"`
	StartDate   *time.Time `json:"startDate"`
}

// UpdateChallengeRequest is the PUT /api/challenges/:id body. Title and
// Description are applied only when non-empty; CurrentDay and IsActive are
// applied whenever present in the JSON, so 0 and false still count.
// CompletedDays is applied when non-nil.
type UpdateChallengeRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	CurrentDay    *int   `json:"currentDay"`
	CompletedDays []bool `json:"completedDays"`
	IsActive      *bool  `json:"isActive"`
}

// ChallengeListOptions carries the parsed query parameters for listing
// challenges. Status is one of "", "active", "completed", "paused".
type ChallengeListOptions struct {
	Status string
	Author string
	Sort   string
}

// ChallengeResponse is a challenge plus its derived fields. Progress,
// CompletedCount and DaysRemaining are computed here, never stored.
type ChallengeResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Author         string    `json:"author"`
	StartDate      time.Time `json:"startDate"`
	CurrentDay     int       `json:"currentDay"`
	CompletedDays  []bool    `json:"completedDays"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	Progress       int       `json:"progress"`
	CompletedCount int       `json:"completedCount"`
	DaysRemaining  int       `json:"daysRemaining"`
}

// ToChallengeResponse attaches the derived progress fields to a challenge.
func ToChallengeResponse(challenge *model.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:             challenge.ID,
		Title:          challenge.Title,
		Description:    challenge.Description,
		Author:         challenge.Author,
		StartDate:      challenge.StartDate,
		CurrentDay:     challenge.CurrentDay,
		CompletedDays:  challenge.CompletedDays,
		IsActive:       challenge.IsActive,
		CreatedAt:      challenge.CreatedAt,
		Progress:       challenge.CurrentDay,
		CompletedCount: challenge.CompletedCount(),
		DaysRemaining:  model.ChallengeLength - challenge.CurrentDay,
	}
}

// ToChallengeResponses converts a result set in order.
func ToChallengeResponses(challenges []*model.Challenge) []ChallengeResponse {
	responses := make([]ChallengeResponse, len(challenges))
	for i, challenge := range challenges {
		responses[i] = ToChallengeResponse(challenge)
	}
	return responses
}

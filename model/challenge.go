package model

import (
	"time"
)

// ChallengeLength is the fixed number of days in a challenge. CompletedDays
// always holds exactly this many entries.
const ChallengeLength = 100

type Challenge struct {
	ID            string    `bson:"id" json:"id" validate:"required"`
	Title         string    `bson:"title" json:"title" validate:"required,max=200"`
	Description   string    `bson:"description" json:"description" validate:"required,max=1000"`
	Author        string    `bson:"author" json:"author" validate:"required,max=100"`
	StartDate     time.Time `bson:"startDate" json:"startDate"`
	CurrentDay    int       `bson:"currentDay" json:"currentDay" validate:"min=0,max=100"`
	CompletedDays []bool    `bson:"completedDays" json:"completedDays"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// CompletedCount returns how many days are marked done.
func (c *Challenge) CompletedCount() int {
	count := 0
	for _, done := range c.CompletedDays {
		if done {
			count++
		}
	}
	return count
}

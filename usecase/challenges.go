package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"
)

type ChallengeService struct {
	ChallengesRepo *repository.ChallengesRepo

	// Day toggles are read-modify-write, so writes to the same challenge
	// are serialized per id.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewChallengeService(repo *repository.ChallengesRepo) *ChallengeService {
	return &ChallengeService{
		ChallengesRepo: repo,
		locks:          make(map[string]*sync.Mutex),
	}
}

func (s *ChallengeService) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// buildChallengeFilter translates the list query parameters into a Mongo
// filter. "completed" means the counter reached 100 whether or not the
// challenge is still flagged active.
func buildChallengeFilter(opts dto.ChallengeListOptions) bson.M {
	filter := bson.M{}

	switch opts.Status {
	case "active":
		filter["isActive"] = true
		filter["currentDay"] = bson.M{"$lt": model.ChallengeLength}
	case "completed":
		filter["currentDay"] = bson.M{"$gte": model.ChallengeLength}
	case "paused":
		filter["isActive"] = false
		filter["currentDay"] = bson.M{"$lt": model.ChallengeLength}
	}

	if opts.Author != "" {
		filter["author"] = substringMatch(opts.Author)
	}

	return filter
}

func challengeValidationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "ID":
		return "ID is required"
	case "Title":
		if fieldErr.Tag() == "max" {
			return "Title cannot be more than 200 characters"
		}
		return "Title is required"
	case "Description":
		if fieldErr.Tag() == "max" {
			return "Description cannot be more than 1000 characters"
		}
		return "Description is required"
	case "Author":
		if fieldErr.Tag() == "max" {
			return "Author name cannot be more than 100 characters"
		}
		return "Author is required"
	case "CurrentDay":
		if fieldErr.Tag() == "max" {
			return "Current day cannot exceed 100"
		}
		return "Current day cannot be negative"
	}
	return "Invalid challenge"
}

func validateChallenge(challenge *model.Challenge) error {
	if err := utils.Validate.Struct(challenge); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &ValidationError{Message: challengeValidationMessage(fieldErrs[0])}
		}
		return err
	}
	return nil
}

// List returns every challenge matching the status and author filters. No
// pagination here.
func (s *ChallengeService) List(ctx context.Context, opts dto.ChallengeListOptions) ([]*model.Challenge, error) {
	return s.ChallengesRepo.Find(ctx, buildChallengeFilter(opts), parseSort(opts.Sort))
}

func (s *ChallengeService) Get(ctx context.Context, id string) (*model.Challenge, error) {
	return s.ChallengesRepo.FindByID(ctx, id)
}

// Create stores a fresh challenge. The day counter, completion bitmap and
// active flag are forced to their starting values no matter what the request
// carried.
func (s *ChallengeService) Create(ctx context.Context, req *dto.CreateChallengeRequest) (*model.Challenge, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	author := strings.TrimSpace(req.Author)

	if title == "" || description == "" || author == "" {
		return nil, &ValidationError{Message: "Title, description, and author are required"}
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	challenge := &model.Challenge{
		ID:            req.ID,
		Title:         title,
		Description:   description,
		Author:        author,
		StartDate:     startDate,
		CurrentDay:    0,
		CompletedDays: make([]bool, model.ChallengeLength),
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	if err := validateChallenge(challenge); err != nil {
		return nil, err
	}

	if err := s.ChallengesRepo.Insert(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// buildChallengeUpdate turns a partial update request into a $set document.
// Title and description only apply when non-empty; currentDay and isActive
// apply whenever present, so 0 and false still land.
func buildChallengeUpdate(req *dto.UpdateChallengeRequest) (bson.M, error) {
	set := bson.M{}

	if title := strings.TrimSpace(req.Title); title != "" {
		if len([]rune(title)) > 200 {
			return nil, &ValidationError{Message: "Title cannot be more than 200 characters"}
		}
		set["title"] = title
	}

	if description := strings.TrimSpace(req.Description); description != "" {
		if len([]rune(description)) > 1000 {
			return nil, &ValidationError{Message: "Description cannot be more than 1000 characters"}
		}
		set["description"] = description
	}

	if req.CurrentDay != nil {
		if *req.CurrentDay < 0 {
			return nil, &ValidationError{Message: "Current day cannot be negative"}
		}
		if *req.CurrentDay > model.ChallengeLength {
			return nil, &ValidationError{Message: "Current day cannot exceed 100"}
		}
		set["currentDay"] = *req.CurrentDay
	}

	if req.CompletedDays != nil {
		if len(req.CompletedDays) != model.ChallengeLength {
			return nil, &ValidationError{Message: "completedDays must contain exactly 100 entries"}
		}
		set["completedDays"] = req.CompletedDays
	}

	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}

	return set, nil
}

// Update applies a partial update to a challenge.
func (s *ChallengeService) Update(ctx context.Context, id string, req *dto.UpdateChallengeRequest) (*model.Challenge, error) {
	set, err := buildChallengeUpdate(req)
	if err != nil {
		return nil, err
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	// Nothing to apply still answers with the current record, or 404.
	if len(set) == 0 {
		return s.ChallengesRepo.FindByID(ctx, id)
	}

	return s.ChallengesRepo.Update(ctx, id, set)
}

func (s *ChallengeService) Delete(ctx context.Context, id string) (*model.Challenge, error) {
	return s.ChallengesRepo.Delete(ctx, id)
}

// applyToggle flips the completion bit for a 1-based day and ratchets the
// day counter forward. The counter never moves backwards, even when a later
// day gets un-completed.
func applyToggle(challenge *model.Challenge, day int) {
	if len(challenge.CompletedDays) != model.ChallengeLength {
		normalized := make([]bool, model.ChallengeLength)
		copy(normalized, challenge.CompletedDays)
		challenge.CompletedDays = normalized
	}

	challenge.CompletedDays[day-1] = !challenge.CompletedDays[day-1]
	if day > challenge.CurrentDay {
		challenge.CurrentDay = day
	}
}

// ToggleDay flips completion of the given day on a challenge and persists the
// result. The read-modify-write runs under the per-id lock so concurrent
// toggles on one challenge cannot lose updates.
func (s *ChallengeService) ToggleDay(ctx context.Context, id string, day int) (*model.Challenge, error) {
	if day < 1 || day > model.ChallengeLength {
		return nil, &ValidationError{Message: "Day must be between 1 and 100"}
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	challenge, err := s.ChallengesRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyToggle(challenge, day)

	return s.ChallengesRepo.Update(ctx, id, bson.M{
		"completedDays": challenge.CompletedDays,
		"currentDay":    challenge.CurrentDay,
	})
}

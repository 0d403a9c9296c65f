package handler

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"
)

func challengeError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Message)
	case errors.Is(err, repository.ErrDuplicateID):
		utils.BadRequest(c, "Challenge with this ID already exists")
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, "Challenge not found")
	default:
		log.Printf("Challenge operation failed: %v", err)
		utils.InternalError(c, "Internal server error")
	}
}

// ListChallengesHandler answers GET /api/challenges. Challenge listings are
// filtered and sorted but never paginated.
func ListChallengesHandler(c *gin.Context, service *usecase.ChallengeService) {
	opts := dto.ChallengeListOptions{
		Status: c.Query("status"),
		Author: c.Query("author"),
		Sort:   c.Query("sort"),
	}

	challenges, err := service.List(c.Request.Context(), opts)
	if err != nil {
		challengeError(c, err)
		return
	}

	utils.Success(c, dto.ToChallengeResponses(challenges))
}

func GetChallengeHandler(c *gin.Context, service *usecase.ChallengeService) {
	challenge, err := service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		challengeError(c, err)
		return
	}
	utils.Success(c, dto.ToChallengeResponse(challenge))
}

func CreateChallengeHandler(c *gin.Context, service *usecase.ChallengeService) {
	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	challenge, err := service.Create(c.Request.Context(), &req)
	if err != nil {
		challengeError(c, err)
		return
	}

	utils.Created(c, "Challenge created successfully", dto.ToChallengeResponse(challenge))
}

func UpdateChallengeHandler(c *gin.Context, service *usecase.ChallengeService) {
	var req dto.UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	challenge, err := service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		challengeError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Challenge updated successfully", dto.ToChallengeResponse(challenge))
}

func DeleteChallengeHandler(c *gin.Context, service *usecase.ChallengeService) {
	challenge, err := service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		challengeError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "Challenge deleted successfully", dto.ToChallengeResponse(challenge))
}

// ToggleDayHandler answers PATCH /api/challenges/:id/toggle-day/:day.
func ToggleDayHandler(c *gin.Context, service *usecase.ChallengeService) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.BadRequest(c, "Day must be between 1 and 100")
		return
	}

	challenge, err := service.ToggleDay(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		challengeError(c, err)
		return
	}

	utils.SuccessWithMessage(c,
		fmt.Sprintf("Day %d toggled successfully", day),
		dto.ToChallengeResponse(challenge))
}

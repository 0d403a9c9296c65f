package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"
)

func blogPostError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Message)
	case errors.Is(err, repository.ErrDuplicateID):
		utils.BadRequest(c, "Blog post with this ID already exists")
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, "Blog post not found")
	default:
		log.Printf("Blog post operation failed: %v", err)
		utils.InternalError(c, "Internal server error")
	}
}

// ListBlogPostsHandler answers GET /api/blog with a filtered, sorted,
// paginated listing.
func ListBlogPostsHandler(c *gin.Context, service *usecase.BlogPostService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	opts := dto.BlogPostListOptions{
		Search: c.Query("search"),
		Tag:    c.Query("tag"),
		Author: c.Query("author"),
		Sort:   c.Query("sort"),
		Page:   page,
		Limit:  limit,
	}

	posts, pagination, err := service.List(c.Request.Context(), opts)
	if err != nil {
		blogPostError(c, err)
		return
	}

	utils.SuccessPage(c, posts, pagination)
}

func GetBlogPostHandler(c *gin.Context, service *usecase.BlogPostService) {
	post, err := service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		blogPostError(c, err)
		return
	}
	utils.Success(c, post)
}

func CreateBlogPostHandler(c *gin.Context, service *usecase.BlogPostService) {
	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	post, err := service.Create(c.Request.Context(), &req)
	if err != nil {
		blogPostError(c, err)
		return
	}

	utils.Created(c, "Blog post created successfully", post)
}

func UpdateBlogPostHandler(c *gin.Context, service *usecase.BlogPostService) {
	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	post, err := service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		blogPostError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Blog post updated successfully", post)
}

func DeleteBlogPostHandler(c *gin.Context, service *usecase.BlogPostService) {
	post, err := service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		blogPostError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "Blog post deleted successfully", post)
}

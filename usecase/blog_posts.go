package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"
)

// excerptLength is how much of the content becomes the excerpt when the
// caller does not supply one.
const excerptLength = 200

type BlogPostService struct {
	BlogPostsRepo *repository.BlogPostsRepo
}

// DeriveExcerpt truncates content to the excerpt window, appending an
// ellipsis only when something was actually cut off. Counts characters, not
// bytes.
func DeriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

// buildBlogPostFilter translates the list query parameters into a Mongo
// filter. Search matches title, content or author; tag is exact membership.
func buildBlogPostFilter(opts dto.BlogPostListOptions) bson.M {
	filter := bson.M{}

	if opts.Search != "" {
		match := substringMatch(opts.Search)
		filter["$or"] = []bson.M{
			{"title": match},
			{"content": match},
			{"author": match},
		}
	}

	if opts.Tag != "" {
		filter["tags"] = bson.M{"$in": []string{opts.Tag}}
	}

	if opts.Author != "" {
		filter["author"] = substringMatch(opts.Author)
	}

	return filter
}

func blogPostValidationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "ID":
		return "ID is required"
	case "Title":
		if fieldErr.Tag() == "max" {
			return "Title cannot be more than 200 characters"
		}
		return "Title is required"
	case "Content":
		return "Content is required"
	case "Excerpt":
		if fieldErr.Tag() == "max" {
			return "Excerpt cannot be more than 300 characters"
		}
		return "Excerpt is required"
	case "Author":
		if fieldErr.Tag() == "max" {
			return "Author name cannot be more than 100 characters"
		}
		return "Author is required"
	}
	return "Invalid blog post"
}

func validateBlogPost(post *model.BlogPost) error {
	if err := utils.Validate.Struct(post); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &ValidationError{Message: blogPostValidationMessage(fieldErrs[0])}
		}
		return err
	}
	return nil
}

func trimTags(tags []string) []string {
	trimmed := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed = append(trimmed, strings.TrimSpace(tag))
	}
	return trimmed
}

// List returns the page of posts matching the query plus pagination metadata
// computed from the unpaged match count.
func (s *BlogPostService) List(ctx context.Context, opts dto.BlogPostListOptions) ([]*model.BlogPost, dto.Pagination, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}

	filter := buildBlogPostFilter(opts)
	sort := parseSort(opts.Sort)
	skip := int64(opts.Page-1) * int64(opts.Limit)

	posts, err := s.BlogPostsRepo.Find(ctx, filter, sort, skip, int64(opts.Limit))
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	total, err := s.BlogPostsRepo.Count(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	pagination := dto.Pagination{
		Current:      opts.Page,
		Total:        int(math.Ceil(float64(total) / float64(opts.Limit))),
		Results:      len(posts),
		TotalResults: total,
	}
	return posts, pagination, nil
}

func (s *BlogPostService) Get(ctx context.Context, id string) (*model.BlogPost, error) {
	return s.BlogPostsRepo.FindByID(ctx, id)
}

// Create validates and stores a new post, deriving the excerpt from content
// when none is supplied.
func (s *BlogPostService) Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*model.BlogPost, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	author := strings.TrimSpace(req.Author)

	if title == "" || content == "" || author == "" {
		return nil, &ValidationError{Message: "Title, content, and author are required"}
	}

	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = DeriveExcerpt(content)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	post := &model.BlogPost{
		ID:        req.ID,
		Title:     title,
		Content:   content,
		Excerpt:   excerpt,
		Author:    author,
		Tags:      trimTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateBlogPost(post); err != nil {
		return nil, err
	}

	if err := s.BlogPostsRepo.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial update. Only non-empty fields are written, content
// changes recompute the excerpt, and updatedAt is always refreshed.
func (s *BlogPostService) Update(ctx context.Context, id string, req *dto.UpdateBlogPostRequest) (*model.BlogPost, error) {
	set := bson.M{"updatedAt": time.Now()}

	if title := strings.TrimSpace(req.Title); title != "" {
		if len([]rune(title)) > 200 {
			return nil, &ValidationError{Message: "Title cannot be more than 200 characters"}
		}
		set["title"] = title
	}

	if content := strings.TrimSpace(req.Content); content != "" {
		set["content"] = content
		set["excerpt"] = DeriveExcerpt(content)
	}

	if req.Tags != nil {
		set["tags"] = trimTags(req.Tags)
	}

	return s.BlogPostsRepo.Update(ctx, id, set)
}

func (s *BlogPostService) Delete(ctx context.Context, id string) (*model.BlogPost, error) {
	return s.BlogPostsRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/cache"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
)

// BlogService handles business logic for blog operations. The cache is
// optional; when nil every call goes straight to the repository.
type BlogService struct {
	repo  *repository.BlogRepository
	cache *cache.Redis
}

// NewBlogService creates a new blog service
func NewBlogService(repo *repository.BlogRepository, cache *cache.Redis) *BlogService {
	return &BlogService{
		repo:  repo,
		cache: cache,
	}
}

// BlogResult contains the result of a blog list operation
type BlogResult struct {
	Blogs []models.Blog `json:"blogs"`
	Total int           `json:"total"`
}

// List returns a filtered, paginated blog listing
func (s *BlogService) List(ctx context.Context, opts repository.BlogListOptions) (*BlogResult, error) {
	cacheKey := cache.GenerateCacheKey("blogs:list", opts.Limit, opts.Offset, opts.Category, opts.PublishedOnly)

	// Try to get from cache
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var result BlogResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	listResult, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &BlogResult{
		Blogs: listResult.Blogs,
		Total: listResult.Total,
	}
	if result.Blogs == nil {
		result.Blogs = []models.Blog{}
	}

	// Cache the result
	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, cacheKey, string(data), 60*time.Second)
		}
	}

	return result, nil
}

// GetBySlug returns a single blog by slug
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	cacheKey := cache.GenerateCacheKey("blogs:slug", slug)

	// Try to get from cache
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var blog models.Blog
			if err := json.Unmarshal([]byte(cached), &blog); err == nil {
				return &blog, nil
			}
		}
	}

	blog, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Cache the result (longer TTL for individual posts)
	if s.cache != nil {
		if data, err := json.Marshal(blog); err == nil {
			_ = s.cache.Set(ctx, cacheKey, string(data), 5*time.Minute)
		}
	}

	return blog, nil
}

// GetByID returns a single blog by ID, bypassing the cache
func (s *BlogService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new blog and invalidates cached listings
func (s *BlogService) Create(ctx context.Context, blog *models.Blog) error {
	if err := s.repo.Create(ctx, blog); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update applies a partial update and invalidates cached entries
func (s *BlogService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a blog and invalidates cached entries
func (s *BlogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *BlogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeleteByPrefix(ctx, "blogs:")
}

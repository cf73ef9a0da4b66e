package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/bloglist/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	// Likes is optional and defaults to zero.
	Likes *int `json:"likes"`
}

type UpdateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// CreateBlog stores a new blog post owned by the given user and returns the
// created record.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest, ownerID int) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateURL(v, req.URL)
	validateID(v, ownerID)
	if req.Likes != nil {
		validateLikes(v, *req.Likes)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog := Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
	}
	blog.User.ID = ownerID

	err := s.m.insert(ctx, &blog)
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// GetBlogByID returns a blog post by its ID with the owner populated.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogByID(ctx, id)
}

// UpdateBlog is a full-field replace of the record at id. The owner is kept
// as-is. Returns the updated record.
func (s *BlogService) UpdateBlog(ctx context.Context, id int, req *UpdateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateID(v, id)
	validateLikes(v, req.Likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		ID:     id,
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}

	err := s.m.updateBlog(ctx, &blog)
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// DeleteBlog removes a blog post. Deleting an id with no record behind it is
// still a success.
func (s *BlogService) DeleteBlog(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteBlog(ctx, id)
}

// GetBlogs returns all blog posts with owners populated.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}

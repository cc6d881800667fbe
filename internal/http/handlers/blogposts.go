package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/domain/blog"
	"github.com/codecpt/portfolio-api/internal/store"
)

type BlogRepo interface {
	GetBlogPosts(ctx context.Context) ([]blog.Post, error)
	GetBlogPost(ctx context.Context, slug string) (blog.Post, error)
	CreateBlogPost(ctx context.Context, req blog.CreatePostRequest) (blog.Post, error)
	UpdateBlogPost(ctx context.Context, id int, req blog.UpdatePostRequest) (blog.Post, error)
	DeleteBlogPost(ctx context.Context, id int) error
}

type BlogPostsHandler struct {
	repo BlogRepo
	log  *slog.Logger
}

func NewBlogPostsHandler(repo BlogRepo, log *slog.Logger) *BlogPostsHandler {
	return &BlogPostsHandler{repo: repo, log: log}
}

func (h *BlogPostsHandler) ListBlogPosts(ctx *gin.Context) {
	posts, err := h.repo.GetBlogPosts(ctx.Request.Context())

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list blog posts failed", "error", err)
		RespondInternal(ctx, "Could not fetch blog posts")

		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetBlogPostBySlug looks posts up by slug, not id: the public site links
// posts by their slug.
func (h *BlogPostsHandler) GetBlogPostBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	post, err := h.repo.GetBlogPost(ctx.Request.Context(), slug)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondNotFound(ctx, "Blog post not found")
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "get blog post failed", "slug", slug, "error", err)
		RespondInternal(ctx, "Could not fetch blog post")
		return
	}

	ctx.JSON(http.StatusOK, post)
}

func (h *BlogPostsHandler) CreateBlogPost(ctx *gin.Context) {
	var req blog.CreatePostRequest

	if !BindJSON(ctx, &req) {
		return
	}

	post, err := h.repo.CreateBlogPost(ctx.Request.Context(), req)

	if err != nil {
		if errors.Is(err, store.ErrSlugTaken) {
			RespondMessage(ctx, http.StatusConflict, "Slug already exists")
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "create blog post failed", "error", err)
		RespondInternal(ctx, "Could not create blog post")
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

func (h *BlogPostsHandler) UpdateBlogPost(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	var req blog.UpdatePostRequest

	if !BindJSON(ctx, &req) {
		return
	}

	post, err := h.repo.UpdateBlogPost(ctx.Request.Context(), id, req)

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			RespondNotFound(ctx, "Blog post not found")
		case errors.Is(err, store.ErrSlugTaken):
			RespondMessage(ctx, http.StatusConflict, "Slug already exists")
		default:
			h.log.ErrorContext(ctx.Request.Context(), "update blog post failed", "id", id, "error", err)
			RespondInternal(ctx, "Could not update blog post")
		}

		return
	}

	ctx.JSON(http.StatusOK, post)
}

func (h *BlogPostsHandler) DeleteBlogPost(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	err := h.repo.DeleteBlogPost(ctx.Request.Context(), id)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "delete blog post failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not delete blog post")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

// numericParam parses the :id path segment; a non-numeric value is a 400,
// written here. Zero and negative ids are numeric and flow through to the
// store, which reports them absent.
func numericParam(ctx *gin.Context, name string) (int, bool) {
	raw := ctx.Param(name)

	id, err := strconv.Atoi(raw)

	if err != nil {
		RespondBadRequest(ctx, "Invalid id")
		return 0, false
	}

	return id, true
}

package store

import (
	"context"
	"errors"

	"github.com/codecpt/portfolio-api/internal/domain/blog"
	"github.com/codecpt/portfolio-api/internal/domain/contact"
	"github.com/codecpt/portfolio-api/internal/domain/project"
	"github.com/codecpt/portfolio-api/internal/domain/techstack"
	"github.com/codecpt/portfolio-api/internal/domain/user"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrSlugTaken     = errors.New("slug already taken")
)

// Store is the single persistence boundary of the service. Two
// implementations exist: memory.Store (ephemeral) and postgres.Store
// (persistent). Callers must not be able to tell them apart.
type Store interface {
	// Users
	GetUser(ctx context.Context, id int) (user.User, error)
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.User, error)
	UpdateUserPassword(ctx context.Context, username, passwordHash string) error

	// Contact messages
	CreateContactMessage(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error)
	GetContactMessages(ctx context.Context) ([]contact.Message, error)
	DeleteContactMessage(ctx context.Context, id int) error

	// Blog posts
	GetBlogPosts(ctx context.Context) ([]blog.Post, error)
	GetBlogPost(ctx context.Context, slug string) (blog.Post, error)
	CreateBlogPost(ctx context.Context, req blog.CreatePostRequest) (blog.Post, error)
	UpdateBlogPost(ctx context.Context, id int, req blog.UpdatePostRequest) (blog.Post, error)
	DeleteBlogPost(ctx context.Context, id int) error

	// Projects
	GetProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id int) (project.Project, error)
	CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error)
	UpdateProject(ctx context.Context, id int, req project.UpdateProjectRequest) (project.Project, error)
	DeleteProject(ctx context.Context, id int) error

	// Tech stacks
	GetTechStacks(ctx context.Context) ([]techstack.TechStack, error)
	GetTechStack(ctx context.Context, id int) (techstack.TechStack, error)
	CreateTechStack(ctx context.Context, req techstack.CreateTechStackRequest) (techstack.TechStack, error)
	UpdateTechStack(ctx context.Context, id int, req techstack.UpdateTechStackRequest) (techstack.TechStack, error)
	DeleteTechStack(ctx context.Context, id int) error
}

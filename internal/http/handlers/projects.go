package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/domain/project"
	"github.com/codecpt/portfolio-api/internal/store"
)

type ProjectsRepo interface {
	GetProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id int) (project.Project, error)
	CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error)
	UpdateProject(ctx context.Context, id int, req project.UpdateProjectRequest) (project.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

type ProjectsHandler struct {
	repo ProjectsRepo
	log  *slog.Logger
}

func NewProjectsHandler(repo ProjectsRepo, log *slog.Logger) *ProjectsHandler {
	return &ProjectsHandler{repo: repo, log: log}
}

func (h *ProjectsHandler) ListProjects(ctx *gin.Context) {
	projects, err := h.repo.GetProjects(ctx.Request.Context())

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list projects failed", "error", err)
		RespondInternal(ctx, "Could not fetch projects")

		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *ProjectsHandler) GetProjectById(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	p, err := h.repo.GetProject(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondNotFound(ctx, "Project not found")
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "get project failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not fetch project")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *ProjectsHandler) CreateProject(ctx *gin.Context) {
	var req project.CreateProjectRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.repo.CreateProject(ctx.Request.Context(), req)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "create project failed", "error", err)
		RespondInternal(ctx, "Could not create project")
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

func (h *ProjectsHandler) UpdateProject(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	var req project.UpdateProjectRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.repo.UpdateProject(ctx.Request.Context(), id, req)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondNotFound(ctx, "Project not found")
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "update project failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not update project")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *ProjectsHandler) DeleteProject(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	err := h.repo.DeleteProject(ctx.Request.Context(), id)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "delete project failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not delete project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

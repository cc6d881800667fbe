package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/domain/techstack"
	"github.com/codecpt/portfolio-api/internal/store"
)

type TechStacksRepo interface {
	GetTechStacks(ctx context.Context) ([]techstack.TechStack, error)
	GetTechStack(ctx context.Context, id int) (techstack.TechStack, error)
	CreateTechStack(ctx context.Context, req techstack.CreateTechStackRequest) (techstack.TechStack, error)
	UpdateTechStack(ctx context.Context, id int, req techstack.UpdateTechStackRequest) (techstack.TechStack, error)
	DeleteTechStack(ctx context.Context, id int) error
}

type TechStacksHandler struct {
	repo TechStacksRepo
	log  *slog.Logger
}

func NewTechStacksHandler(repo TechStacksRepo, log *slog.Logger) *TechStacksHandler {
	return &TechStacksHandler{repo: repo, log: log}
}

func (h *TechStacksHandler) ListTechStacks(ctx *gin.Context) {
	stacks, err := h.repo.GetTechStacks(ctx.Request.Context())

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list tech stacks failed", "error", err)
		RespondInternal(ctx, "Could not fetch tech stacks")

		return
	}

	ctx.JSON(http.StatusOK, stacks)
}

func (h *TechStacksHandler) GetTechStackById(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	ts, err := h.repo.GetTechStack(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondNotFound(ctx, "Tech stack not found")
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "get tech stack failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not fetch tech stack")
		return
	}

	ctx.JSON(http.StatusOK, ts)
}

func (h *TechStacksHandler) CreateTechStack(ctx *gin.Context) {
	var req techstack.CreateTechStackRequest

	if !BindJSON(ctx, &req) {
		return
	}

	ts, err := h.repo.CreateTechStack(ctx.Request.Context(), req)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "create tech stack failed", "error", err)
		RespondInternal(ctx, "Could not create tech stack")
		return
	}

	ctx.JSON(http.StatusCreated, ts)
}

func (h *TechStacksHandler) UpdateTechStack(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	var req techstack.UpdateTechStackRequest

	if !BindJSON(ctx, &req) {
		return
	}

	ts, err := h.repo.UpdateTechStack(ctx.Request.Context(), id, req)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondNotFound(ctx, "Tech stack not found")
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "update tech stack failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not update tech stack")
		return
	}

	ctx.JSON(http.StatusOK, ts)
}

func (h *TechStacksHandler) DeleteTechStack(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	err := h.repo.DeleteTechStack(ctx.Request.Context(), id)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "delete tech stack failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not delete tech stack")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Tech stack deleted successfully"})
}

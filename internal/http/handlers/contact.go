package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/domain/contact"
)

type ContactRepo interface {
	CreateContactMessage(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error)
	GetContactMessages(ctx context.Context) ([]contact.Message, error)
	DeleteContactMessage(ctx context.Context, id int) error
}

type ContactHandler struct {
	repo ContactRepo
	log  *slog.Logger
}

func NewContactHandler(repo ContactRepo, log *slog.Logger) *ContactHandler {
	return &ContactHandler{repo: repo, log: log}
}

// SubmitMessage is the public contact-form endpoint.
func (h *ContactHandler) SubmitMessage(ctx *gin.Context) {
	var req contact.CreateMessageRequest

	if !BindJSON(ctx, &req) {
		return
	}

	msg, err := h.repo.CreateContactMessage(ctx.Request.Context(), req)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "create contact message failed", "error", err)
		RespondInternal(ctx, "Could not send message")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data":    msg,
	})
}

// ListMessages is admin-only; the public side only writes.
func (h *ContactHandler) ListMessages(ctx *gin.Context) {
	msgs, err := h.repo.GetContactMessages(ctx.Request.Context())

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list contact messages failed", "error", err)
		RespondInternal(ctx, "Could not fetch messages")

		return
	}

	ctx.JSON(http.StatusOK, msgs)
}

func (h *ContactHandler) DeleteMessage(ctx *gin.Context) {
	id, ok := numericParam(ctx, "id")

	if !ok {
		return
	}

	err := h.repo.DeleteContactMessage(ctx.Request.Context(), id)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "delete contact message failed", "id", id, "error", err)
		RespondInternal(ctx, "Could not delete message")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

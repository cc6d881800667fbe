package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/domain/contact"
	"github.com/codecpt/portfolio-api/internal/http/handlers"
)

type validationResponse struct {
	Message string                `json:"message"`
	Errors  []handlers.FieldError `json:"errors"`
}

func TestBindJSON_ValidationErrorsUseJSONFieldNames(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/contact", func(ctx *gin.Context) {
		var req contact.CreateMessageRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"name":"Jo","email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if resp.Message != "Invalid input" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}

	wantRules := map[string]string{
		"email":   "email",
		"subject": "required",
		"message": "required",
	}

	found := map[string]handlers.FieldError{}
	for _, fieldErr := range resp.Errors {
		found[fieldErr.Field] = fieldErr
	}

	for field, rule := range wantRules {
		fieldErr, ok := found[field]
		if !ok {
			t.Fatalf("missing field error for %q: %+v", field, resp.Errors)
		}
		if fieldErr.Rule != rule {
			t.Fatalf("field %q rule mismatch: got %q want %q", field, fieldErr.Rule, rule)
		}
		if fieldErr.Message == "" {
			t.Fatalf("field %q should include a non-empty message", field)
		}
	}
}

func TestBindJSON_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/contact", func(ctx *gin.Context) {
		var req contact.CreateMessageRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(resp.Errors) != 1 || resp.Errors[0].Rule != "json" {
		t.Fatalf("unexpected errors: %+v", resp.Errors)
	}
}

func TestBindJSON_TypeMismatchNamesTheField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Progress int `json:"progress"`
	}

	r := gin.New()
	r.POST("/x", func(ctx *gin.Context) {
		var req payload
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"progress":"ninety"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(resp.Errors) != 1 || resp.Errors[0].Field != "progress" || resp.Errors[0].Rule != "type" {
		t.Fatalf("unexpected errors: %+v", resp.Errors)
	}
}

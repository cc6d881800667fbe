package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/domain/contact"
	"github.com/codecpt/portfolio-api/internal/http/handlers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type fakeContactRepo struct {
	createFn func(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error)
	listFn   func(ctx context.Context) ([]contact.Message, error)
	deleteFn func(ctx context.Context, id int) error
}

func (f *fakeContactRepo) CreateContactMessage(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}

	return contact.Message{}, nil
}

func (f *fakeContactRepo) GetContactMessages(ctx context.Context) ([]contact.Message, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}

	return nil, nil
}

func (f *fakeContactRepo) DeleteContactMessage(ctx context.Context, id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}

	return nil
}

func setupRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Handle(method, path, h)

	return r
}

func TestSubmitMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFn   func(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error)
		wantStatus int
		wantField  string
	}{
		{
			name: "valid message is accepted",
			body: `{"name":"Jo","email":"jo@example.com","subject":"Hi","message":"Hello there"}`,
			createFn: func(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error) {
				return contact.Message{ID: 1, Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email is rejected",
			body:       `{"name":"Jo","subject":"Hi","message":"Hello there"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "email",
		},
		{
			name:       "malformed email is rejected",
			body:       `{"name":"Jo","email":"nope","subject":"Hi","message":"Hello there"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "email",
		},
		{
			name: "store failure is a 500",
			body: `{"name":"Jo","email":"jo@example.com","subject":"Hi","message":"Hello there"}`,
			createFn: func(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error) {
				return contact.Message{}, errors.New("boom")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := handlers.NewContactHandler(&fakeContactRepo{createFn: tc.createFn}, discardLogger())
			r := setupRouter(http.MethodPost, "/api/contact", h.SubmitMessage)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tc.wantStatus, w.Body.String())
			}

			if tc.wantStatus == http.StatusCreated {
				var resp struct {
					Message string          `json:"message"`
					Data    contact.Message `json:"data"`
				}

				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}

				if resp.Message != "Message sent successfully" {
					t.Fatalf("unexpected message: %q", resp.Message)
				}

				if resp.Data.ID != 1 {
					t.Fatalf("unexpected data: %+v", resp.Data)
				}
			}

			if tc.wantField != "" {
				var resp validationResponse

				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}

				found := false

				for _, fe := range resp.Errors {
					if fe.Field == tc.wantField {
						found = true
					}
				}

				if !found {
					t.Fatalf("no error naming %q: %+v", tc.wantField, resp.Errors)
				}
			}
		})
	}
}

func TestDeleteMessage(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		deleteFn   func(ctx context.Context, id int) error
		wantStatus int
	}{
		{
			name:       "existing id",
			id:         "3",
			wantStatus: http.StatusOK,
		},
		{
			name:       "absent id is still a 200",
			id:         "9999",
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative id deletes nothing, still a 200",
			id:         "-1",
			wantStatus: http.StatusOK,
		},
		{
			name: "store failure",
			id:   "3",
			deleteFn: func(ctx context.Context, id int) error {
				return errors.New("boom")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := handlers.NewContactHandler(&fakeContactRepo{deleteFn: tc.deleteFn}, discardLogger())
			r := setupRouter(http.MethodDelete, "/api/contact-messages/:id", h.DeleteMessage)

			req := httptest.NewRequest(http.MethodDelete, "/api/contact-messages/"+tc.id, nil)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestListMessages(t *testing.T) {
	h := handlers.NewContactHandler(&fakeContactRepo{
		listFn: func(ctx context.Context) ([]contact.Message, error) {
			return []contact.Message{{ID: 2}, {ID: 1}}, nil
		},
	}, discardLogger())

	r := setupRouter(http.MethodGet, "/api/contact-messages", h.ListMessages)

	req := httptest.NewRequest(http.MethodGet, "/api/contact-messages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var got []contact.Message

	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("unexpected list: %+v", got)
	}
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/codecpt/portfolio-api/internal/domain/contact"
)

func (s *Store) CreateContactMessage(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error) {
	s.messagesMu.Lock()
	defer s.messagesMu.Unlock()

	m := contact.Message{
		ID:        s.nextMessageID,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
		Read:      false,
	}

	s.nextMessageID++
	s.messages[m.ID] = m

	return m, nil
}

// newest first
func (s *Store) GetContactMessages(ctx context.Context) ([]contact.Message, error) {
	s.messagesMu.RLock()
	defer s.messagesMu.RUnlock()

	out := make([]contact.Message, 0, len(s.messages))

	for _, m := range s.messages {
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (s *Store) DeleteContactMessage(ctx context.Context, id int) error {
	s.messagesMu.Lock()
	defer s.messagesMu.Unlock()

	// deleting a missing id is a silent no-op
	delete(s.messages, id)

	return nil
}

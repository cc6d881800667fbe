package memory

import (
	"context"
	"sort"
	"time"

	"github.com/codecpt/portfolio-api/internal/domain/techstack"
	"github.com/codecpt/portfolio-api/internal/store"
)

// ascending by category, then name; the name is the stable tie-break
func (s *Store) GetTechStacks(ctx context.Context) ([]techstack.TechStack, error) {
	s.stacksMu.RLock()
	defer s.stacksMu.RUnlock()

	out := make([]techstack.TechStack, 0, len(s.stacks))

	for _, t := range s.stacks {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (s *Store) GetTechStack(ctx context.Context, id int) (techstack.TechStack, error) {
	s.stacksMu.RLock()
	defer s.stacksMu.RUnlock()

	t, ok := s.stacks[id]

	if !ok {
		return techstack.TechStack{}, store.ErrNotFound
	}

	return t, nil
}

func (s *Store) CreateTechStack(ctx context.Context, req techstack.CreateTechStackRequest) (techstack.TechStack, error) {
	s.stacksMu.Lock()
	defer s.stacksMu.Unlock()

	t := techstack.TechStack{
		ID:        s.nextStackID,
		Name:      req.Name,
		Icon:      req.Icon,
		Progress:  *req.Progress,
		Category:  req.Category,
		Color:     req.Color,
		CreatedAt: time.Now(),
	}

	s.nextStackID++
	s.stacks[t.ID] = t

	return t, nil
}

func (s *Store) UpdateTechStack(ctx context.Context, id int, req techstack.UpdateTechStackRequest) (techstack.TechStack, error) {
	s.stacksMu.Lock()
	defer s.stacksMu.Unlock()

	t, ok := s.stacks[id]

	if !ok {
		return techstack.TechStack{}, store.ErrNotFound
	}

	if req.Name != nil {
		t.Name = *req.Name
	}

	if req.Icon != nil {
		t.Icon = *req.Icon
	}

	if req.Progress != nil {
		t.Progress = *req.Progress
	}

	if req.Category != nil {
		t.Category = *req.Category
	}

	if req.Color != nil {
		t.Color = *req.Color
	}

	s.stacks[id] = t

	return t, nil
}

func (s *Store) DeleteTechStack(ctx context.Context, id int) error {
	s.stacksMu.Lock()
	defer s.stacksMu.Unlock()

	delete(s.stacks, id)

	return nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/codecpt/portfolio-api/internal/domain/project"
	"github.com/codecpt/portfolio-api/internal/store"
)

// newest first
func (s *Store) GetProjects(ctx context.Context) ([]project.Project, error) {
	s.projectsMu.RLock()
	defer s.projectsMu.RUnlock()

	out := make([]project.Project, 0, len(s.projects))

	for _, p := range s.projects {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (s *Store) GetProject(ctx context.Context, id int) (project.Project, error) {
	s.projectsMu.RLock()
	defer s.projectsMu.RUnlock()

	p, ok := s.projects[id]

	if !ok {
		return project.Project{}, store.ErrNotFound
	}

	return p, nil
}

func (s *Store) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	s.projectsMu.Lock()
	defer s.projectsMu.Unlock()

	p := project.Project{
		ID:           s.nextProjectID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Technologies: req.Technologies,
		Features:     req.Features,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
		CreatedAt:    time.Now(),
	}

	s.nextProjectID++
	s.projects[p.ID] = p

	return p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id int, req project.UpdateProjectRequest) (project.Project, error) {
	s.projectsMu.Lock()
	defer s.projectsMu.Unlock()

	p, ok := s.projects[id]

	if !ok {
		return project.Project{}, store.ErrNotFound
	}

	if req.Title != nil {
		p.Title = *req.Title
	}

	if req.Description != nil {
		p.Description = *req.Description
	}

	if req.Category != nil {
		p.Category = *req.Category
	}

	if req.Technologies != nil {
		p.Technologies = *req.Technologies
	}

	if req.Features != nil {
		p.Features = *req.Features
	}

	if req.LiveURL != nil {
		p.LiveURL = req.LiveURL
	}

	if req.GithubURL != nil {
		p.GithubURL = req.GithubURL
	}

	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}

	if req.Featured != nil {
		p.Featured = *req.Featured
	}

	s.projects[id] = p

	return p, nil
}

func (s *Store) DeleteProject(ctx context.Context, id int) error {
	s.projectsMu.Lock()
	defer s.projectsMu.Unlock()

	delete(s.projects, id)

	return nil
}

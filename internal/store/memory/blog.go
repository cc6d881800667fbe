package memory

import (
	"context"
	"sort"
	"time"

	"github.com/codecpt/portfolio-api/internal/domain/blog"
	"github.com/codecpt/portfolio-api/internal/store"
)

// newest first by publish date
func (s *Store) GetBlogPosts(ctx context.Context) ([]blog.Post, error) {
	s.postsMu.RLock()
	defer s.postsMu.RUnlock()

	out := make([]blog.Post, 0, len(s.posts))

	for _, p := range s.posts {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	return out, nil
}

func (s *Store) GetBlogPost(ctx context.Context, slug string) (blog.Post, error) {
	s.postsMu.RLock()
	defer s.postsMu.RUnlock()

	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}

	return blog.Post{}, store.ErrNotFound
}

func (s *Store) CreateBlogPost(ctx context.Context, req blog.CreatePostRequest) (blog.Post, error) {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	for _, existing := range s.posts {
		if existing.Slug == req.Slug {
			return blog.Post{}, store.ErrSlugTaken
		}
	}

	p := blog.Post{
		ID:          s.nextPostID,
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		PublishedAt: time.Now(),
		Featured:    req.Featured,
	}

	s.nextPostID++
	s.posts[p.ID] = p

	return p, nil
}

func (s *Store) UpdateBlogPost(ctx context.Context, id int, req blog.UpdatePostRequest) (blog.Post, error) {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	p, ok := s.posts[id]

	if !ok {
		return blog.Post{}, store.ErrNotFound
	}

	if req.Slug != nil && *req.Slug != p.Slug {
		for _, existing := range s.posts {
			if existing.Slug == *req.Slug {
				return blog.Post{}, store.ErrSlugTaken
			}
		}
		p.Slug = *req.Slug
	}

	if req.Title != nil {
		p.Title = *req.Title
	}

	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}

	if req.Content != nil {
		p.Content = *req.Content
	}

	if req.Category != nil {
		p.Category = *req.Category
	}

	if req.Featured != nil {
		p.Featured = *req.Featured
	}

	s.posts[id] = p

	return p, nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id int) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	delete(s.posts, id)

	return nil
}

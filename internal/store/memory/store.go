// Package memory holds every entity kind in an identity-keyed map. Ids are
// per-kind monotonic counters: they only ever grow, so an id is never
// reused even after deletes. Each kind gets its own lock so that id
// allocation and insert stay atomic under concurrent creates.
package memory

import (
	"sync"

	"github.com/codecpt/portfolio-api/internal/domain/blog"
	"github.com/codecpt/portfolio-api/internal/domain/contact"
	"github.com/codecpt/portfolio-api/internal/domain/project"
	"github.com/codecpt/portfolio-api/internal/domain/techstack"
	"github.com/codecpt/portfolio-api/internal/domain/user"
)

type Store struct {
	usersMu    sync.RWMutex
	users      map[int]user.User
	nextUserID int

	messagesMu    sync.RWMutex
	messages      map[int]contact.Message
	nextMessageID int

	postsMu    sync.RWMutex
	posts      map[int]blog.Post
	nextPostID int

	projectsMu    sync.RWMutex
	projects      map[int]project.Project
	nextProjectID int

	stacksMu    sync.RWMutex
	stacks      map[int]techstack.TechStack
	nextStackID int
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int]user.User),
		nextUserID:    1,
		messages:      make(map[int]contact.Message),
		nextMessageID: 1,
		posts:         make(map[int]blog.Post),
		nextPostID:    1,
		projects:      make(map[int]project.Project),
		nextProjectID: 1,
		stacks:        make(map[int]techstack.TechStack),
		nextStackID:   1,
	}
}

package user

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never expose hash in JSON
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CreateUserRequest is only reachable through provisioning flows (startup
// seeding and the createadmin CLI); there is no public signup route.
type CreateUserRequest struct {
	Username     string
	PasswordHash string
	Role         string
}

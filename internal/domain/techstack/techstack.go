package techstack

import "time"

type TechStack struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Progress  int       `json:"progress"`
	Category  string    `json:"category"` // frontend, backend, database, mobile, tools
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Progress is a pointer so that an explicit 0 survives the required check;
// a plain int would make 0 indistinguishable from an absent field.
type CreateTechStackRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=80"`
	Icon     string `json:"icon" binding:"required"`
	Progress *int   `json:"progress" binding:"required,min=0,max=100"`
	Category string `json:"category" binding:"required,max=80"`
	Color    string `json:"color" binding:"required,max=80"`
}

type UpdateTechStackRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=80"`
	Icon     *string `json:"icon"`
	Progress *int    `json:"progress" binding:"omitempty,min=0,max=100"`
	Category *string `json:"category" binding:"omitempty,max=80"`
	Color    *string `json:"color" binding:"omitempty,max=80"`
}

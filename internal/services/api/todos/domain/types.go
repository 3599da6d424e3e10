// Package domain holds todo types and the todos service contract
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MaxTextLen bounds todo text in runes
const MaxTextLen = 500

// Todo is a user's todo item
type Todo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Text      string    `json:"text" example:"buy milk"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Mutation is one recorded edit; nil fields were not touched
type Mutation struct {
	ID     uuid.UUID `json:"id"`
	TodoID uuid.UUID `json:"todo_id"`
	At     time.Time `json:"at"`
	Text   *string   `json:"text,omitempty"`
	Done   *bool     `json:"done,omitempty"`
}

// CreateInput is the body of POST /todos
type CreateInput struct {
	Text string `json:"text" validate:"required,notblank,max=500" example:"buy milk"`
}

// UpdateInput is the body of PATCH /todos/{id}; absent fields are left alone
type UpdateInput struct {
	Text *string `json:"text,omitempty" validate:"omitempty,notblank,max=500" example:"buy bread"`
	Done *bool   `json:"done,omitempty" example:"true"`
}

// ServicePort is the todos workflow surface
type ServicePort interface {
	List(ctx context.Context, user uuid.UUID) ([]Todo, error)
	Get(ctx context.Context, user, id uuid.UUID) (Todo, error)
	Create(ctx context.Context, user uuid.UUID, in CreateInput) (Todo, error)
	Update(ctx context.Context, user, id uuid.UUID, in UpdateInput) (Todo, error)
	Toggle(ctx context.Context, user, id uuid.UUID) (Todo, error)
	Delete(ctx context.Context, user, id uuid.UUID) error
}

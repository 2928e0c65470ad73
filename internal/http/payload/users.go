package payload

import (
	"sqlapp/internal/core"

	"github.com/jellydator/validation"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Email, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Password, validation.Required, validation.Length(1, 72)),
	)
}

func (c CreateUserRequest) ToMessage() core.NewUser {
	return core.NewUser{
		Email:    c.Email,
		Password: c.Password,
	}
}

type UserResponse struct {
	ID       uint           `json:"id"`
	Email    string         `json:"email"`
	IsActive bool           `json:"is_active"`
	Items    []ItemResponse `json:"items"`
}

// UserCreateResponse is returned once, on registration; it is the only
// response carrying the api token.
type UserCreateResponse struct {
	ID       uint           `json:"id"`
	Email    string         `json:"email"`
	IsActive bool           `json:"is_active"`
	APIToken string         `json:"api_token"`
	Items    []ItemResponse `json:"items"`
}

func NewUserResponse(user core.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		IsActive: user.IsActive,
		Items:    NewItemResponses(user.Items),
	}
}

func NewUserResponses(users []core.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, NewUserResponse(u))
	}
	return resp
}

func NewUserCreateResponse(user core.User) UserCreateResponse {
	return UserCreateResponse{
		ID:       user.ID,
		Email:    user.Email,
		IsActive: user.IsActive,
		APIToken: user.APIToken,
		Items:    NewItemResponses(user.Items),
	}
}

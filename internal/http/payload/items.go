package payload

import (
	"sqlapp/internal/core"

	"github.com/jellydator/validation"
)

type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 255)),
	)
}

func (c CreateItemRequest) ToMessage() core.NewItem {
	return core.NewItem{
		Title:       c.Title,
		Description: c.Description,
	}
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     *uint  `json:"owner_id"`
}

func NewItemResponse(item core.Item) ItemResponse {
	resp := ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
	}
	if id, ok := item.Owner.UserID(); ok {
		resp.OwnerID = &id
	}
	return resp
}

func NewItemResponses(items []core.Item) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, NewItemResponse(it))
	}
	return resp
}

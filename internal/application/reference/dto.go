package reference

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/reference"
)

// CreateTagRequest represents a request to create a tag
type CreateTagRequest struct {
	Domain    string `json:"domain" binding:"required"`
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Color     string `json:"color" binding:"omitempty,hexcolor"`
	SortOrder int    `json:"sort_order"`
}

// UpdateTagRequest represents a full replace of a tag's editable fields
type UpdateTagRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Color     string `json:"color" binding:"omitempty,hexcolor"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Domain    string    `json:"domain"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// TagListFilter represents filter options for the tag list
type TagListFilter struct {
	Search   string `form:"search"`
	Domain   string `form:"domain"`
	Active   *bool  `form:"active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToTagResponse maps a domain tag to its response representation
func ToTagResponse(tag *reference.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		Domain:    tag.Domain.String(),
		Name:      tag.Name,
		Color:     tag.Color,
		SortOrder: tag.SortOrder,
		Active:    tag.Active,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
		Version:   tag.Version,
	}
}

// ToTagResponses maps a slice of domain tags
func ToTagResponses(tags []*reference.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, ToTagResponse(tag))
	}
	return responses
}

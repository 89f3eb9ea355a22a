package knowledge

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

const (
	maxTitleLength    = 255
	maxTagLabelLength = 255
	maxTagsPerItem    = 50
	maxSearchLength   = 200
)

// CreateItemInput holds the parameters for creating a knowledge item.
type CreateItemInput struct {
	Title       string
	Description string
	Tags        []domain.TagInput
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError
	errs = validateContent(errs, i.Title, i.Description)
	errs = validateTags(errs, i.Tags)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateItemInput holds the parameters for editing a knowledge item.
// A nil Tags leaves the existing tags untouched; a non-nil empty slice clears them.
type UpdateItemInput struct {
	ItemID      uuid.UUID
	Title       string
	Description string
	Tags        *[]domain.TagInput
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	errs = validateContent(errs, i.Title, i.Description)
	if i.Tags != nil {
		errs = validateTags(errs, *i.Tags)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangeStatusInput holds the parameters for a workflow transition.
type ChangeStatusInput struct {
	ItemID uuid.UUID
	Status domain.Status
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be 0, 1 or 2"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddCommentInput holds the parameters for commenting on an item.
type AddCommentInput struct {
	ItemID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListItemsInput holds the listing filters. Zero Page and PerPage select defaults.
type ListItemsInput struct {
	Status  *domain.Status
	Search  string
	Page    int
	PerPage int
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be 0, 1 or 2"})
	}
	if utf8.RuneCountInString(i.Search) > maxSearchLength {
		errs = append(errs, domain.FieldError{Field: "search", Message: fmt.Sprintf("max %d characters", maxSearchLength)})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be non-negative"})
	}
	if i.PerPage < 0 {
		errs = append(errs, domain.FieldError{Field: "per_page", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateContent(errs []domain.FieldError, title, description string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(t) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)})
	}
	if strings.TrimSpace(description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	return errs
}

func validateTags(errs []domain.FieldError, tags []domain.TagInput) []domain.FieldError {
	if len(tags) > maxTagsPerItem {
		return append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", maxTagsPerItem)})
	}
	for idx, tag := range tags {
		label := strings.TrimSpace(tag.Label)
		field := fmt.Sprintf("tags[%d].label", idx)
		switch {
		case label == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		case utf8.RuneCountInString(label) > maxTagLabelLength:
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxTagLabelLength)})
		}
		if tag.Category != nil && utf8.RuneCountInString(strings.TrimSpace(*tag.Category)) > maxTagLabelLength {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("tags[%d].category", idx),
				Message: fmt.Sprintf("max %d characters", maxTagLabelLength),
			})
		}
	}
	return errs
}

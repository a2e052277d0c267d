package httpapi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/server/models"
	"github.com/go-playground/validator/v10"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type messageResponse struct {
	Message string `json:"message,omitempty"`
	Success bool   `json:"success,omitempty"`
}

type entryRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Content     string   `json:"content" validate:"required,max=1000"`
	Category    string   `json:"category" validate:"max=50"`
	Tags        []string `json:"tags" validate:"max=50,dive,max=50"`
	Mood        string   `json:"mood" validate:"max=50"`
	Date        string   `json:"date" validate:"max=100"`
	Time        string   `json:"time" validate:"max=50"`
	Quote       string   `json:"quote" validate:"max=1000"`
	QuoteAuthor string   `json:"quoteAuthor" validate:"max=200"`
}

func (r entryRequest) toModel() *models.Entry {
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = "Thought"
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Entry{
		Title:       r.Title,
		Content:     r.Content,
		Category:    category,
		Tags:        tags,
		Mood:        r.Mood,
		Date:        r.Date,
		Time:        r.Time,
		Quote:       r.Quote,
		QuoteAuthor: r.QuoteAuthor,
	}
}

type entryDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Mood        string    `json:"mood,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Quote       string    `json:"quote,omitempty"`
	QuoteAuthor string    `json:"quoteAuthor,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toEntryDTO(e *models.Entry) entryDTO {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return entryDTO{
		ID:          e.ID,
		Title:       e.Title,
		Content:     e.Content,
		Category:    e.Category,
		Tags:        tags,
		Mood:        e.Mood,
		Date:        e.Date,
		Time:        e.Time,
		Quote:       e.Quote,
		QuoteAuthor: e.QuoteAuthor,
		CreatedAt:   e.CreatedAt,
	}
}

// validationMessage turns the first failed rule into a sentence for the
// {"message": ...} body.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

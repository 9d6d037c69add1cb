package domain

import (
	"strings"
	"time"
)

// PizzaSize is one of the sizes offered on the menu.
type PizzaSize string

// Available pizza sizes.
const (
	SizePersonal   PizzaSize = "Personal"
	SizeSmall      PizzaSize = "Small"
	SizeMedium     PizzaSize = "Medium"
	SizeLarge      PizzaSize = "Large"
	SizeExtraLarge PizzaSize = "Extra Large"
)

// DefaultPizzaSize is applied when a create request omits the size.
const DefaultPizzaSize = SizeLarge

// Pizza is a pizza document as stored and served by the API.
type Pizza struct {
	ID        string    `json:"_id"`
	PizzaName string    `json:"pizzaName"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	Size      PizzaSize `json:"size"`
	Toppings  []string  `json:"toppings"`
	Comments  []Comment `json:"comments"`
}

// PizzaInput is the body of a create or update request.
// It is also the payload queued by the offline write store.
type PizzaInput struct {
	PizzaName string    `json:"pizzaName"`
	CreatedBy string    `json:"createdBy"`
	Size      PizzaSize `json:"size,omitempty"`
	Toppings  []string  `json:"toppings,omitempty"`
}

// NewPizza builds a pizza document from input, applying defaults.
// Names are trimmed.
func NewPizza(id string, in PizzaInput, now time.Time) Pizza {
	size := in.Size
	if size == "" {
		size = DefaultPizzaSize
	}
	toppings := in.Toppings
	if toppings == nil {
		toppings = []string{}
	}
	return Pizza{
		ID:        id,
		PizzaName: strings.TrimSpace(in.PizzaName),
		CreatedBy: strings.TrimSpace(in.CreatedBy),
		CreatedAt: now.UTC(),
		Size:      size,
		Toppings:  toppings,
		Comments:  []Comment{},
	}
}

// Apply overwrites the mutable fields of p with the non-empty fields of in.
func (p *Pizza) Apply(in PizzaInput) {
	if name := strings.TrimSpace(in.PizzaName); name != "" {
		p.PizzaName = name
	}
	if by := strings.TrimSpace(in.CreatedBy); by != "" {
		p.CreatedBy = by
	}
	if in.Size != "" {
		p.Size = in.Size
	}
	if in.Toppings != nil {
		p.Toppings = in.Toppings
	}
}

// Comment is a comment left on a pizza.
type Comment struct {
	ID          string    `json:"_id"`
	WrittenBy   string    `json:"writtenBy"`
	CommentBody string    `json:"commentBody"`
	CreatedAt   time.Time `json:"createdAt"`
	Replies     []Reply   `json:"replies"`
}

// CommentInput is the body of an add-comment request.
type CommentInput struct {
	WrittenBy   string `json:"writtenBy"`
	CommentBody string `json:"commentBody"`
}

// Reply is a reply nested inside a comment.
type Reply struct {
	ID        string    `json:"_id"`
	ReplyBody string    `json:"replyBody"`
	WrittenBy string    `json:"writtenBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReplyInput is the body of an add-reply request.
type ReplyInput struct {
	ReplyBody string `json:"replyBody"`
	WrittenBy string `json:"writtenBy"`
}

// FindComment returns the index of the comment with the given ID, or -1.
func (p *Pizza) FindComment(commentID string) int {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return i
		}
	}
	return -1
}

package menu

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrEmptyPrice      = errors.New("price must not be empty")
	ErrInvalidCategory = errors.New("item must belong to a category")
)

// Category groups menu items on the public menu page.
type Category struct {
	id           uuid.UUID
	name         string
	description  string
	displayOrder int
}

func NewCategory(name, description string, displayOrder int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Category{
		id:           uuid.New(),
		name:         name,
		description:  strings.TrimSpace(description),
		displayOrder: displayOrder,
	}, nil
}

func (c *Category) ID() uuid.UUID       { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }
func (c *Category) DisplayOrder() int   { return c.displayOrder }

// Item is one dish. Price stays a display string: currency formatting is
// editorial content here, not arithmetic.
type Item struct {
	id           uuid.UUID
	categoryID   uuid.UUID
	name         string
	description  string
	price        string
	imageURL     string
	available    bool
	displayOrder int
}

func NewItem(categoryID uuid.UUID, name, description, price, imageURL string, available bool, displayOrder int) (*Item, error) {
	if categoryID == uuid.Nil {
		return nil, ErrInvalidCategory
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	price = strings.TrimSpace(price)
	if price == "" {
		return nil, ErrEmptyPrice
	}
	return &Item{
		id:           uuid.New(),
		categoryID:   categoryID,
		name:         name,
		description:  strings.TrimSpace(description),
		price:        price,
		imageURL:     strings.TrimSpace(imageURL),
		available:    available,
		displayOrder: displayOrder,
	}, nil
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) CategoryID() uuid.UUID { return i.categoryID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) Price() string         { return i.price }
func (i *Item) ImageURL() string      { return i.imageURL }
func (i *Item) Available() bool       { return i.available }
func (i *Item) DisplayOrder() int     { return i.displayOrder }

package tempbox

import (
	"context"
	"errors"
)

type (
	// ID identifies an indexed temporal value
	ID string

	// Entry is the index record of one temporal value: its category, its
	// time extent, and the boxes it was partitioned into
	Entry struct {
		ID       ID
		Category Category
		Period   TimeSpan
		Boxes    []Box
	}

	// Store persists index entries. Scan visits entries in ID order and
	// stops early when fn returns false
	Store interface {
		Put(ctx context.Context, e *Entry) error
		Get(ctx context.Context, id ID) (*Entry, error)
		Delete(ctx context.Context, id ID) error
		Scan(ctx context.Context, fn func(*Entry) bool) error
		Close() error
	}
)

var (
	// ErrEntryNotFound is returned when no entry is stored under an ID
	ErrEntryNotFound = errors.New("index entry not found")

	// ErrInvalidID is returned for an empty ID
	ErrInvalidID = errors.New("index entry ID is empty")
)

// NewEntry partitions a temporal value into at most maxBoxes boxes and
// wraps them in an Entry
func NewEntry(id ID, temp Temporal, maxBoxes int) (*Entry, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	boxes, err := Boxes(temp, maxBoxes)
	if err != nil {
		return nil, err
	}
	return &Entry{
		ID:       id,
		Category: temp.Category(),
		Period:   temp.Period(),
		Boxes:    boxes,
	}, nil
}

// Box returns the union of the entry's boxes
func (e *Entry) Box() Box {
	res := e.Boxes[0]
	for _, b := range e.Boxes[1:] {
		res = unionBox(res, b)
	}
	return res
}

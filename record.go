package tempbox

import (
	"encoding/json"
	"errors"
	"fmt"
)

type (
	entryRecord struct {
		ID       ID          `json:"id"`
		Category Category    `json:"category"`
		Period   TimeSpan    `json:"period"`
		Boxes    []boxRecord `json:"boxes"`
	}

	boxRecord struct {
		Type  BoxType   `json:"type"`
		Span  *TimeSpan `json:"span,omitempty"`
		TBox  *TBox     `json:"tbox,omitempty"`
		STBox *STBox    `json:"stbox,omitempty"`
	}
)

// ErrInvalidRecord is returned when a stored entry cannot be decoded
var ErrInvalidRecord = errors.New("invalid index entry record")

func marshalEntry(e *Entry) ([]byte, error) {
	rec := entryRecord{
		ID:       e.ID,
		Category: e.Category,
		Period:   e.Period,
		Boxes:    make([]boxRecord, len(e.Boxes)),
	}
	for i, b := range e.Boxes {
		r := &rec.Boxes[i]
		switch b := b.(type) {
		case TimeSpan:
			r.Type, r.Span = BoxTimeSpan, &b
		case TBox:
			r.Type, r.TBox = BoxTBox, &b
		case STBox:
			r.Type, r.STBox = BoxSTBox, &b
		default:
			return nil, fmt.Errorf("%w: %T", ErrBoxTypeMismatch, b)
		}
	}
	return json.Marshal(rec)
}

func unmarshalEntry(data []byte) (*Entry, error) {
	var rec entryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if rec.ID == "" || len(rec.Boxes) == 0 {
		return nil, ErrInvalidRecord
	}
	want, err := BoxTypeOf(rec.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	res := &Entry{
		ID:       rec.ID,
		Category: rec.Category,
		Period:   rec.Period,
		Boxes:    make([]Box, len(rec.Boxes)),
	}
	for i, r := range rec.Boxes {
		b, err := r.box()
		if err != nil {
			return nil, err
		}
		if b.BoxType() != want {
			return nil, fmt.Errorf(
				"%w: %s box in %s entry", ErrInvalidRecord, b.BoxType(),
				rec.Category,
			)
		}
		res.Boxes[i] = b
	}
	return res, nil
}

func (r boxRecord) box() (Box, error) {
	switch {
	case r.Type == BoxTimeSpan && r.Span != nil:
		return *r.Span, nil
	case r.Type == BoxTBox && r.TBox != nil:
		return *r.TBox, nil
	case r.Type == BoxSTBox && r.STBox != nil:
		return *r.STBox, nil
	default:
		return nil, fmt.Errorf("%w: box type %s", ErrInvalidRecord, r.Type)
	}
}

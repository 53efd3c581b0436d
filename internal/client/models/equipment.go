package models

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownEquipment = errors.New("unknown equipment")

// Selection is an ordered set of equipment names.
type Selection struct {
	items []string
}

func NewSelection(items ...string) Selection {
	var s Selection
	for _, it := range items {
		if !s.Contains(it) {
			s.items = append(s.items, it)
		}
	}
	return s
}

func (s Selection) Contains(item string) bool {
	return slices.Contains(s.items, item)
}

// Toggle adds item if absent and removes it otherwise, so toggling the same
// item twice gives back the original set.
func (s *Selection) Toggle(item string) {
	if i := slices.Index(s.items, item); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
		return
	}
	s.items = append(s.items, item)
}

// Items returns a copy in insertion order.
func (s Selection) Items() []string {
	return slices.Clone(s.items)
}

func (s Selection) Len() int { return len(s.items) }

// Equal reports set equality, ignoring order.
func (s Selection) Equal(o Selection) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for _, it := range s.items {
		if !o.Contains(it) {
			return false
		}
	}
	return true
}

// SubsetOf fails with ErrUnknownEquipment naming the first item missing from
// catalog.
func (s Selection) SubsetOf(catalog []string) error {
	for _, it := range s.items {
		if !slices.Contains(catalog, it) {
			return fmt.Errorf("%w: %q", ErrUnknownEquipment, it)
		}
	}
	return nil
}

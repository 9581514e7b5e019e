package store

import (
	"slices"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

// collection is an id-keyed table. Ids start at 1 and are never reused.
// It is not safe for concurrent use; Memory guards it.
type collection[T any] struct {
	items  []T
	lastID int
	idOf   func(T) int
	setID  func(*T, int)
}

func newCollection[T any](idOf func(T) int, setID func(*T, int)) *collection[T] {
	return &collection[T]{idOf: idOf, setID: setID}
}

func (c *collection[T]) list() []T {
	return slices.Clone(c.items)
}

func (c *collection[T]) insert(v T) T {
	c.lastID++
	c.setID(&v, c.lastID)
	c.items = append(c.items, v)
	return v
}

func (c *collection[T]) index(id int) int {
	return slices.IndexFunc(c.items, func(v T) bool { return c.idOf(v) == id })
}

func (c *collection[T]) get(id int) (T, error) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, common.ErrorNotFound
	}
	return c.items[i], nil
}

// replace overwrites the row with v's id.
func (c *collection[T]) replace(v T) error {
	i := c.index(c.idOf(v))
	if i < 0 {
		return common.ErrorNotFound
	}
	c.items[i] = v
	return nil
}

func (c *collection[T]) remove(id int) error {
	i := c.index(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

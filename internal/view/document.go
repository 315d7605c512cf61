package view

import (
	"fmt"
	"strings"
)

// Document is a headless page: a set of containers addressed by selector.
type Document struct {
	containers map[string]*Table
}

var _ Host = (*Document)(nil)

// NewDocument returns a page holding one empty container per selector.
func NewDocument(selectors ...string) *Document {
	d := &Document{containers: make(map[string]*Table)}
	for _, s := range selectors {
		d.AddContainer(s)
	}
	return d
}

// AddContainer adds an empty container. Adding an existing one is a no-op.
func (d *Document) AddContainer(selector string) {
	selector = strings.TrimSpace(selector)
	if _, ok := d.containers[selector]; !ok {
		d.containers[selector] = nil
	}
}

// Mount replaces the content of the container with a new Table. Nothing is
// touched when the container does not exist.
func (d *Document) Mount(selector string) (View, error) {
	selector = strings.TrimSpace(selector)
	if _, ok := d.containers[selector]; !ok || selector == "" {
		return nil, fmt.Errorf("%w: %q", ErrContainerNotFound, selector)
	}
	t := NewTable()
	d.containers[selector] = t
	return t, nil
}

// Table returns the table mounted in a container, if any.
func (d *Document) Table(selector string) (*Table, bool) {
	t := d.containers[strings.TrimSpace(selector)]
	return t, t != nil
}

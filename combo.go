package datalist

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ComboItem is one id/name choice of a combo box column.
type ComboItem struct {
	ID   int
	Name string
}

// ComboSource maps the integer ids stored in a combo box column to display
// names.
type ComboSource struct {
	items []ComboItem
	names map[int]string
}

// NewComboSource builds a source from items. Ids must be unique.
func NewComboSource(items ...ComboItem) (*ComboSource, error) {
	src := &ComboSource{names: make(map[int]string, len(items))}
	for _, it := range items {
		if _, dup := src.names[it.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrComboDuplicateID, it.ID)
		}
		src.names[it.ID] = it.Name
		src.items = append(src.items, it)
	}
	return src, nil
}

// ParseComboSource parses the "id;name;id;name" form. An empty string is an
// empty source.
func ParseComboSource(s string) (*ComboSource, error) {
	if strings.TrimSpace(s) == "" {
		return NewComboSource()
	}
	parts := strings.Split(s, ";")
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("%w: %d fields", ErrComboOddCount, len(parts))
	}
	items := make([]ComboItem, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		id, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrComboBadID, parts[i])
		}
		items = append(items, ComboItem{ID: id, Name: parts[i+1]})
	}
	return NewComboSource(items...)
}

// Name returns the display name for id, or "" when id is not mapped.
func (c *ComboSource) Name(id int) string {
	if c == nil {
		return ""
	}
	return c.names[id]
}

// Lookup finds the id whose name is name. A bare integer that is a mapped
// id is accepted too.
func (c *ComboSource) Lookup(name string) (int, bool) {
	if c == nil {
		return 0, false
	}
	for _, it := range c.items {
		if it.Name == name {
			return it.ID, true
		}
	}
	if id, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		if _, ok := c.names[id]; ok {
			return id, true
		}
	}
	return 0, false
}

// Items returns a copy of the choices in source order.
func (c *ComboSource) Items() []ComboItem {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Len returns the number of choices.
func (c *ComboSource) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// String re-encodes the source in the "id;name" form.
func (c *ComboSource) String() string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	for i, it := range c.items {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(it.ID))
		b.WriteByte(';')
		b.WriteString(it.Name)
	}
	return b.String()
}

package matching

// Catalog is the fixed set of skill names entities may hold.
type Catalog struct {
	names []string
	index map[string]struct{}
}

// NewCatalog builds a catalog from names. Duplicates are collapsed and the
// first occurrence order is kept.
func NewCatalog(names []string) *Catalog {
	c := &Catalog{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := c.index[name]; ok {
			continue
		}
		c.index[name] = struct{}{}
		c.names = append(c.names, name)
	}
	return c
}

func (c *Catalog) Contains(skill string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[skill]
	return ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns a copy of the catalog in insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

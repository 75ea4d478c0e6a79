package catalog

import "fmt"

// Provider is the read-only source of catalogs keyed by course id.
type Provider interface {
	// Courses lists course info in display order.
	Courses() []Info

	// Catalog returns the catalog for id.
	Catalog(id string) (*Catalog, bool)
}

// Library is an in-memory Provider.
type Library struct {
	order []string
	byID  map[string]*Catalog
}

var _ Provider = (*Library)(nil)

// NewLibrary builds a Library. Course ids must be unique.
func NewLibrary(catalogs ...*Catalog) (*Library, error) {
	lib := &Library{byID: make(map[string]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		id := c.Info.ID
		if _, dup := lib.byID[id]; dup {
			return nil, fmt.Errorf("duplicate course id %q", id)
		}
		lib.byID[id] = c
		lib.order = append(lib.order, id)
	}
	return lib, nil
}

func (l *Library) Courses() []Info {
	out := make([]Info, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id].Info)
	}
	return out
}

func (l *Library) Catalog(id string) (*Catalog, bool) {
	c, ok := l.byID[id]
	return c, ok
}

// Len returns the number of catalogs.
func (l *Library) Len() int {
	return len(l.order)
}

// Package dataset is the data supplier for the navigator core: it loads and
// saves work-item hierarchies from YAML, JSON, or TOML files, validating them
// against the embedded JSON Schema before the core ever sees them.
package dataset

import (
	"fmt"

	"github.com/grovetools/nav/nav"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// Document is the on-disk dataset format.
type Document struct {
	Version string  `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Groups  []Group `json:"groups" yaml:"groups" toml:"groups"`
}

// Group is one page of items with an optional display name.
type Group struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Items []nav.Item `json:"items" yaml:"items" toml:"items"`
}

// ToNav converts the document into the core's dataset shape. The returned
// groups hold pointers into this document's items, so mutations made by a
// Navigator are visible here and survive a Save round trip.
func (d *Document) ToNav() nav.Dataset {
	out := make(nav.Dataset, len(d.Groups))
	for gi := range d.Groups {
		group := make(nav.Group, len(d.Groups[gi].Items))
		for ii := range d.Groups[gi].Items {
			item := &d.Groups[gi].Items[ii]
			if item.Handlers == nil {
				item.Handlers = []string{}
			}
			group[ii] = item
		}
		out[gi] = group
	}
	return out
}

// FromNav builds a document from an in-memory dataset, copying items by
// value. Group names are left empty.
func FromNav(data nav.Dataset) *Document {
	doc := &Document{Version: "1.0", Groups: make([]Group, len(data))}
	for gi, group := range data {
		items := make([]nav.Item, len(group))
		for ii, item := range group {
			items[ii] = *item
		}
		doc.Groups[gi] = Group{Items: items}
	}
	return doc
}

// GroupNames returns the display name per group, falling back to a
// 1-based "Group N" label.
func (d *Document) GroupNames() []string {
	names := make([]string, len(d.Groups))
	for i, g := range d.Groups {
		if g.Name != "" {
			names[i] = g.Name
		} else {
			names[i] = fmt.Sprintf("Group %d", i+1)
		}
	}
	return names
}

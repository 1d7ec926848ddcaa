package models

import "time"

// MenuDocument is the shop menu as entered in the form and as stored in the
// record store. JSON field names are part of the stored record format and
// must not change.
type MenuDocument struct {
	ShopName        string     `json:"shopName"`
	ShopDescription string     `json:"shopDescription,omitempty"`
	ShopLogoURL     string     `json:"shopLogoUrl,omitempty"`
	Categories      []Category `json:"categories"`
}

// Category is an ordered group of menu items.
type Category struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem is a single dish. Prices are free-form strings
// (e.g. "5,000원") and are displayed verbatim.
type MenuItem struct {
	Name         string `json:"name"`
	DineInPrice  string `json:"dineInPrice,omitempty"`
	TakeoutPrice string `json:"takeoutPrice,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Prune returns a copy of the document with unusable entries removed:
// items with an empty name are dropped, then categories with an empty name
// or no surviving items are dropped entirely. Category and item order is
// preserved. Prune is applied before every persistence attempt.
func (d MenuDocument) Prune() MenuDocument {
	pruned := MenuDocument{
		ShopName:        d.ShopName,
		ShopDescription: d.ShopDescription,
		ShopLogoURL:     d.ShopLogoURL,
	}

	for _, category := range d.Categories {
		if category.Name == "" {
			continue
		}

		var items []MenuItem
		for _, item := range category.Items {
			if item.Name == "" {
				continue
			}
			items = append(items, item)
		}

		if len(items) == 0 {
			continue
		}

		pruned.Categories = append(pruned.Categories, Category{Name: category.Name, Items: items})
	}

	return pruned
}

// Encodable reports whether the pruned document may be persisted and linked:
// the shop name must be non-empty and at least one category must survive.
func (d MenuDocument) Encodable() bool {
	return d.ShopName != "" && len(d.Categories) > 0
}

// MenuRecord is a persisted menu document together with its store-assigned
// identity. ID is a UUID assigned once at creation and never changes; it is
// the value embedded in the generated display link.
type MenuRecord struct {
	ID        string       `json:"id"`
	OwnerID   int64        `json:"-"`
	Document  MenuDocument `json:"data"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// MenuSummary is the list-page projection of a stored menu.
type MenuSummary struct {
	ID        string    `json:"id"`
	ShopName  string    `json:"shopName"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

// ItemFilter selects and paginates knowledge items.
type ItemFilter struct {
	Status  *Status
	Search  string
	Page    int
	PerPage int
}

// UserFilter selects and paginates users.
type UserFilter struct {
	Search  string
	Page    int
	PerPage int
}

// PageMeta describes one page of an offset-paginated listing.
type PageMeta struct {
	Total    int
	Page     int
	PerPage  int
	LastPage int
}

// NewPageMeta computes paging metadata for total rows.
func NewPageMeta(total, page, perPage int) PageMeta {
	last := 1
	if perPage > 0 && total > 0 {
		last = (total + perPage - 1) / perPage
	}
	return PageMeta{Total: total, Page: page, PerPage: perPage, LastPage: last}
}

// Offset returns the row offset of the page.
func (m PageMeta) Offset() int {
	if m.Page <= 1 {
		return 0
	}
	return (m.Page - 1) * m.PerPage
}

// ItemPage is one page of knowledge items.
type ItemPage struct {
	Items []KnowledgeItem
	PageMeta
}

// UserPage is one page of users.
type UserPage struct {
	Users []User
	PageMeta
}

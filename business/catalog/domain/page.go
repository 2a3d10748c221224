package domain

// Filter selects listings by name substring, exact SKU or listing id.
// The fields are mutually exclusive on the wire; when more than one is set,
// name wins over SKU, which wins over id.
type Filter struct {
	Name  string
	SKU   string
	AdsID string
}

// IsZero reports whether no filter value is set.
func (f Filter) IsZero() bool {
	return f.Name == "" && f.SKU == "" && f.AdsID == ""
}

// QueryParam returns the single query parameter the filter resolves to,
// honoring the name > sku > id priority. ok is false for an empty filter.
func (f Filter) QueryParam() (key, value string, ok bool) {
	switch {
	case f.Name != "":
		return "name_like", f.Name, true
	case f.SKU != "":
		return "sku", f.SKU, true
	case f.AdsID != "":
		return "ads_id", f.AdsID, true
	}
	return "", "", false
}

// Page is one page of listings plus the paging totals derived from the
// service's x-total-count header.
type Page struct {
	Listings   []Announcement
	Number     int
	TotalCount int
	TotalPages int
}

// IsEmpty reports whether the page has no listings.
func (p Page) IsEmpty() bool {
	return len(p.Listings) == 0
}

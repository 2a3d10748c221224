package ui

import (
	"errors"
	"testing"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
	profitApp "github.com/brunovms/sellerboard/business/profit/app"
)

func testModel() Model {
	return New(Services{Profit: profitApp.NewProfitService()})
}

func pageFixture(number int, adsIDs ...string) catalog.Page {
	listings := make([]catalog.Announcement, 0, len(adsIDs))
	for _, id := range adsIDs {
		listings = append(listings, catalog.Announcement{AdsID: id, Name: "Anúncio " + id})
	}
	return catalog.Page{
		Listings:   listings,
		Number:     number,
		TotalCount: 12,
		TotalPages: 3,
	}
}

func applyMsg(t *testing.T, m Model, msg ListingsMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestUpdateDropsStaleListingsResponse(t *testing.T) {
	m := testModel()

	m = applyMsg(t, m, ListingsMsg{Seq: 2, Page: pageFixture(2, "MLB2")})
	if m.page.Number != 2 {
		t.Fatalf("page = %d, want 2", m.page.Number)
	}

	// A slow page-1 response arrives after page 2 was already rendered.
	m = applyMsg(t, m, ListingsMsg{Seq: 1, Page: pageFixture(1, "MLB1")})
	if m.page.Number != 2 {
		t.Errorf("stale response applied: page = %d, want 2", m.page.Number)
	}

	// A duplicate of the applied sequence is dropped too.
	m = applyMsg(t, m, ListingsMsg{Seq: 2, Page: pageFixture(1, "MLB1")})
	if m.page.Number != 2 {
		t.Errorf("duplicate seq applied: page = %d, want 2", m.page.Number)
	}

	// A newer response still applies.
	m = applyMsg(t, m, ListingsMsg{Seq: 3, Page: pageFixture(3, "MLB3")})
	if m.page.Number != 3 {
		t.Errorf("page = %d, want 3 after newer response", m.page.Number)
	}
}

func TestUpdateEmptySearchResultKeepsPageAndToasts(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, ListingsMsg{Seq: 2, Page: pageFixture(1, "MLB1")})

	m = applyMsg(t, m, ListingsMsg{
		Seq:    3,
		Page:   catalog.Page{Number: 1},
		Filter: catalog.Filter{Name: "inexistente"},
	})

	if len(m.page.Listings) != 1 || m.page.Listings[0].AdsID != "MLB1" {
		t.Error("previous page not kept after empty search result")
	}
	if !m.filter.IsZero() {
		t.Errorf("filter = %+v, want previous (unfiltered)", m.filter)
	}
	if m.toasts.Len() != 1 {
		t.Errorf("toasts = %d, want 1", m.toasts.Len())
	}
}

func TestUpdateFetchErrorKeepsPageAndToasts(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, ListingsMsg{Seq: 2, Page: pageFixture(1, "MLB1")})

	m = applyMsg(t, m, ListingsMsg{Seq: 3, Err: errors.New("connection refused")})

	if len(m.page.Listings) != 1 {
		t.Error("previous page not kept after fetch error")
	}
	if m.toasts.Len() != 1 {
		t.Errorf("toasts = %d, want 1", m.toasts.Len())
	}
}

func TestUpdateInitialLoadFailureShowsEmptyState(t *testing.T) {
	m := testModel()

	m = applyMsg(t, m, ListingsMsg{Seq: 2, Err: errors.New("connection refused")})

	if !m.initialLoaded {
		t.Error("initialLoaded = false, want explicit empty state")
	}
	if len(m.page.Listings) != 0 || m.page.Number != 1 {
		t.Errorf("page = %+v, want empty page 1", m.page)
	}
	if m.toasts.Len() != 1 {
		t.Errorf("toasts = %d, want 1", m.toasts.Len())
	}
}

func TestUpdateAppliedFilterIsRemembered(t *testing.T) {
	m := testModel()
	filter := catalog.Filter{SKU: "CHG-01"}

	m = applyMsg(t, m, ListingsMsg{Seq: 2, Page: pageFixture(1, "MLB1"), Filter: filter})

	if m.filter != filter {
		t.Errorf("filter = %+v, want %+v", m.filter, filter)
	}
}

package components

import (
	"strings"
	"testing"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
)

func rowsFixture() []ListingRow {
	return []ListingRow{
		{Listing: catalog.Announcement{AdsID: "MLB1", Name: "Carregador"}},
		{Listing: catalog.Announcement{AdsID: "MLB2", Name: "Cabo"}},
		{Listing: catalog.Announcement{AdsID: "MLB3", Name: "Fone"}},
	}
}

func TestToggleAffectsOnlySelectedListing(t *testing.T) {
	l := NewListingsComponent()
	l.SetRows(rowsFixture())

	l.MoveDown() // select MLB2
	l.Toggle(ModeGroup)

	if got := l.Mode("MLB2"); got != ModeGroup {
		t.Errorf("MLB2 mode = %v, want ModeGroup", got)
	}
	for _, other := range []string{"MLB1", "MLB3"} {
		if got := l.Mode(other); got != ModeNone {
			t.Errorf("%s mode = %v, want ModeNone", other, got)
		}
	}
}

func TestToggleCycles(t *testing.T) {
	l := NewListingsComponent()
	l.SetRows(rowsFixture())

	// none -> group -> none
	l.Toggle(ModeGroup)
	if got := l.Mode("MLB1"); got != ModeGroup {
		t.Fatalf("mode = %v, want ModeGroup", got)
	}
	l.Toggle(ModeGroup)
	if got := l.Mode("MLB1"); got != ModeNone {
		t.Fatalf("mode = %v, want ModeNone after second toggle", got)
	}

	// group -> detail switches directly
	l.Toggle(ModeGroup)
	l.Toggle(ModeDetail)
	if got := l.Mode("MLB1"); got != ModeDetail {
		t.Fatalf("mode = %v, want ModeDetail", got)
	}
}

func TestToggleOnEmptyPageIsNoop(t *testing.T) {
	l := NewListingsComponent()
	l.SetRows(nil)

	l.Toggle(ModeGroup)
	if l.Selected() != "" {
		t.Errorf("Selected() = %q, want empty", l.Selected())
	}
}

func TestSelectionClampsOnShrink(t *testing.T) {
	l := NewListingsComponent()
	l.SetRows(rowsFixture())
	l.MoveDown()
	l.MoveDown() // select MLB3

	l.SetRows(rowsFixture()[:1])
	if got := l.Selected(); got != "MLB1" {
		t.Errorf("Selected() = %q, want MLB1 after shrink", got)
	}
}

func TestMoveBounds(t *testing.T) {
	l := NewListingsComponent()
	l.SetRows(rowsFixture())

	l.MoveUp()
	if got := l.Selected(); got != "MLB1" {
		t.Errorf("Selected() = %q, want MLB1 at top", got)
	}

	for i := 0; i < 10; i++ {
		l.MoveDown()
	}
	if got := l.Selected(); got != "MLB3" {
		t.Errorf("Selected() = %q, want MLB3 at bottom", got)
	}
}

func TestExpansionSurvivesReload(t *testing.T) {
	l := NewListingsComponent()
	l.SetRows(rowsFixture())
	l.Toggle(ModeDetail)

	// Same listings arrive again after a reload.
	l.SetRows(rowsFixture())
	if got := l.Mode("MLB1"); got != ModeDetail {
		t.Errorf("MLB1 mode = %v, want ModeDetail after reload", got)
	}
}

func TestViewEmptyState(t *testing.T) {
	l := NewListingsComponent()
	l.SetRows(nil)

	view := l.View()
	if !strings.Contains(view, "Nenhum anúncio") {
		t.Errorf("empty view = %q, want empty-state text", view)
	}
}

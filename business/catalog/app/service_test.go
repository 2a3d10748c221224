package app

import (
	"context"
	"errors"
	"testing"

	"github.com/brunovms/sellerboard/business/catalog/domain"
)

// fakeFetcher records the last call and returns canned results.
type fakeFetcher struct {
	gotPage   int
	gotFilter domain.Filter
	page      domain.Page
	err       error
	pingErr   error
}

func (f *fakeFetcher) FetchPage(ctx context.Context, page int, filter domain.Filter) (domain.Page, error) {
	f.gotPage = page
	f.gotFilter = filter
	return f.page, f.err
}

func (f *fakeFetcher) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeFetcher) PageSize() int { return 5 }

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.Filter
		want   domain.Filter
	}{
		{
			name:   "empty stays empty",
			filter: domain.Filter{},
			want:   domain.Filter{},
		},
		{
			name:   "name wins over sku and id",
			filter: domain.Filter{Name: "carregador", SKU: "CHG-01", AdsID: "MLB1"},
			want:   domain.Filter{Name: "carregador"},
		},
		{
			name:   "sku wins over id",
			filter: domain.Filter{SKU: "CHG-01", AdsID: "MLB1"},
			want:   domain.Filter{SKU: "CHG-01"},
		},
		{
			name:   "id alone survives",
			filter: domain.Filter{AdsID: "MLB1"},
			want:   domain.Filter{AdsID: "MLB1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFilter(tt.filter); got != tt.want {
				t.Errorf("NormalizeFilter(%+v) = %+v, want %+v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestFetchPageNormalizesFilter(t *testing.T) {
	fetcher := &fakeFetcher{page: domain.Page{Number: 1}}
	svc := NewCatalogService(fetcher)

	_, err := svc.FetchPage(context.Background(), 1,
		domain.Filter{Name: "cabo", SKU: "CBL-01"})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}

	want := domain.Filter{Name: "cabo"}
	if fetcher.gotFilter != want {
		t.Errorf("filter sent to fetcher = %+v, want %+v", fetcher.gotFilter, want)
	}
}

func TestHealthCheck(t *testing.T) {
	svc := NewCatalogService(&fakeFetcher{})
	healthy, msg := svc.HealthCheck(context.Background())
	if !healthy {
		t.Errorf("HealthCheck healthy = false, want true (msg %q)", msg)
	}

	svc = NewCatalogService(&fakeFetcher{pingErr: errors.New("connection refused")})
	healthy, msg = svc.HealthCheck(context.Background())
	if healthy {
		t.Error("HealthCheck healthy = true, want false")
	}
	if msg == "" {
		t.Error("HealthCheck message empty, want cause text")
	}
}

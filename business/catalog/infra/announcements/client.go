package announcements

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/brunovms/sellerboard/business/catalog/domain"
	"github.com/brunovms/sellerboard/internal/apperror"
	"github.com/brunovms/sellerboard/internal/circuitbreaker"
	"github.com/brunovms/sellerboard/internal/httpclient"
	"github.com/brunovms/sellerboard/internal/logger"
	"github.com/brunovms/sellerboard/internal/ratelimit"
)

const (
	providerName     = "announcements"
	totalCountHeader = "X-Total-Count"
)

// Config holds the listing service client configuration.
type Config struct {
	BaseURL           string
	PageSize          int
	RequestTimeout    time.Duration
	RequestsPerMinute int
}

// fetchResult is what one guarded round-trip produces.
type fetchResult struct {
	messages []announcementMessage
	total    int
	hasTotal bool
}

// Client fetches paginated listing records from the external service.
// Requests run through a rate limiter and a circuit breaker so a flapping
// backend degrades to toasts instead of hammering the service.
type Client struct {
	http     httpclient.Client
	breaker  *circuitbreaker.Breaker[fetchResult]
	limiter  *ratelimit.Limiter
	logger   logger.LoggerInterface
	pageSize int
}

// NewClient creates a listing service client.
func NewClient(cfg Config, log logger.LoggerInterface) (*Client, error) {
	httpClient, err := httpclient.NewInstrumentedClient(
		httpclient.WithBaseURL(cfg.BaseURL),
		httpclient.WithProviderName(providerName),
		httpclient.WithRequestTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	return &Client{
		http:     httpClient,
		breaker:  circuitbreaker.New[fetchResult](circuitbreaker.DefaultConfig(providerName)),
		limiter:  ratelimit.New(cfg.RequestsPerMinute),
		logger:   log,
		pageSize: cfg.PageSize,
	}, nil
}

// PageSize returns the fixed page size sent as _limit.
func (c *Client) PageSize() int {
	return c.pageSize
}

// FetchPage retrieves one page of listings. page is 1-based. The filter is
// reduced to a single query parameter by priority (name > sku > id).
func (c *Client) FetchPage(ctx context.Context, page int, filter domain.Filter) (domain.Page, error) {
	if page < 1 {
		return domain.Page{}, apperror.Validation(apperror.CodeInvalidPageNumber,
			fmt.Sprintf("page %d", page))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Page{}, apperror.External(apperror.CodeRateLimitExceeded, "rate limiter wait", err)
	}

	result, err := c.breaker.Execute(func() (fetchResult, error) {
		return c.doFetch(ctx, page, filter)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return domain.Page{}, apperror.New(apperror.CodeCircuitOpen,
				apperror.WithCause(err),
				apperror.WithContext("listing service circuit open"))
		}
		return domain.Page{}, err
	}

	decoder := &fieldDecoder{log: c.logger}
	listings := make([]domain.Announcement, 0, len(result.messages))
	for _, msg := range result.messages {
		listings = append(listings, decoder.announcement(ctx, msg))
	}
	if decoder.issues > 0 {
		c.logger.Warn(ctx, "listing page decoded with field issues",
			"page", page, "issues", decoder.issues)
	}

	p := domain.Page{
		Listings: listings,
		Number:   page,
	}

	if result.hasTotal {
		p.TotalCount = result.total
		p.TotalPages = int(math.Ceil(float64(result.total) / float64(c.pageSize)))
	} else {
		// Degraded mode: without the count header navigation is capped at
		// the current page.
		c.logger.Warn(ctx, "response missing total count header", "page", page)
		p.TotalCount = len(listings)
		p.TotalPages = page
	}

	return p, nil
}

// Ping issues a minimal request, used by the readiness check.
func (c *Client) Ping(ctx context.Context) error {
	req := c.http.NewRequest().
		SetQueryParam("_page", "1").
		SetQueryParam("_limit", "1")

	resp, err := req.Get(ctx, "/announcements")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apperror.External(apperror.CodeAnnouncementAPIError,
			fmt.Sprintf("status %d", resp.StatusCode), nil)
	}
	return nil
}

func (c *Client) doFetch(ctx context.Context, page int, filter domain.Filter) (fetchResult, error) {
	var messages []announcementMessage

	req := c.http.NewRequestWithOptions(
		httpclient.WithLabels(httpclient.NewLabel("operation", "fetch_page")),
		httpclient.WithResponseErrorHandler(func(statusCode int, body []byte) error {
			switch {
			case statusCode == http.StatusNotFound:
				return apperror.NotFound(apperror.CodeAnnouncementNotFound,
					fmt.Sprintf("page %d", page))
			case statusCode >= 400:
				return apperror.External(apperror.CodeAnnouncementAPIError,
					fmt.Sprintf("status %d", statusCode), nil)
			}
			return nil
		}),
	)

	req.SetQueryParam("_page", strconv.Itoa(page))
	req.SetQueryParam("_limit", strconv.Itoa(c.pageSize))
	if key, value, ok := filter.QueryParam(); ok {
		req.SetQueryParam(key, value)
	}
	req.SetResult(&messages)

	resp, err := req.Get(ctx, "/announcements")
	if err != nil {
		if apperror.IsAppError(err) {
			return fetchResult{}, err
		}
		return fetchResult{}, apperror.External(apperror.CodeAnnouncementFetchFailed,
			fmt.Sprintf("page %d", page), err)
	}

	result := fetchResult{messages: messages}

	if raw := resp.Header.Get(totalCountHeader); raw != "" {
		total, convErr := strconv.Atoi(raw)
		if convErr != nil {
			c.logger.Warn(ctx, "unparseable total count header", "raw", raw)
		} else {
			result.total = total
			result.hasTotal = true
		}
	}

	return result, nil
}

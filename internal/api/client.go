package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	_ "time/tzdata" // Europe/Lisbon on hosts without a zoneinfo database

	"github.com/rs/zerolog"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultTimezone = "Europe/Lisbon"
)

// service is the request plumbing shared by the domain services
type service struct {
	requester Requester
	baseURL   string
	timezone  *time.Location
	clock     func() time.Time
	logger    zerolog.Logger
}

func (s *service) now() time.Time {
	return s.clock().In(s.timezone)
}

// Client is the API client for the Infraestruturas de Portugal endpoints
type Client struct {
	Stations *StationService
	Trains   *TrainService

	httpClient    *http.Client
	requester     Requester
	baseURL       string
	timezone      *time.Location
	clock         func() time.Time
	logger        zerolog.Logger
	serviceFilter bool
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRequester replaces the HTTP requester, mostly for tests
func WithRequester(r Requester) ClientOption {
	return func(c *Client) {
		c.requester = r
	}
}

// WithBaseURL points the client at another host
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithServiceTypeFilter toggles the service-type segment on station
// timetable URLs. It is enabled by default.
func WithServiceTypeFilter(enabled bool) ClientOption {
	return func(c *Client) {
		c.serviceFilter = enabled
	}
}

// WithClock sets the source of "now" for default query times
func WithClock(clock func() time.Time) ClientOption {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithTimezone sets the timezone query times are expressed in
func WithTimezone(loc *time.Location) ClientOption {
	return func(c *Client) {
		c.timezone = loc
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	tz, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:       BaseURL,
		timezone:      tz,
		clock:         time.Now,
		logger:        zerolog.Nop(),
		serviceFilter: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.requester == nil {
		c.requester = NewHTTPRequester(c.httpClient, c.logger)
	}

	base := service{
		requester: c.requester,
		baseURL:   c.baseURL,
		timezone:  c.timezone,
		clock:     c.clock,
		logger:    c.logger,
	}
	c.Stations = &StationService{service: base, serviceFilter: c.serviceFilter}
	c.Trains = &TrainService{service: base}

	return c, nil
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// Now returns the current time in the client's timezone
func (c *Client) Now() time.Time {
	return c.clock().In(c.timezone)
}

package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Config holds the calendar integration settings.
type Config struct {
	CredentialsPath string // Service Account JSON file
	CalendarID      string // target calendar, "primary" when empty
}

// Client wraps the Google Calendar API service. It is used for optional
// invoice deadline reminders and is always safe to leave unconfigured.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// New creates a Calendar client from a Service Account credentials file.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, errors.New("gcalendar: credentials path is required")
	}

	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create calendar service: %w", err)
	}

	return &Client{service: svc, calendarID: cfg.CalendarID}, nil
}

// NewFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: calendarID}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(c.target(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns the events in the given window, ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(c.target(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to list events: %w", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			Location:    item.Location,
		})
	}
	return events, nil
}

// target resolves the calendar id for one call.
func (c *Client) target(override string) string {
	if override != "" {
		return override
	}
	if c.calendarID != "" {
		return c.calendarID
	}
	return "primary"
}

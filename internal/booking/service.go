// Package booking creates mock checkout sessions for rental stays. No
// payment provider is contacted; the session mirrors the shape a
// hosted checkout would return so the frontend flow works end to end.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/obxstays/obx-backend/internal/model"
)

// ErrInvalidRequest wraps request validation failures. Handlers map it
// to a 400.
var ErrInvalidRequest = errors.New("invalid checkout request")

// ErrUnknownProperty is returned when the slug matches no listing.
var ErrUnknownProperty = errors.New("unknown property")

const dateLayout = "2006-01-02"

// CheckoutRequest is the body of a checkout session request.
type CheckoutRequest struct {
	PropertySlug string `json:"propertySlug" validate:"required"`
	CheckIn      string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut     string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests       int    `json:"guests" validate:"required,min=1,max=24"`
}

// CheckoutSession is the created mock session.
type CheckoutSession struct {
	SessionID    string  `json:"sessionId"`
	URL          string  `json:"url"`
	PropertySlug string  `json:"propertySlug"`
	Nights       int     `json:"nights"`
	Total        float64 `json:"total"`
}

type propertyFinder interface {
	BySlug(ctx context.Context, slug string) (*model.Property, model.Provenance)
}

// Service validates checkout requests and issues mock sessions.
type Service struct {
	validate *validator.Validate
	catalog  propertyFinder
	log      *slog.Logger
	newID    func() string
}

// NewService constructs a Service.
func NewService(catalog propertyFinder, log *slog.Logger) *Service {
	return &Service{
		validate: validator.New(),
		catalog:  catalog,
		log:      log,
		newID:    func() string { return uuid.NewString() },
	}
}

// NewServiceWithIDs constructs a Service with an injected session ID
// source (for tests).
func NewServiceWithIDs(catalog propertyFinder, log *slog.Logger, newID func() string) *Service {
	s := NewService(catalog, log)
	s.newID = newID
	return s
}

// CreateSession validates the request, prices the stay against the
// catalog, and returns a mock checkout session.
func (s *Service) CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing check-in: %v", ErrInvalidRequest, err)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing check-out: %v", ErrInvalidRequest, err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidRequest)
	}

	prop, _ := s.catalog.BySlug(ctx, req.PropertySlug)
	if prop == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, req.PropertySlug)
	}
	if prop.Sleeps > 0 && req.Guests > prop.Sleeps {
		return nil, fmt.Errorf("%w: %s sleeps at most %d guests", ErrInvalidRequest, prop.Slug, prop.Sleeps)
	}

	sessionID := "cs_mock_" + s.newID()
	session := &CheckoutSession{
		SessionID:    sessionID,
		URL:          fmt.Sprintf("https://checkout.stripe.com/c/pay/%s", sessionID),
		PropertySlug: prop.Slug,
		Nights:       nights,
		Total:        float64(nights) * prop.Nightly,
	}

	s.log.Info("created checkout session",
		"session_id", session.SessionID, "slug", prop.Slug, "nights", nights, "total", session.Total)
	return session, nil
}

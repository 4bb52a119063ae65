package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rashedq/artscape/internal/model"
)

// BookingPage is one fetched page of bookings.
type BookingPage struct {
	Bookings []model.Booking `json:"bookings"`
	Count    int             `json:"count"`
}

// BookingCreate is the POST /bookings payload. Status is the unit status
// the booking drives the unit into (server-side transition).
type BookingCreate struct {
	ClientName    string              `json:"clientName"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod"`
	UnitModel     model.UnitModel     `json:"unitModel"`
	Unit          string              `json:"unit"`
	Status        model.UnitStatus    `json:"status,omitempty"`
}

// CreateBooking books a unit.
func (c *Client) CreateBooking(ctx context.Context, req BookingCreate) (model.Booking, error) {
	var out model.Booking
	err := c.sendJSON(ctx, http.MethodPost, "/bookings", req, &out)
	return out, err
}

// ListBookings fetches a filtered page of bookings.
func (c *Client) ListBookings(ctx context.Context, p ListParams, f BookingFilter) (BookingPage, error) {
	var out BookingPage
	err := c.getJSON(ctx, "/bookings", merge(p.Values(), f.Values()), &out)
	return out, err
}

// ExportBookings retrieves a binary spreadsheet of the given bookings.
// IDs are comma-joined into a single query parameter.
func (c *Client) ExportBookings(ctx context.Context, ids []string) ([]byte, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	return c.getBlob(ctx, "/bookings/export", q)
}

// ExportAllBookings retrieves a binary spreadsheet of every booking.
func (c *Client) ExportAllBookings(ctx context.Context) ([]byte, error) {
	return c.getBlob(ctx, "/bookings/export/all", nil)
}

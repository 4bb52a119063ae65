package api

import (
	"context"
	"net/http"

	"github.com/rashedq/artscape/internal/model"
)

// OrderPage is one fetched page of an order listing.
type OrderPage struct {
	Orders []model.Order `json:"orders"`
	Count  int           `json:"count"`
}

// OrderCreate is the POST /order payload. Payment is cash on delivery in
// the current flow.
type OrderCreate struct {
	ArtID                string        `json:"artId"`
	PhoneNumber          string        `json:"phoneNumber"`
	PhoneNumberSecondary string        `json:"phoneNumberSecondary,omitempty"`
	Address              model.Address `json:"address"`
	PaymentMethod        string        `json:"paymentMethod,omitempty"`
}

// CreateOrder places an order against an art piece.
func (c *Client) CreateOrder(ctx context.Context, req OrderCreate) (model.Order, error) {
	var out model.Order
	err := c.sendJSON(ctx, http.MethodPost, "/order", req, &out)
	return out, err
}

// MyOrders lists orders the current user placed as a buyer.
func (c *Client) MyOrders(ctx context.Context, p ListParams) (OrderPage, error) {
	var out OrderPage
	err := c.getJSON(ctx, "/order/mine", p.Values(), &out)
	return out, err
}

// ReceivedOrders lists orders placed against the current artist's pieces.
func (c *Client) ReceivedOrders(ctx context.Context, p ListParams) (OrderPage, error) {
	var out OrderPage
	err := c.getJSON(ctx, "/order/my-orders", p.Values(), &out)
	return out, err
}

// UpdateOrderStatus moves an order through its lifecycle (artist side).
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	var out model.Order
	err := c.sendJSON(ctx, http.MethodPatch, "/order/"+id+"/status", map[string]model.OrderStatus{"status": status}, &out)
	return out, err
}

package page

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/paging"
	"github.com/rashedq/artscape/internal/query"
)

// OrdersAPI is the backend slice the two order listings need.
type OrdersAPI interface {
	MyOrders(ctx context.Context, p api.ListParams) (api.OrderPage, error)
	ReceivedOrders(ctx context.Context, p api.ListParams) (api.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error)
}

// OrdersList serves both order pages: the buyer's placed orders and the
// artist's received orders. Only the received variant may move an order
// through its lifecycle.
type OrdersList struct {
	api      OrdersAPI
	cache    *query.Cache
	note     notify.Notifier
	received bool

	pager  paging.Pager
	orders []model.Order
	sub    uuid.UUID
}

// NewMyOrders lists the current user's placed orders.
func NewMyOrders(a OrdersAPI, cache *query.Cache, n notify.Notifier) *OrdersList {
	return newOrders(a, cache, n, false)
}

// NewReceivedOrders lists orders placed against the current artist's
// pieces, with status control.
func NewReceivedOrders(a OrdersAPI, cache *query.Cache, n notify.Notifier) *OrdersList {
	return newOrders(a, cache, n, true)
}

func newOrders(a OrdersAPI, cache *query.Cache, n notify.Notifier, received bool) *OrdersList {
	c := &OrdersList{api: a, cache: cache, note: n, received: received, pager: paging.Pager{Current: 1, TotalPages: 1}}
	c.sub = cache.Subscribe(c.resource(), func() { _ = c.Load(context.Background()) })
	return c
}

func (c *OrdersList) resource() string {
	if c.received {
		return resourceReceivedOrders
	}
	return resourceMyOrders
}

// Close cancels the invalidation subscription.
func (c *OrdersList) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current page.
func (c *OrdersList) Load(ctx context.Context) error {
	p := api.ListParams{Page: c.pager.Current, Limit: adminPageSize}
	key := query.KeyOf(c.resource(), p.Values())
	pageData, err := query.Run(ctx, c.cache, key, func(ctx context.Context) (api.OrderPage, error) {
		if c.received {
			return c.api.ReceivedOrders(ctx, p)
		}
		return c.api.MyOrders(ctx, p)
	})
	if errors.Is(err, errs.ErrStale) {
		return nil
	}
	if err != nil {
		report(c.note, err, "failed to load orders")
		return err
	}

	c.orders = pageData.Orders
	c.pager.TotalPages = paging.TotalPages(pageData.Count, adminPageSize)
	if c.pager.Current > c.pager.TotalPages {
		c.pager.Current = c.pager.TotalPages
		return c.Load(ctx)
	}
	return nil
}

// GoTo moves to page n; out-of-range moves are no-ops.
func (c *OrdersList) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

func (c *OrdersList) Orders() []model.Order { return c.orders }
func (c *OrdersList) Pager() paging.Pager   { return c.pager }

// SetStatus moves an order to the given status and re-fetches the list.
// Only the received listing exposes this control.
func (c *OrdersList) SetStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if !c.received {
		return errs.ErrUnauthorized
	}
	_, err := c.api.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		report(c.note, err, "failed to update order")
		return err
	}
	c.note.Success("order updated")
	c.cache.Invalidate(resourceReceivedOrders)
	c.cache.Invalidate(resourceMyOrders)
	return nil
}

package page

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/paging"
	"github.com/rashedq/artscape/internal/query"
)

// BookingsAPI is the backend slice the bookings admin table needs.
type BookingsAPI interface {
	ListBookings(ctx context.Context, p api.ListParams, f api.BookingFilter) (api.BookingPage, error)
	ExportBookings(ctx context.Context, ids []string) ([]byte, error)
	ExportAllBookings(ctx context.Context) ([]byte, error)
}

// Export is a spreadsheet returned by an export action, named with the
// export date.
type Export struct {
	Filename string
	Data     []byte
}

// BookingsAdmin is the bookings table with a cross-page selection set
// and the two spreadsheet exports. The status filter is applied to the
// fetched page locally, mirroring the public unit grids.
type BookingsAdmin struct {
	api   BookingsAPI
	cache *query.Cache
	note  notify.Notifier

	pager    paging.Pager
	filter   api.BookingFilter
	status   string
	bookings []model.Booking

	selected map[string]struct{}
	sub      uuid.UUID

	now func() time.Time
}

// NewBookingsAdmin subscribes to booking invalidations. Call Close when
// leaving the page.
func NewBookingsAdmin(a BookingsAPI, cache *query.Cache, n notify.Notifier) *BookingsAdmin {
	c := &BookingsAdmin{
		api:      a,
		cache:    cache,
		note:     n,
		pager:    paging.Pager{Current: 1, TotalPages: 1},
		selected: make(map[string]struct{}),
		now:      time.Now,
	}
	c.sub = cache.Subscribe(resourceBookings, func() { _ = c.Load(context.Background()) })
	return c
}

// Close cancels the invalidation subscription.
func (c *BookingsAdmin) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current table page.
func (c *BookingsAdmin) Load(ctx context.Context) error {
	p := api.ListParams{Page: c.pager.Current, Limit: adminPageSize}
	key := listKey(resourceBookings, p, c.filter.Values())
	pageData, err := query.Run(ctx, c.cache, key, func(ctx context.Context) (api.BookingPage, error) {
		return c.api.ListBookings(ctx, p, c.filter)
	})
	if errors.Is(err, errs.ErrStale) {
		return nil
	}
	if err != nil {
		report(c.note, err, "failed to load bookings")
		return err
	}

	c.bookings = pageData.Bookings
	c.pager.TotalPages = paging.TotalPages(pageData.Count, adminPageSize)
	if c.pager.Current > c.pager.TotalPages {
		c.pager.Current = c.pager.TotalPages
		return c.Load(ctx)
	}
	return nil
}

// SetFilter replaces the filter and restarts from page 1. Status stays
// local; the unit-model and payment filters go to the server.
func (c *BookingsAdmin) SetFilter(ctx context.Context, f api.BookingFilter, status string) error {
	c.filter = f
	c.status = status
	c.pager.Current = 1
	return c.Load(ctx)
}

// GoTo moves to page n; out-of-range moves are no-ops. The selection
// set survives page changes.
func (c *BookingsAdmin) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

// Displayed returns the fetched page narrowed by the local status
// filter.
func (c *BookingsAdmin) Displayed() []model.Booking {
	if c.status == "" || c.status == api.All {
		return c.bookings
	}
	out := make([]model.Booking, 0, len(c.bookings))
	for _, b := range c.bookings {
		if string(b.Status) == c.status {
			out = append(out, b)
		}
	}
	return out
}

func (c *BookingsAdmin) Pager() paging.Pager       { return c.pager }
func (c *BookingsAdmin) Filter() api.BookingFilter { return c.filter }
func (c *BookingsAdmin) StatusFilter() string      { return c.status }

// Selected reports whether a booking is in the selection set.
func (c *BookingsAdmin) Selected(id string) bool {
	_, ok := c.selected[id]
	return ok
}

// SelectedCount returns the size of the selection set across all pages.
func (c *BookingsAdmin) SelectedCount() int { return len(c.selected) }

// ToggleSelect flips one booking in or out of the selection set.
func (c *BookingsAdmin) ToggleSelect(id string) {
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

// TogglePage selects every displayed row of the current page, or
// deselects them all when every one is already selected. Rows on other
// pages are untouched.
func (c *BookingsAdmin) TogglePage() {
	rows := c.Displayed()
	all := len(rows) > 0
	for _, b := range rows {
		if !c.Selected(b.ID) {
			all = false
			break
		}
	}
	for _, b := range rows {
		if all {
			delete(c.selected, b.ID)
		} else {
			c.selected[b.ID] = struct{}{}
		}
	}
}

// ClearSelection empties the selection set.
func (c *BookingsAdmin) ClearSelection() { c.selected = make(map[string]struct{}) }

// ExportSelected downloads a spreadsheet of the selected bookings. An
// empty selection is rejected before any request.
func (c *BookingsAdmin) ExportSelected(ctx context.Context) (Export, error) {
	if len(c.selected) == 0 {
		c.note.Error("select at least one booking to export")
		return Export{}, errs.ErrEmptySelection
	}
	ids := make([]string, 0, len(c.selected))
	// fetched order first so the export follows the visible table
	for _, b := range c.bookings {
		if c.Selected(b.ID) {
			ids = append(ids, b.ID)
		}
	}
	for id := range c.selected {
		if !containsID(ids, id) {
			ids = append(ids, id)
		}
	}
	data, err := c.api.ExportBookings(ctx, ids)
	if err != nil {
		report(c.note, err, "failed to export bookings")
		return Export{}, err
	}
	return Export{Filename: c.exportName("bookings_selected"), Data: data}, nil
}

// ExportAll downloads a spreadsheet of every booking.
func (c *BookingsAdmin) ExportAll(ctx context.Context) (Export, error) {
	data, err := c.api.ExportAllBookings(ctx)
	if err != nil {
		report(c.note, err, "failed to export bookings")
		return Export{}, err
	}
	return Export{Filename: c.exportName("bookings_all"), Data: data}, nil
}

func (c *BookingsAdmin) exportName(prefix string) string {
	return prefix + "_" + c.now().Format("2006-01-02") + ".xlsx"
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

package page

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/forms"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/paging"
	"github.com/rashedq/artscape/internal/query"
	"github.com/rashedq/artscape/internal/router"
)

// ArtsAPI is the backend slice the art catalog needs.
type ArtsAPI interface {
	ListArts(ctx context.Context, p api.ListParams) (api.ArtPage, error)
}

// ArtsList is the public art catalog page.
type ArtsList struct {
	api   ArtsAPI
	cache *query.Cache
	note  notify.Notifier

	pager paging.Pager
	arts  []model.Art
	sub   uuid.UUID
}

// NewArtsList subscribes to art invalidations. Call Close when leaving.
func NewArtsList(a ArtsAPI, cache *query.Cache, n notify.Notifier) *ArtsList {
	c := &ArtsList{api: a, cache: cache, note: n, pager: paging.Pager{Current: 1, TotalPages: 1}}
	c.sub = cache.Subscribe(resourceArts, func() { _ = c.Load(context.Background()) })
	return c
}

// Close cancels the invalidation subscription.
func (c *ArtsList) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current catalog page.
func (c *ArtsList) Load(ctx context.Context) error {
	p := api.ListParams{Page: c.pager.Current, Limit: artsPageSize}
	key := query.KeyOf(resourceArts, p.Values())
	pageData, err := query.Run(ctx, c.cache, key, func(ctx context.Context) (api.ArtPage, error) {
		return c.api.ListArts(ctx, p)
	})
	if errors.Is(err, errs.ErrStale) {
		return nil
	}
	if err != nil {
		report(c.note, err, "failed to load artworks")
		return err
	}

	c.arts = pageData.Arts
	c.pager.TotalPages = paging.TotalPages(pageData.Count, artsPageSize)
	if c.pager.Current > c.pager.TotalPages {
		c.pager.Current = c.pager.TotalPages
		return c.Load(ctx)
	}
	return nil
}

// GoTo moves to page n; out-of-range moves are no-ops.
func (c *ArtsList) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

func (c *ArtsList) Arts() []model.Art   { return c.arts }
func (c *ArtsList) Pager() paging.Pager { return c.pager }

// ArtDetailAPI is the backend slice the art detail page needs.
type ArtDetailAPI interface {
	GetArt(ctx context.Context, id string) (model.Art, error)
	CreateOrder(ctx context.Context, req api.OrderCreate) (model.Order, error)
}

// ArtDetail is one artwork with its order dialog. Ordering is gated:
// anonymous users are sent to login, and a user can never order their
// own piece.
type ArtDetail struct {
	api   ArtDetailAPI
	cache *query.Cache
	sess  Session
	note  notify.Notifier
	nav   Navigator

	art       model.Art
	loaded    bool
	orderOpen bool
	form      forms.OrderForm
}

func NewArtDetail(a ArtDetailAPI, cache *query.Cache, sess Session, n notify.Notifier, nav Navigator) *ArtDetail {
	return &ArtDetail{api: a, cache: cache, sess: sess, note: n, nav: nav}
}

// Load fetches the artwork.
func (c *ArtDetail) Load(ctx context.Context, id string) error {
	art, err := c.api.GetArt(ctx, id)
	if err != nil {
		report(c.note, err, "failed to load artwork")
		return err
	}
	c.art = art
	c.loaded = true
	return nil
}

func (c *ArtDetail) Art() (model.Art, bool) { return c.art, c.loaded }

// CanOrder reports whether the order action is enabled: signed in and
// not the owning artist.
func (c *ArtDetail) CanOrder() bool {
	u := c.sess.User()
	return u != nil && u.ID != c.art.Artist.ID
}

// OpenOrder opens the order dialog. Anonymous users are redirected to
// login without sending anything; the own-artwork guard rejects before
// any request as well.
func (c *ArtDetail) OpenOrder() error {
	u := c.sess.User()
	if u == nil {
		c.nav.Navigate(router.PathLogin)
		return errs.ErrLoginRequired
	}
	if u.ID == c.art.Artist.ID {
		c.note.Error("you cannot order your own artwork")
		return errs.ErrOwnArtwork
	}
	c.orderOpen = true
	c.form = forms.OrderForm{}
	return nil
}

// Order returns the open dialog's form for editing.
func (c *ArtDetail) Order() (*forms.OrderForm, bool) {
	if !c.orderOpen {
		return nil, false
	}
	return &c.form, true
}

// CancelOrder discards the open dialog.
func (c *ArtDetail) CancelOrder() { c.orderOpen = false }

// SubmitOrder re-checks the guards, validates, and places the order. On
// success the buyer's order list is invalidated and the page navigates
// there.
func (c *ArtDetail) SubmitOrder(ctx context.Context) error {
	if !c.orderOpen {
		return nil
	}
	u := c.sess.User()
	if u == nil {
		c.nav.Navigate(router.PathLogin)
		return errs.ErrLoginRequired
	}
	if u.ID == c.art.Artist.ID {
		c.note.Error("you cannot order your own artwork")
		return errs.ErrOwnArtwork
	}
	if err := forms.Check(c.form); err != nil {
		c.note.Error(err.Error())
		return err
	}
	_, err := c.api.CreateOrder(ctx, c.form.Payload(c.art.ID))
	if err != nil {
		report(c.note, err, "failed to place order")
		return err
	}
	c.orderOpen = false
	c.note.Success("order placed")
	c.cache.Invalidate(resourceMyOrders)
	c.nav.Navigate("/my-orders")
	return nil
}

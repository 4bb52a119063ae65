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
	"github.com/rashedq/artscape/internal/router"
)

// BlogsAPI is the backend slice the blog feed needs.
type BlogsAPI interface {
	ListBlogs(ctx context.Context, p api.BlogListParams) (api.BlogPage, error)
}

// BlogsList is the blog feed with the followed-authors-only toggle.
type BlogsList struct {
	api   BlogsAPI
	cache *query.Cache
	sess  Session
	note  notify.Notifier

	pager     paging.Pager
	following bool
	blogs     []model.Blog
	sub       uuid.UUID
}

// NewBlogsList subscribes to blog invalidations. Call Close when leaving.
func NewBlogsList(a BlogsAPI, cache *query.Cache, sess Session, n notify.Notifier) *BlogsList {
	c := &BlogsList{api: a, cache: cache, sess: sess, note: n, pager: paging.Pager{Current: 1, TotalPages: 1}}
	c.sub = cache.Subscribe(resourceBlogs, func() { _ = c.Load(context.Background()) })
	return c
}

// Close cancels the invalidation subscription.
func (c *BlogsList) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current feed page.
func (c *BlogsList) Load(ctx context.Context) error {
	p := api.BlogListParams{
		ListParams: api.ListParams{Page: c.pager.Current, Limit: adminPageSize},
		Following:  c.following,
	}
	key := query.KeyOf(resourceBlogs, p.Values())
	pageData, err := query.Run(ctx, c.cache, key, func(ctx context.Context) (api.BlogPage, error) {
		return c.api.ListBlogs(ctx, p)
	})
	if errors.Is(err, errs.ErrStale) {
		return nil
	}
	if err != nil {
		report(c.note, err, "failed to load blogs")
		return err
	}

	c.blogs = pageData.Blogs
	c.pager.TotalPages = paging.TotalPages(pageData.Count, adminPageSize)
	if c.pager.Current > c.pager.TotalPages {
		c.pager.Current = c.pager.TotalPages
		return c.Load(ctx)
	}
	return nil
}

// SetFollowing toggles the followed-authors filter and restarts from
// page 1. The toggle requires a session; anonymous users keep the full
// feed.
func (c *BlogsList) SetFollowing(ctx context.Context, on bool) error {
	if on && c.sess.User() == nil {
		return errs.ErrLoginRequired
	}
	c.following = on
	c.pager.Current = 1
	return c.Load(ctx)
}

// GoTo moves to page n; out-of-range moves are no-ops.
func (c *BlogsList) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

func (c *BlogsList) Blogs() []model.Blog { return c.blogs }
func (c *BlogsList) Pager() paging.Pager { return c.pager }
func (c *BlogsList) Following() bool     { return c.following }

// BlogDetailAPI is the backend slice the blog detail page needs.
type BlogDetailAPI interface {
	GetBlog(ctx context.Context, id string) (model.Blog, error)
	LikeBlog(ctx context.Context, id string) error
	UnlikeBlog(ctx context.Context, id string) error
	CommentBlog(ctx context.Context, id, text string) error
	DeleteComment(ctx context.Context, id, commentID string) error
}

// BlogDetail is one post with its like and comment actions. A comment
// deep link (the fragment on a shared URL) is stored as a one-shot
// marker: the renderer consumes it once to scroll and focus, and
// subsequent renders never repeat the jump.
type BlogDetail struct {
	api   BlogDetailAPI
	cache *query.Cache
	sess  Session
	note  notify.Notifier
	nav   Navigator

	blog   model.Blog
	loaded bool

	pendingComment string
}

func NewBlogDetail(a BlogDetailAPI, cache *query.Cache, sess Session, n notify.Notifier, nav Navigator) *BlogDetail {
	return &BlogDetail{api: a, cache: cache, sess: sess, note: n, nav: nav}
}

// Load fetches the post with its likes and comments.
func (c *BlogDetail) Load(ctx context.Context, id string) error {
	b, err := c.api.GetBlog(ctx, id)
	if err != nil {
		report(c.note, err, "failed to load blog")
		return err
	}
	c.blog = b
	c.loaded = true
	return nil
}

func (c *BlogDetail) Blog() (model.Blog, bool) { return c.blog, c.loaded }

// Liked reports whether the current user likes the post.
func (c *BlogDetail) Liked() bool {
	u := c.sess.User()
	return u != nil && c.blog.LikedBy(u.ID)
}

// ToggleLike likes or unlikes the post and re-fetches it. Anonymous
// users are redirected to login without sending anything.
func (c *BlogDetail) ToggleLike(ctx context.Context) error {
	u := c.sess.User()
	if u == nil {
		c.nav.Navigate(router.PathLogin)
		return errs.ErrLoginRequired
	}
	var err error
	if c.blog.LikedBy(u.ID) {
		err = c.api.UnlikeBlog(ctx, c.blog.ID)
	} else {
		err = c.api.LikeBlog(ctx, c.blog.ID)
	}
	if err != nil {
		report(c.note, err, "failed to update like")
		return err
	}
	c.cache.Invalidate(resourceBlogs)
	return c.Load(ctx, c.blog.ID)
}

// AddComment appends a comment and re-fetches the post.
func (c *BlogDetail) AddComment(ctx context.Context, text string) error {
	if c.sess.User() == nil {
		c.nav.Navigate(router.PathLogin)
		return errs.ErrLoginRequired
	}
	if text == "" {
		return nil
	}
	if err := c.api.CommentBlog(ctx, c.blog.ID, text); err != nil {
		report(c.note, err, "failed to post comment")
		return err
	}
	c.cache.Invalidate(resourceBlogs)
	return c.Load(ctx, c.blog.ID)
}

// DeleteComment removes one of the current user's comments and
// re-fetches the post.
func (c *BlogDetail) DeleteComment(ctx context.Context, commentID string) error {
	if c.sess.User() == nil {
		return errs.ErrLoginRequired
	}
	if err := c.api.DeleteComment(ctx, c.blog.ID, commentID); err != nil {
		report(c.note, err, "failed to delete comment")
		return err
	}
	c.cache.Invalidate(resourceBlogs)
	return c.Load(ctx, c.blog.ID)
}

// SetPendingComment records a comment deep link to jump to on the next
// render.
func (c *BlogDetail) SetPendingComment(commentID string) {
	c.pendingComment = commentID
}

// ConsumePendingComment returns the deep-linked comment id exactly once;
// the marker is cleared so later renders never re-trigger the jump.
func (c *BlogDetail) ConsumePendingComment() (string, bool) {
	if c.pendingComment == "" {
		return "", false
	}
	id := c.pendingComment
	c.pendingComment = ""
	return id, true
}

package page

import (
	"context"
	"errors"
	"testing"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/query"
	"github.com/rashedq/artscape/internal/router"
)

type fakeBlogDetailAPI struct {
	blog model.Blog

	likes    []string
	unlikes  []string
	comments []string
	removed  []string
}

var _ BlogDetailAPI = (*fakeBlogDetailAPI)(nil)

func (f *fakeBlogDetailAPI) GetBlog(context.Context, string) (model.Blog, error) {
	return f.blog, nil
}

func (f *fakeBlogDetailAPI) LikeBlog(_ context.Context, id string) error {
	f.likes = append(f.likes, id)
	f.blog.Likes = append(f.blog.Likes, "u1")
	return nil
}

func (f *fakeBlogDetailAPI) UnlikeBlog(_ context.Context, id string) error {
	f.unlikes = append(f.unlikes, id)
	f.blog.Likes = nil
	return nil
}

func (f *fakeBlogDetailAPI) CommentBlog(_ context.Context, _ string, text string) error {
	f.comments = append(f.comments, text)
	return nil
}

func (f *fakeBlogDetailAPI) DeleteComment(_ context.Context, _, commentID string) error {
	f.removed = append(f.removed, commentID)
	return nil
}

func TestBlogsList_FollowingNeedsSession(t *testing.T) {
	sess := &fakeSession{}
	list := blogsListFunc(func(_ context.Context, p api.BlogListParams) (api.BlogPage, error) {
		return api.BlogPage{Count: 1}, nil
	})
	c := NewBlogsList(list, query.NewCache(), sess, &notify.Memory{})
	defer c.Close()

	if err := c.SetFollowing(context.Background(), true); !errors.Is(err, errs.ErrLoginRequired) {
		t.Fatalf("err = %v", err)
	}
	if c.Following() {
		t.Fatalf("anonymous toggle applied")
	}

	sess.user = &model.User{ID: "u1"}
	if err := c.SetFollowing(context.Background(), true); err != nil {
		t.Fatalf("SetFollowing: %v", err)
	}
	if !c.Following() {
		t.Fatalf("toggle not applied")
	}
}

func TestBlogsList_FollowingResetsPage(t *testing.T) {
	var seen []api.BlogListParams
	list := blogsListFunc(func(_ context.Context, p api.BlogListParams) (api.BlogPage, error) {
		seen = append(seen, p)
		return api.BlogPage{Count: 40}, nil
	})
	c := NewBlogsList(list, query.NewCache(), loggedIn(), &notify.Memory{})
	defer c.Close()
	ctx := context.Background()

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := c.GoTo(ctx, 3); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if err := c.SetFollowing(ctx, true); err != nil {
		t.Fatalf("SetFollowing: %v", err)
	}
	last := seen[len(seen)-1]
	if last.Page != 1 || !last.Following {
		t.Fatalf("last fetch: %+v", last)
	}
}

func TestBlogDetail_ToggleLike(t *testing.T) {
	a := &fakeBlogDetailAPI{blog: model.Blog{ID: "b1"}}
	nav := &navSpy{}
	sess := &fakeSession{}
	c := NewBlogDetail(a, query.NewCache(), sess, &notify.Memory{}, nav)
	ctx := context.Background()

	if err := c.Load(ctx, "b1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// anonymous like goes to login, nothing is sent
	if err := c.ToggleLike(ctx); !errors.Is(err, errs.ErrLoginRequired) {
		t.Fatalf("err = %v", err)
	}
	if len(a.likes) != 0 || len(nav.paths) != 1 || nav.paths[0] != router.PathLogin {
		t.Fatalf("anonymous like: likes=%v nav=%v", a.likes, nav.paths)
	}

	sess.user = &model.User{ID: "u1"}
	if err := c.ToggleLike(ctx); err != nil {
		t.Fatalf("like: %v", err)
	}
	if len(a.likes) != 1 || !c.Liked() {
		t.Fatalf("like not applied: %v", a.likes)
	}
	if err := c.ToggleLike(ctx); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if len(a.unlikes) != 1 || c.Liked() {
		t.Fatalf("unlike not applied: %v", a.unlikes)
	}
}

func TestBlogDetail_EmptyCommentIgnored(t *testing.T) {
	a := &fakeBlogDetailAPI{blog: model.Blog{ID: "b1"}}
	c := NewBlogDetail(a, query.NewCache(), loggedIn(), &notify.Memory{}, &navSpy{})
	ctx := context.Background()

	if err := c.Load(ctx, "b1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := c.AddComment(ctx, ""); err != nil {
		t.Fatalf("empty comment: %v", err)
	}
	if len(a.comments) != 0 {
		t.Fatalf("empty comment sent")
	}
	if err := c.AddComment(ctx, "great piece"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(a.comments) != 1 || a.comments[0] != "great piece" {
		t.Fatalf("comments: %v", a.comments)
	}
}

func TestBlogDetail_PendingCommentConsumedOnce(t *testing.T) {
	c := NewBlogDetail(&fakeBlogDetailAPI{}, query.NewCache(), loggedIn(), &notify.Memory{}, &navSpy{})

	if _, ok := c.ConsumePendingComment(); ok {
		t.Fatalf("marker present before set")
	}
	c.SetPendingComment("c7")
	id, ok := c.ConsumePendingComment()
	if !ok || id != "c7" {
		t.Fatalf("first consume: %q %v", id, ok)
	}
	if _, ok := c.ConsumePendingComment(); ok {
		t.Fatalf("marker survived consumption")
	}
}

type blogsListFunc func(ctx context.Context, p api.BlogListParams) (api.BlogPage, error)

func (f blogsListFunc) ListBlogs(ctx context.Context, p api.BlogListParams) (api.BlogPage, error) {
	return f(ctx, p)
}

package router

import (
	"context"
	"testing"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/session"
	"github.com/rashedq/artscape/internal/token"
)

type fakeAuth struct {
	user model.User
	err  error
}

func (f *fakeAuth) Login(context.Context, string, string) (string, error) { return "tok", f.err }
func (f *fakeAuth) Signup(context.Context, api.SignupRequest) error       { return f.err }
func (f *fakeAuth) Me(context.Context) (model.User, error)                { return f.user, f.err }

func anonRouter(t *testing.T) *Router {
	t.Helper()
	p := session.New(&fakeAuth{}, &token.MemStore{}, nil)
	p.Restore(context.Background())
	return New(p)
}

func userRouter(t *testing.T, role model.Role) *Router {
	t.Helper()
	tokens := &token.MemStore{}
	_ = tokens.Save("tok")
	p := session.New(&fakeAuth{user: model.User{ID: "u1", Role: role}}, tokens, nil)
	p.Restore(context.Background())
	return New(p)
}

func TestResolve_LoadingBeforeRestore(t *testing.T) {
	t.Parallel()
	p := session.New(&fakeAuth{}, &token.MemStore{}, nil)
	r := New(p)
	res := r.Resolve("/arts")
	if res.Page != PageLoading || res.ShowChrome {
		t.Fatalf("resolution: %+v", res)
	}
}

func TestResolve_RootRedirects(t *testing.T) {
	t.Parallel()
	if res := anonRouter(t).Resolve("/"); res.RedirectTo != PathLogin {
		t.Fatalf("anonymous root: %+v", res)
	}
	if res := userRouter(t, model.RoleUser).Resolve("/"); res.RedirectTo != PathDefaultUnits {
		t.Fatalf("authenticated root: %+v", res)
	}
}

func TestResolve_PublicTable(t *testing.T) {
	t.Parallel()
	r := userRouter(t, model.RoleUser)
	cases := []struct {
		path  string
		page  Page
		param string
	}{
		{"/login", PageLogin, ""},
		{"/signup", PageSignup, ""},
		{"/arts", PageArts, ""},
		{"/arts/a1", PageArtDetail, "a1"},
		{"/artist/u7", PageArtistProfile, "u7"},
		{"/blogs", PageBlogs, ""},
		{"/blogs/b3", PageBlogDetail, "b3"},
		{"/artist-orders", PageReceivedOrders, ""},
		{"/my-orders", PageMyOrders, ""},
		{"/units/zaya-development", PageCompanyOneUnits, ""},
		{"/units/rikaz-development", PageCompanyTwoUnits, ""},
		{"/nope", PageNotFound, ""},
	}
	for _, c := range cases {
		res := r.Resolve(c.path)
		if res.Page != c.page || res.Param != c.param {
			t.Fatalf("%s: %+v", c.path, res)
		}
		if !res.ShowChrome {
			t.Fatalf("%s: chrome hidden", c.path)
		}
	}
}

func TestResolve_TrailingSlash(t *testing.T) {
	t.Parallel()
	r := userRouter(t, model.RoleUser)
	if res := r.Resolve("/arts/"); res.Page != PageArts {
		t.Fatalf("trailing slash: %+v", res)
	}
}

func TestResolve_AdminRequiresRole(t *testing.T) {
	t.Parallel()
	for _, path := range []string{"/admin", "/admin/bookings", "/admin/zaya-development"} {
		if res := anonRouter(t).Resolve(path); res.RedirectTo != PathLogin {
			t.Fatalf("anonymous %s: %+v", path, res)
		}
		if res := userRouter(t, model.RoleUser).Resolve(path); res.RedirectTo != PathLogin {
			t.Fatalf("non-admin %s: %+v", path, res)
		}
	}
}

func TestResolve_AdminPages(t *testing.T) {
	t.Parallel()
	r := userRouter(t, model.RoleAdmin)

	if res := r.Resolve("/admin"); res.RedirectTo != "/admin/zaya-development" {
		t.Fatalf("admin index: %+v", res)
	}
	cases := map[string]Page{
		"/admin/zaya-development":  PageAdminCompanyOne,
		"/admin/rikaz-development": PageAdminCompanyTwo,
		"/admin/bookings":          PageAdminBookings,
	}
	for path, page := range cases {
		res := r.Resolve(path)
		if res.Page != page {
			t.Fatalf("%s: %+v", path, res)
		}
		if res.ShowChrome {
			t.Fatalf("%s: chrome shown under admin", path)
		}
	}
	if res := r.Resolve("/admin/nope"); res.Page != PageNotFound {
		t.Fatalf("admin 404: %+v", res)
	}
}

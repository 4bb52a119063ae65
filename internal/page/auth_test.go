package page

import (
	"context"
	"testing"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/router"
)

type fakeAuthSession struct {
	logins  []string
	signups []api.SignupRequest
	err     error
}

var _ AuthSession = (*fakeAuthSession)(nil)

func (f *fakeAuthSession) Login(_ context.Context, email, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.logins = append(f.logins, email)
	return nil
}

func (f *fakeAuthSession) Signup(_ context.Context, req api.SignupRequest) error {
	if f.err != nil {
		return f.err
	}
	f.signups = append(f.signups, req)
	return nil
}

func TestLogin_ValidatesBeforeSending(t *testing.T) {
	sess := &fakeAuthSession{}
	notes := &notify.Memory{}
	c := NewLogin(sess, notes, &navSpy{})

	c.Form = LoginForm{Email: "not-an-email", Password: "pw"}
	if err := c.Submit(context.Background()); err == nil {
		t.Fatalf("bad email accepted")
	}
	if len(sess.logins) != 0 {
		t.Fatalf("request sent despite invalid form")
	}
	if _, ok := notes.Last(); !ok {
		t.Fatalf("validation failure not surfaced")
	}
}

func TestLogin_NavigatesToDefaultListing(t *testing.T) {
	sess := &fakeAuthSession{}
	nav := &navSpy{}
	c := NewLogin(sess, &notify.Memory{}, nav)

	c.Form = LoginForm{Email: "a@b.c", Password: "pw"}
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(sess.logins) != 1 || sess.logins[0] != "a@b.c" {
		t.Fatalf("logins: %v", sess.logins)
	}
	if len(nav.paths) != 1 || nav.paths[0] != router.PathDefaultUnits {
		t.Fatalf("nav: %v", nav.paths)
	}
}

func TestSignup_PasswordMismatchStaysLocal(t *testing.T) {
	sess := &fakeAuthSession{}
	notes := &notify.Memory{}
	c := NewSignup(sess, notes, &navSpy{})

	c.Form = SignupForm{
		FullName:        "Amr",
		Email:           "a@b.c",
		Password:        "longenough",
		ConfirmPassword: "different",
	}
	if err := c.Submit(context.Background()); err == nil {
		t.Fatalf("mismatch accepted")
	}
	if len(sess.signups) != 0 {
		t.Fatalf("request sent despite mismatch")
	}
	if n, ok := notes.Last(); !ok || n.Message != "passwords do not match" {
		t.Fatalf("mismatch not surfaced: %+v", n)
	}
}

func TestSignup_Submits(t *testing.T) {
	sess := &fakeAuthSession{}
	nav := &navSpy{}
	c := NewSignup(sess, &notify.Memory{}, nav)

	c.Form = SignupForm{
		FullName:        "Amr",
		Email:           "a@b.c",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	}
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	req := sess.signups[0]
	if req.Email != "a@b.c" || req.ConfirmPassword != "longenough" {
		t.Fatalf("request: %+v", req)
	}
	if len(nav.paths) != 1 || nav.paths[0] != router.PathDefaultUnits {
		t.Fatalf("nav: %v", nav.paths)
	}
}

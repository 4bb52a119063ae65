package page

import (
	"context"
	"errors"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/forms"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/router"
)

// AuthSession is the slice of the session provider the auth pages drive.
type AuthSession interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, req api.SignupRequest) error
}

// LoginForm is the login page's two fields.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login is the login page controller.
type Login struct {
	sess AuthSession
	note notify.Notifier
	nav  Navigator

	Form LoginForm
}

func NewLogin(sess AuthSession, n notify.Notifier, nav Navigator) *Login {
	return &Login{sess: sess, note: n, nav: nav}
}

// Submit validates and logs in, then navigates to the default listing.
func (c *Login) Submit(ctx context.Context) error {
	if err := forms.Check(c.Form); err != nil {
		c.note.Error(err.Error())
		return err
	}
	if err := c.sess.Login(ctx, c.Form.Email, c.Form.Password); err != nil {
		report(c.note, err, "login failed")
		return err
	}
	c.nav.Navigate(router.PathDefaultUnits)
	return nil
}

// SignupForm mirrors the registration fields; the confirmation must
// match before anything is sent.
type SignupForm struct {
	FullName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required"`
}

// Signup is the registration page controller.
type Signup struct {
	sess AuthSession
	note notify.Notifier
	nav  Navigator

	Form SignupForm
}

func NewSignup(sess AuthSession, n notify.Notifier, nav Navigator) *Signup {
	return &Signup{sess: sess, note: n, nav: nav}
}

// Submit validates, registers, and (through the session provider) logs
// in with the same credentials before navigating to the default listing.
func (c *Signup) Submit(ctx context.Context) error {
	if err := forms.Check(c.Form); err != nil {
		c.note.Error(err.Error())
		return err
	}
	if c.Form.Password != c.Form.ConfirmPassword {
		err := errors.New("passwords do not match")
		c.note.Error(err.Error())
		return err
	}
	req := api.SignupRequest{
		FullName:        c.Form.FullName,
		Email:           c.Form.Email,
		Password:        c.Form.Password,
		ConfirmPassword: c.Form.ConfirmPassword,
	}
	if err := c.sess.Signup(ctx, req); err != nil {
		report(c.note, err, "signup failed")
		return err
	}
	c.nav.Navigate(router.PathDefaultUnits)
	return nil
}

package page

import (
	"context"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/imagecrop"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/router"
)

// ProfileAPI is the backend slice the artist profile page needs.
type ProfileAPI interface {
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	UpdateProfile(ctx context.Context, req api.ProfileUpdate) (model.Profile, error)
	UploadProfileImage(ctx context.Context, file api.FileUpload) (model.Profile, error)
	UploadCoverImage(ctx context.Context, file api.FileUpload) (model.Profile, error)
	FollowUser(ctx context.Context, userID string) error
	UnfollowUser(ctx context.Context, userID string) error
}

// ArtistProfile is one artist's public profile. The owner edits bio and
// images; visitors follow or unfollow.
type ArtistProfile struct {
	api  ProfileAPI
	sess Session
	note notify.Notifier
	nav  Navigator

	userID  string
	profile model.Profile
	loaded  bool
}

func NewArtistProfile(a ProfileAPI, sess Session, n notify.Notifier, nav Navigator) *ArtistProfile {
	return &ArtistProfile{api: a, sess: sess, note: n, nav: nav}
}

// Load fetches the profile for userID.
func (c *ArtistProfile) Load(ctx context.Context, userID string) error {
	p, err := c.api.GetProfile(ctx, userID)
	if err != nil {
		report(c.note, err, "failed to load profile")
		return err
	}
	c.userID = userID
	c.profile = p
	c.loaded = true
	return nil
}

func (c *ArtistProfile) Profile() (model.Profile, bool) { return c.profile, c.loaded }

// IsOwner reports whether the current user owns this profile.
func (c *ArtistProfile) IsOwner() bool {
	u := c.sess.User()
	return u != nil && u.ID == c.userID
}

// FollowsProfile reports whether the current user follows this artist.
func (c *ArtistProfile) FollowsProfile() bool {
	u := c.sess.User()
	if u == nil {
		return false
	}
	for _, id := range c.profile.Followers {
		if id == u.ID {
			return true
		}
	}
	return false
}

// ToggleFollow follows or unfollows the artist and re-fetches the
// profile. Anonymous users are redirected to login.
func (c *ArtistProfile) ToggleFollow(ctx context.Context) error {
	if c.sess.User() == nil {
		c.nav.Navigate(router.PathLogin)
		return errs.ErrLoginRequired
	}
	var err error
	if c.FollowsProfile() {
		err = c.api.UnfollowUser(ctx, c.userID)
	} else {
		err = c.api.FollowUser(ctx, c.userID)
	}
	if err != nil {
		report(c.note, err, "failed to update follow")
		return err
	}
	return c.Load(ctx, c.userID)
}

// UpdateBio saves the owner's name and bio.
func (c *ArtistProfile) UpdateBio(ctx context.Context, fullName, bio string) error {
	if !c.IsOwner() {
		return errs.ErrUnauthorized
	}
	p, err := c.api.UpdateProfile(ctx, api.ProfileUpdate{FullName: fullName, Bio: bio})
	if err != nil {
		report(c.note, err, "failed to update profile")
		return err
	}
	c.profile = p
	c.note.Success("profile updated")
	return nil
}

// UploadAvatar replaces the owner's profile image.
func (c *ArtistProfile) UploadAvatar(ctx context.Context, name string, data []byte) error {
	if !c.IsOwner() {
		return errs.ErrUnauthorized
	}
	p, err := c.api.UploadProfileImage(ctx, api.FileUpload{Name: name, Data: data})
	if err != nil {
		report(c.note, err, "failed to upload image")
		return err
	}
	c.profile = p
	c.note.Success("profile image updated")
	return nil
}

// UploadCover crops the source image to the cover aspect at the given
// zoom and vertical offset, then uploads the result.
func (c *ArtistProfile) UploadCover(ctx context.Context, name string, data []byte, scale, yOffset float64) error {
	if !c.IsOwner() {
		return errs.ErrUnauthorized
	}
	cropped, err := imagecrop.CoverBytes(data, scale, yOffset)
	if err != nil {
		c.note.Error("unsupported cover image")
		return err
	}
	p, err := c.api.UploadCoverImage(ctx, api.FileUpload{Name: name, Data: cropped})
	if err != nil {
		report(c.note, err, "failed to upload cover")
		return err
	}
	c.profile = p
	c.note.Success("cover image updated")
	return nil
}

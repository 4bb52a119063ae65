package api

import (
	"context"
	"net/http"

	"github.com/rashedq/artscape/internal/model"
)

// ProfileUpdate is the PATCH /user/me/profile payload. Only set fields
// are sent.
type ProfileUpdate struct {
	FullName string `json:"fullName,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// GetProfile fetches an artist's public profile.
func (c *Client) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	var out model.Profile
	err := c.getJSON(ctx, "/user/"+userID+"/profile", nil, &out)
	return out, err
}

// UpdateProfile patches the current user's profile.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (model.Profile, error) {
	var out model.Profile
	err := c.sendJSON(ctx, http.MethodPatch, "/user/me/profile", req, &out)
	return out, err
}

// UploadProfileImage replaces the current user's avatar (multipart).
func (c *Client) UploadProfileImage(ctx context.Context, file FileUpload) (model.Profile, error) {
	return c.uploadUserImage(ctx, "/user/me/profile-image", "profileImage", file)
}

// UploadCoverImage replaces the current user's profile cover (multipart).
// Callers crop to the cover aspect before uploading.
func (c *Client) UploadCoverImage(ctx context.Context, file FileUpload) (model.Profile, error) {
	return c.uploadUserImage(ctx, "/user/me/cover-image", "coverImage", file)
}

func (c *Client) uploadUserImage(ctx context.Context, path, field string, file FileUpload) (model.Profile, error) {
	file.Field = field
	body, ct, err := encodeMultipart(nil, []FileUpload{file})
	if err != nil {
		return model.Profile{}, err
	}
	var out model.Profile
	err = c.do(ctx, http.MethodPatch, path, nil, body, ct, &out)
	return out, err
}

// FollowUser adds the current user to userID's follower set.
func (c *Client) FollowUser(ctx context.Context, userID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/user/"+userID+"/follow", nil, nil)
}

// UnfollowUser removes the current user from userID's follower set.
func (c *Client) UnfollowUser(ctx context.Context, userID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/user/"+userID+"/unfollow", nil, nil)
}

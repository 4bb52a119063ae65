package api

import (
	"context"
	"net/http"

	"github.com/rashedq/artscape/internal/model"
)

// ArtPage is one fetched page of the art listing.
type ArtPage struct {
	Arts  []model.Art `json:"arts"`
	Count int         `json:"count"`
}

// ArtUpload is the multipart payload for creating or updating an art piece.
type ArtUpload struct {
	Name     string
	Category string
	Price    float64
	Images   []FileUpload
}

func (u ArtUpload) parts() ([][2]string, []FileUpload) {
	fields := [][2]string{
		{"name", u.Name},
		{"category", u.Category},
		numField("price", u.Price),
	}
	files := make([]FileUpload, len(u.Images))
	for i, f := range u.Images {
		f.Field = "images"
		files[i] = f
	}
	return fields, files
}

// ListArts fetches a page of the art catalog.
func (c *Client) ListArts(ctx context.Context, p ListParams) (ArtPage, error) {
	var out ArtPage
	err := c.getJSON(ctx, "/art", p.Values(), &out)
	return out, err
}

// GetArt fetches one art piece.
func (c *Client) GetArt(ctx context.Context, id string) (model.Art, error) {
	var out model.Art
	err := c.getJSON(ctx, "/art/"+id, nil, &out)
	return out, err
}

// CreateArt uploads a new art piece (multipart).
func (c *Client) CreateArt(ctx context.Context, up ArtUpload) (model.Art, error) {
	fields, files := up.parts()
	body, ct, err := encodeMultipart(fields, files)
	if err != nil {
		return model.Art{}, err
	}
	var out model.Art
	err = c.do(ctx, http.MethodPost, "/art", nil, body, ct, &out)
	return out, err
}

// UpdateArt patches an art piece (multipart).
func (c *Client) UpdateArt(ctx context.Context, id string, up ArtUpload) (model.Art, error) {
	fields, files := up.parts()
	body, ct, err := encodeMultipart(fields, files)
	if err != nil {
		return model.Art{}, err
	}
	var out model.Art
	err = c.do(ctx, http.MethodPatch, "/art/"+id, nil, body, ct, &out)
	return out, err
}

// DeleteArt removes an art piece.
func (c *Client) DeleteArt(ctx context.Context, id string) error {
	return c.delete(ctx, "/art/"+id, nil)
}

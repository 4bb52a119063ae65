package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rashedq/artscape/internal/model"
)

// BlogPage is one fetched page of the blog feed.
type BlogPage struct {
	Blogs []model.Blog `json:"blogs"`
	Count int          `json:"count"`
}

// BlogListParams extends the shared list parameters with the
// followed-authors-only flag.
type BlogListParams struct {
	ListParams
	Following bool
}

func (p BlogListParams) Values() url.Values {
	q := p.ListParams.Values()
	if p.Following {
		q.Set("following", "true")
	}
	return q
}

// BlogUpload is the multipart payload for creating or updating a post.
// Cover is optional.
type BlogUpload struct {
	Title       string
	Description string
	Cover       *FileUpload
}

func (u BlogUpload) parts() ([][2]string, []FileUpload) {
	fields := [][2]string{
		{"title", u.Title},
		{"description", u.Description},
	}
	var files []FileUpload
	if u.Cover != nil {
		cov := *u.Cover
		cov.Field = "coverImage"
		files = append(files, cov)
	}
	return fields, files
}

// ListBlogs fetches a page of the blog feed.
func (c *Client) ListBlogs(ctx context.Context, p BlogListParams) (BlogPage, error) {
	var out BlogPage
	err := c.getJSON(ctx, "/blog", p.Values(), &out)
	return out, err
}

// GetBlog fetches one post with its likes and comments.
func (c *Client) GetBlog(ctx context.Context, id string) (model.Blog, error) {
	var out model.Blog
	err := c.getJSON(ctx, "/blog/"+id, nil, &out)
	return out, err
}

// CreateBlog publishes a post (multipart).
func (c *Client) CreateBlog(ctx context.Context, up BlogUpload) (model.Blog, error) {
	fields, files := up.parts()
	body, ct, err := encodeMultipart(fields, files)
	if err != nil {
		return model.Blog{}, err
	}
	var out model.Blog
	err = c.do(ctx, http.MethodPost, "/blog", nil, body, ct, &out)
	return out, err
}

// UpdateBlog patches a post (multipart).
func (c *Client) UpdateBlog(ctx context.Context, id string, up BlogUpload) (model.Blog, error) {
	fields, files := up.parts()
	body, ct, err := encodeMultipart(fields, files)
	if err != nil {
		return model.Blog{}, err
	}
	var out model.Blog
	err = c.do(ctx, http.MethodPatch, "/blog/"+id, nil, body, ct, &out)
	return out, err
}

// DeleteBlog removes a post.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.delete(ctx, "/blog/"+id, nil)
}

// LikeBlog adds the current user to the post's like set.
func (c *Client) LikeBlog(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodPost, "/blog/"+id+"/like", nil, nil)
}

// UnlikeBlog removes the current user from the post's like set.
func (c *Client) UnlikeBlog(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodPost, "/blog/"+id+"/unlike", nil, nil)
}

// CommentBlog appends a comment.
func (c *Client) CommentBlog(ctx context.Context, id, text string) error {
	return c.sendJSON(ctx, http.MethodPost, "/blog/"+id+"/comment", map[string]string{"text": text}, nil)
}

// DeleteComment removes one of the current user's comments.
func (c *Client) DeleteComment(ctx context.Context, id, commentID string) error {
	return c.delete(ctx, "/blog/"+id+"/comment", map[string]string{"commentId": commentID})
}

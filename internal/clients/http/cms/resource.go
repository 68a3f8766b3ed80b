package cms

import (
	"context"
	"fmt"
	"time"
)

// Resource is a typed view over one CMS collection type, e.g. "/banner-collections".
type Resource[A any] struct {
	client *Client
	path   string
}

func NewResource[A any](client *Client, path string) *Resource[A] {
	return &Resource[A]{client: client, path: path}
}

// List fetches one page of the collection.
func (r *Resource[A]) List(ctx context.Context, q *Query) (Collection[A], error) {
	var out Collection[A]
	err := r.client.Get(ctx, r.path, q, &out)
	return out, err
}

// Get fetches one entry. A missing entry is ErrNotFound.
func (r *Resource[A]) Get(ctx context.Context, id int64, q *Query) (Entity[A], error) {
	var out Single[A]
	if err := r.client.Get(ctx, r.itemPath(id), q, &out); err != nil {
		return Entity[A]{}, err
	}
	if out.Data == nil {
		return Entity[A]{}, ErrNotFound
	}
	return *out.Data, nil
}

// Create posts {data: body} and returns the stored entry.
func (r *Resource[A]) Create(ctx context.Context, body any) (Entity[A], error) {
	var out Single[A]
	if err := r.client.Post(ctx, r.path, Payload[any]{Data: body}, &out); err != nil {
		return Entity[A]{}, err
	}
	if out.Data == nil {
		return Entity[A]{}, fmt.Errorf("cms returned no data creating %s", r.path)
	}
	return *out.Data, nil
}

// Update puts {data: body} on one entry.
func (r *Resource[A]) Update(ctx context.Context, id int64, body any) (Entity[A], error) {
	var out Single[A]
	if err := r.client.Put(ctx, r.itemPath(id), Payload[any]{Data: body}, &out); err != nil {
		return Entity[A]{}, err
	}
	if out.Data == nil {
		return Entity[A]{}, ErrNotFound
	}
	return *out.Data, nil
}

func (r *Resource[A]) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, r.itemPath(id), nil)
}

// SetPublished publishes (now) or unpublishes (null publishedAt) a draft-enabled entry.
func (r *Resource[A]) SetPublished(ctx context.Context, id int64, published bool, now time.Time) (Entity[A], error) {
	body := map[string]any{"publishedAt": nil}
	if published {
		body["publishedAt"] = now.UTC().Format(time.RFC3339)
	}
	return r.Update(ctx, id, body)
}

func (r *Resource[A]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

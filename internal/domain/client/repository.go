package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	Delete(ctx context.Context, c *Client) error
}

package assistant

import "context"

type Client interface {
	Ask(ctx context.Context, question string) (*Reply, error)
}

package ports

import "context"

type AssetProvider interface {
	Ensure(ctx context.Context) (string, error)
}

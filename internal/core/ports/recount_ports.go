package ports

import "context"

type RecountService interface {
	RecountAllVotes(ctx context.Context) error
}

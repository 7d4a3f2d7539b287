package listings

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wellnest/services/listings ListingCache

// ListingCache is the read-through cache in front of the listing endpoints
type ListingCache interface {
	InvalidatePrefix(ctx context.Context, prefix string) (int, error)
}

package users

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wellnest/services/users ListingCache

// ListingCache drops cached listing responses after ratings change
type ListingCache interface {
	InvalidatePrefix(ctx context.Context, prefix string) (int, error)
}

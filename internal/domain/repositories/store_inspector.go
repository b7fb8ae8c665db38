package repositories

import "context"

// StoreInspector reports on the document store backing the repositories
type StoreInspector interface {
	DatabaseName() string
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
}

package database

import (
	"context"
	"errors"

	mongoclient "github.com/zatekoja/bookingengine/internal/infrastructure/clients/mongo"
	apperrors "github.com/zatekoja/bookingengine/pkg/errors"
)

// documentStore is the subset of the Mongo client used by the repositories
type documentStore interface {
	InsertDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	FindDocuments(ctx context.Context, collection string, filter interface{}, results interface{}) error
	FindDocumentByID(ctx context.Context, collection, id string, result interface{}) error
}

var _ documentStore = (*mongoclient.Client)(nil)

// notFoundOrInternal maps lookup errors from the store onto AppErrors
func notFoundOrInternal(err error, notFoundMsg, internalMsg string) error {
	if errors.Is(err, mongoclient.ErrDocumentNotFound) || errors.Is(err, mongoclient.ErrInvalidID) {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	return apperrors.NewInternalError(internalMsg, err)
}

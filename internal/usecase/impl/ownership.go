package impl

import (
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// assertStoreOwner is the single ownership check used by every operation that
// mutates a store's contents on behalf of a caller.
func assertStoreOwner(store *entity.Store, callerID uuid.UUID) error {
	if store.UserID != callerID {
		return errors.Wrap(domainerrors.ErrForbidden, "caller does not own this store")
	}

	return nil
}

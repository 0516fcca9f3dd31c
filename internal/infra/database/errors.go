package database

import (
	"errors"
	"fmt"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// storageErr tags a driver failure as StorageUnavailable while keeping the
// original error in the chain. Callers surface it, never retry it.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(entity.ErrStorageUnavailable, err))
}

package orders

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ValidationError reports a malformed export row. Validation runs before any
// transaction is opened, so a ValidationError means nothing was written.
type ValidationError struct {
	Row    int // zero-based index in the uploaded batch
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: field %q: %s", e.Row, e.Field, e.Reason)
}

var (
	// ErrConflict marks an insert the store rejected as a duplicate, e.g. a
	// race with a concurrent upload of the same keys. The batch is rolled
	// back; the engine does not retry.
	ErrConflict = errors.New("store rejected record as duplicate")
	// ErrStoreUnavailable marks a connectivity or timeout failure while
	// talking to the store. The batch is rolled back.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// classifyStoreError maps a raw driver/gorm error onto the upload error
// taxonomy. Anything it does not recognize passes through unchanged and is
// treated as unexpected by the caller.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1062: duplicate entry for a unique key
		if me.Number == 1062 {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var ne net.Error
	if errors.As(err, &ne) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return err
}

package analytics

import (
	"fmt"

	"github.com/Veraticus/cashflow/internal/common"
)

// ErrInvalidArgument is returned for contract violations such as a
// non-positive window, a malformed date or an unknown enum value.
// It is never retried and never silently defaulted.
var ErrInvalidArgument = common.ErrInvalidArgument

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

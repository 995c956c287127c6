package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/tbf/errs"
)

// toUint32 narrows a count or id to the wire format's 32-bit field width,
// failing rather than silently truncating.
func toUint32(n int) (uint32, error) {
	if n < 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", errs.ErrIntegerOverflow, n)
	}

	return uint32(n), nil
}

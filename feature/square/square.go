package square

import (
	"errors"
	"time"

	"github.com/samber/mo"
)

// Delay is how long a non-negative square waits before it resolves.
const Delay = time.Second

// ErrNegativeNumber rejects negative input. The message is part of the contract.
var ErrNegativeNumber = errors.New("Negative number not allowed") //nolint:staticcheck

// SquareAsync starts squaring n and returns the pending result.
func SquareAsync(n float64) *mo.Future[float64] {
	return mo.NewFuture(func(resolve func(float64), reject func(error)) {
		if n < 0 {
			reject(ErrNegativeNumber)
			return
		}

		time.AfterFunc(Delay, func() {
			resolve(n * n)
		})
	})
}

// Package square squares numbers after a fixed delay.
//
// SquareAsync hands back a mo.Future that settles exactly once:
//   - negative input rejects right away with ErrNegativeNumber, no timer is created;
//   - any other input resolves with n*n once Delay has elapsed.
//
// Calls are independent. There is no retry and no cancellation, and concurrent
// calls may settle in any order.
//
// # Usage
//
//	result, err := square.SquareAsync(4).Collect() // 16, nil after one second
//	_, err = square.SquareAsync(-3).Collect()      // ErrNegativeNumber, immediately
package square

package outbound

import "context"

// RiderLocker serializes location writes for a single rider.
type RiderLocker interface {
	// Lock blocks until the rider's lock is held or ctx is done. The returned
	// func releases it and is safe to call more than once.
	Lock(ctx context.Context, riderID int64) (unlock func(), err error)
}

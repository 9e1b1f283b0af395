package storage

import (
	"context"
	"sync"
	"time"

	"github.com/DioGolang/GoRider/pkg/metrics"
)

type localLock struct {
	ch   chan struct{}
	refs int
}

// LocalLocker serializes writes per rider inside one process.
type LocalLocker struct {
	mu      sync.Mutex
	locks   map[int64]*localLock
	metrics metrics.Metrics
}

func NewLocalLocker(m metrics.Metrics) *LocalLocker {
	return &LocalLocker{locks: make(map[int64]*localLock), metrics: m}
}

func (l *LocalLocker) Lock(ctx context.Context, riderID int64) (func(), error) {
	start := time.Now()
	lk := l.acquireRef(riderID)

	select {
	case lk.ch <- struct{}{}:
	case <-ctx.Done():
		l.releaseRef(riderID)
		l.metrics.ObserveLockWait("local", false, time.Since(start))
		return nil, ctx.Err()
	}
	l.metrics.ObserveLockWait("local", true, time.Since(start))

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lk.ch
			l.releaseRef(riderID)
		})
	}, nil
}

func (l *LocalLocker) acquireRef(riderID int64) *localLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk, ok := l.locks[riderID]
	if !ok {
		lk = &localLock{ch: make(chan struct{}, 1)}
		l.locks[riderID] = lk
	}
	lk.refs++
	return lk
}

func (l *LocalLocker) releaseRef(riderID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk := l.locks[riderID]
	lk.refs--
	if lk.refs == 0 {
		delete(l.locks, riderID)
	}
}

package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetOrComputeMemoizes(t *testing.T) {
	rc := New(time.Minute)

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return "payload", nil
	}

	v, err := rc.GetOrCompute("index:page:1", compute)
	assert.NoError(t, err)
	assert.Equal(t, "payload", v)

	v, err = rc.GetOrCompute("index:page:1", compute)
	assert.NoError(t, err)
	assert.Equal(t, "payload", v)
	assert.Equal(t, 1, calls)
}

// A cached entry keeps serving the old payload after the underlying data
// changes; only InvalidateAll (or TTL expiry) lets the new value through.
func TestCachedEntryStaysStaleUntilInvalidated(t *testing.T) {
	rc := New(time.Minute)

	current := "before-delete"
	compute := func() (interface{}, error) {
		return current, nil
	}

	v, _ := rc.GetOrCompute("index:page:1", compute)
	assert.Equal(t, "before-delete", v)

	current = "after-delete"
	v, _ = rc.GetOrCompute("index:page:1", compute)
	assert.Equal(t, "before-delete", v, "writes must not invalidate the cache")

	rc.InvalidateAll()
	v, _ = rc.GetOrCompute("index:page:1", compute)
	assert.Equal(t, "after-delete", v)
}

func TestGetOrComputeErrorIsNotCached(t *testing.T) {
	rc := New(time.Minute)

	fail := true
	compute := func() (interface{}, error) {
		if fail {
			return nil, assert.AnError
		}
		return "ok", nil
	}

	_, err := rc.GetOrCompute("k", compute)
	assert.Error(t, err)

	fail = false
	v, err := rc.GetOrCompute("k", compute)
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestGetOrComputeConcurrentCallersComputeOnce(t *testing.T) {
	rc := New(time.Minute)

	var calls int32
	compute := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "payload", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := rc.GetOrCompute("k", compute)
			assert.NoError(t, err)
			assert.Equal(t, "payload", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

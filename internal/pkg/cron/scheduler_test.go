package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.AddJob("ok", time.Hour, func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	s.AddJob("fails", time.Hour, func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return errors.New("boom")
	})

	failed := s.RunOnce(context.Background())
	assert.Equal(t, 1, failed)
	assert.Equal(t, int32(2), atomic.LoadInt32(&ran))
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.AddJob("tick", 5*time.Millisecond, func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ran) >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := atomic.LoadInt32(&ran)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&ran))
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	NewScheduler().Stop()
}

func TestRegisterSnapshotSweep(t *testing.T) {
	store := snapshot.NewStore(time.Nanosecond)
	store.Put(sse.ResourceHolidays, "a", 1)
	time.Sleep(time.Millisecond)

	s := NewScheduler()
	RegisterSnapshotSweep(s, store, time.Minute)

	assert.Equal(t, 0, s.RunOnce(context.Background()))
	assert.Equal(t, 0, store.Len())
}

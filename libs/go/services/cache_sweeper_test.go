package services_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/starkport/starkport-api/libs/go/mocks"
	"github.com/starkport/starkport-api/libs/go/services"
)

func TestCacheSweeper_SweepsPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var sweeps atomic.Int64
	rates := mocks.NewMockRateService(ctrl)
	rates.EXPECT().
		RefreshCache(gomock.Any()).
		DoAndReturn(func(now time.Time) int {
			sweeps.Add(1)
			assert.False(t, now.IsZero())
			return 2
		}).
		MinTimes(2)

	sweeper := services.NewCacheSweeper(rates, 10*time.Millisecond)
	sweeper.Start()

	assert.Eventually(t, func() bool {
		return sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	sweeper.Stop()
}

func TestCacheSweeper_StopHaltsSweeping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewMockRateService(ctrl)
	rates.EXPECT().RefreshCache(gomock.Any()).Return(0).AnyTimes()

	sweeper := services.NewCacheSweeper(rates, 5*time.Millisecond)
	sweeper.Start()
	time.Sleep(20 * time.Millisecond)
	sweeper.Stop()

	// After Stop returns the sweep goroutine has exited; no further mock
	// calls can arrive once the controller finishes.
}

func TestCacheSweeper_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewMockRateService(ctrl)
	rates.EXPECT().RefreshCache(gomock.Any()).Return(0).AnyTimes()

	sweeper := services.NewCacheSweeper(rates, time.Hour)
	sweeper.Start()

	sweeper.Stop()
	sweeper.Stop()
}

func TestCacheSweeper_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewMockRateService(ctrl)

	// With the fallback interval no tick fires within the test window, so
	// RefreshCache must never be called.
	sweeper := services.NewCacheSweeper(rates, 0)
	sweeper.Start()
	time.Sleep(20 * time.Millisecond)
	sweeper.Stop()
}

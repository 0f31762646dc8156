//go:build unit

package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	workermock "github.com/Zolbayar-hub/holisticweb/internal/mock/worker"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/worker"
)

func TestReminderWorker_ScansOnEachTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := workermock.NewMockReminderRunner(ctrl)
	scans := make(chan struct{}, 8)

	runner.EXPECT().Scan(gomock.Any()).DoAndReturn(func(context.Context) (notify.ScanReport, error) {
		select {
		case scans <- struct{}{}:
		default:
		}
		return notify.ScanReport{}, errs.ErrDatabaseOperationFailed
	}).MinTimes(2)

	w := worker.NewReminderWorker(runner, 10*time.Millisecond, testutil.DiscardLogger())
	w.Start(context.Background())

	waitFor(t, scans, "first scan")
	waitFor(t, scans, "scan after a failure")
	w.Stop()
}

func TestReminderWorker_WaitsAFullIntervalBeforeFirstScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := workermock.NewMockReminderRunner(ctrl)
	runner.EXPECT().Scan(gomock.Any()).Times(0)

	w := worker.NewReminderWorker(runner, time.Hour, testutil.DiscardLogger())
	w.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	w.Stop()

	assert.True(t, ctrl.Satisfied())
}

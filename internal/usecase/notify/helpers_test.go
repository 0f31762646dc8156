//go:build unit

package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	notifymock "github.com/Zolbayar-hub/holisticweb/internal/mock/notify"
	sharedmock "github.com/Zolbayar-hub/holisticweb/internal/mock/shared"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

var baseTime = time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)

// defaultsOnlyResolver renders the built-in templates.
func defaultsOnlyResolver(ctrl *gomock.Controller) *notify.Resolver {
	lookup := notifymock.NewMockTemplateLookup(ctrl)
	lookup.EXPECT().FindByName(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("template not found", nil, infra.KindNotFound)).
		AnyTimes()
	return notify.NewResolver(lookup, testutil.DiscardLogger())
}

// passthroughUOW runs every Within callback against a mock Tx exposing repo.
func passthroughUOW(ctrl *gomock.Controller, repo *sharedmock.MockNotificationRepository) *sharedmock.MockUnitOfWork {
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Notifications().Return(repo).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).
		AnyTimes()
	return uow
}

// claimedJob is a job as ClaimDue returns it: processing, with the current attempt counted.
func claimedJob(t *testing.T, kind notification.Kind, to string, attempts, maxAttempts int32) *notification.Job {
	t.Helper()
	return notification.ReconstructJob(
		uuid.New(),
		kind,
		"test.topic",
		notification.Message{
			To:       to,
			Template: notification.TemplateBookingConfirmation,
			Tokens:   notification.Tokens{notification.TokenUserName: "Jane"},
		},
		baseTime,
		attempts,
		maxAttempts,
		notification.JobProcessing,
		nil,
		baseTime.Add(-time.Minute),
	)
}

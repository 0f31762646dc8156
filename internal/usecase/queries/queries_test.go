//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	queriesmock "github.com/Zolbayar-hub/holisticweb/internal/mock/queries"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func TestListParams_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   queries.ListParams
		want queries.ListParams
	}{
		{name: "defaults", in: queries.ListParams{}, want: queries.ListParams{Limit: queries.DefaultListLimit}},
		{name: "caps limit", in: queries.ListParams{Limit: 10_000}, want: queries.ListParams{Limit: queries.MaxListLimit}},
		{name: "trims search and clamps offset", in: queries.ListParams{Search: "  jane ", Limit: 10, Offset: -5}, want: queries.ListParams{Search: "jane", Limit: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.in.Normalize()); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("get maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(4)).Return(nil, notFound("booking not found"))

		_, err := queries.NewBookingQueries(store).Get(ctx, 4)
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("list normalizes paging and passes status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), queries.BookingFilter{
			ListParams: queries.ListParams{Search: "jane", Limit: queries.DefaultListLimit},
			Status:     "pending",
		}).Return([]*queries.BookingView{{ID: 1}}, nil)

		got, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{
			ListParams: queries.ListParams{Search: " jane"},
			Status:     "pending",
		})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{Status: "archived"})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("calendar title", func(t *testing.T) {
		assert.Equal(t, "Jane Doe (confirmed)", queries.CalendarTitle("Jane Doe", "confirmed"))
	})
}

func TestSettingQueries_Localized(t *testing.T) {
	ctx := context.Background()
	eng := []*queries.SettingView{
		{Key: "site_name", Value: "Holistic Web", Language: "ENG"},
		{Key: "hero_title", Value: "Find your balance", Language: "ENG"},
	}

	t.Run("default language reads once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSettingReadStore(ctrl)
		store.EXPECT().ListByLanguage(gomock.Any(), "ENG").Return(eng, nil)

		got, err := queries.NewSettingQueries(store).Localized(ctx, locale.English)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"site_name": "Holistic Web", "hero_title": "Find your balance"}, got)
	})

	t.Run("translation overrides, missing keys fall back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSettingReadStore(ctrl)
		store.EXPECT().ListByLanguage(gomock.Any(), "ENG").Return(eng, nil)
		store.EXPECT().ListByLanguage(gomock.Any(), "MON").Return([]*queries.SettingView{
			{Key: "hero_title", Value: "Тэнцвэрээ ол", Language: "MON"},
		}, nil)

		got, err := queries.NewSettingQueries(store).Localized(ctx, locale.Mongolian)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"site_name": "Holistic Web", "hero_title": "Тэнцвэрээ ол"}, got)
	})

	t.Run("invalid language treated as default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSettingReadStore(ctrl)
		store.EXPECT().ListByLanguage(gomock.Any(), "ENG").Return(nil, nil)

		got, err := queries.NewSettingQueries(store).Localized(ctx, locale.Language("XX"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestServiceQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("public list falls back to default language", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockServiceReadStore(ctrl)
		store.EXPECT().ListActive(gomock.Any(), "ENG").Return([]*queries.ServiceView{{ID: 1, Name: "Reiki"}}, nil)

		got, err := queries.NewServiceQueries(store).ListPublic(ctx, locale.Language(""))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("get maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockServiceReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, notFound("service not found"))

		_, err := queries.NewServiceQueries(store).Get(ctx, 2)
		assert.True(t, errs.Is(err, errs.ErrServiceNotFound))
	})
}

func TestTestimonialQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("public list is approved only and capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTestimonialReadStore(ctrl)
		store.EXPECT().ListApproved(gomock.Any(), true, int32(queries.PublicTestimonialLimit)).Return(nil, nil)

		_, err := queries.NewTestimonialQueries(store).ListPublic(ctx, true)
		require.NoError(t, err)
	})

	t.Run("get maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTestimonialReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, notFound("testimonial not found"))

		_, err := queries.NewTestimonialQueries(store).Get(ctx, 3)
		assert.True(t, errs.Is(err, errs.ErrTestimonialNotFound))
	})
}

func TestNotificationQueries_Recent(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		limit      int
		wantStatus string
		wantLimit  int32
	}{
		{name: "defaults", wantLimit: queries.DefaultRecentJobsLimit},
		{name: "known status kept", status: "failed", limit: 10, wantStatus: "failed", wantLimit: 10},
		{name: "unknown status ignored", status: "bogus", limit: 10, wantLimit: 10},
		{name: "limit capped", limit: 5000, wantLimit: queries.MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockNotificationReadStore(ctrl)
			store.EXPECT().ListRecent(gomock.Any(), tt.wantStatus, tt.wantLimit).Return(nil, nil)

			_, err := queries.NewNotificationQueries(store).Recent(context.Background(), tt.status, tt.limit)
			require.NoError(t, err)
		})
	}
}

//go:build e2e

package readstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Zolbayar-hub/holisticweb/internal/infra/readstore"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/dbtest"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/e2e"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
)

type bookingReadStoreSuite struct {
	e2e.SharedSuite
}

func TestBookingReadStoreSuite(t *testing.T) {
	suite.Run(t, new(bookingReadStoreSuite))
}

func (s *bookingReadStoreSuite) TestFindStartingBetween() {
	now := time.Date(2030, 3, 10, 13, 0, 0, 0, time.UTC)
	scanner := notify.NewReminderScanner(nil, nil, nil, nil, clock.NewMockClock(now), 20*time.Minute, 5*time.Minute, testutil.DiscardLogger())
	from, to := scanner.Window(now)

	s.Run("window edges are inclusive", func() {
		t := s.T()
		store := readstore.NewBookingReadStore(sqlc.New(), s.DB)

		dbtest.CreateTestBooking(t, s.DB, "Too Early", nil, now.Add(19*time.Minute), "confirmed")
		atStart := dbtest.CreateTestBooking(t, s.DB, "At Start", nil, now.Add(20*time.Minute), "confirmed")
		atEnd := dbtest.CreateTestBooking(t, s.DB, "At End", nil, now.Add(25*time.Minute), "pending")
		dbtest.CreateTestBooking(t, s.DB, "Too Late", nil, now.Add(26*time.Minute), "confirmed")
		dbtest.CreateTestBooking(t, s.DB, "Cancelled", nil, now.Add(22*time.Minute), "cancelled")

		got, err := store.FindStartingBetween(t.Context(), from, to)

		require.NoError(t, err)
		ids := make([]int64, 0, len(got))
		for _, c := range got {
			ids = append(ids, c.BookingID)
		}
		require.Equal(t, []int64{atStart, atEnd}, ids)
	})

	s.Run("candidate carries party size and service details", func() {
		t := s.T()
		store := readstore.NewBookingReadStore(sqlc.New(), s.DB)

		serviceID := dbtest.CreateTestService(t, s.DB, "Reiki", 5000, "ENG")
		id := dbtest.CreateTestBooking(t, s.DB, "Anna Lee", &serviceID, now.Add(22*time.Minute), "confirmed")
		_, err := s.DB.Exec(t.Context(), "UPDATE bookings SET num_people = 4 WHERE id = $1", id)
		require.NoError(t, err)

		got, err := store.FindStartingBetween(t.Context(), from, to)

		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, 4, got[0].NumPeople)
		require.NotNil(t, got[0].ServicePriceCents)
		require.Equal(t, int64(5000), *got[0].ServicePriceCents)
		require.NotNil(t, got[0].ServiceDescription)
		require.Equal(t, "Reiki description", *got[0].ServiceDescription)
	})
}

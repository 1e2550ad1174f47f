//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tembea/internal/domain/booking"
	"tembea/internal/pkg/clock"
	"tembea/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateSlotBooking(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now))

	item, err := builder.NewListingBuilder().WithPriceCents(250_000).BuildDomain()
	require.NoError(t, err)

	contact, err := booking.NewGuestContact("Wanjiku Kamau", "254712345678")
	require.NoError(t, err)

	t.Run("基本成功ケース", func(t *testing.T) {
		visit := date("2026-09-15")

		b, err := factory.CreateSlotBooking(item, nil, contact, 3, visit, nil, booking.MethodMpesa)
		require.NoError(t, err)

		assert.Equal(t, item.ID(), b.ItemID())
		assert.Equal(t, int32(3), b.SlotsBooked())
		assert.Equal(t, int64(750_000), b.TotalAmount().Cents())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.Equal(t, "online", b.Details().Source)
	})

	t.Run("手動登録は即時確定", func(t *testing.T) {
		b, err := factory.CreateSlotBooking(item, nil, contact, 1, date("2026-09-15"), nil, booking.MethodManualEntry)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, "manual_entry", b.Details().Source)
		assert.Equal(t, "host", b.Details().EnteredBy)
	})

	t.Run("当日予約は許可", func(t *testing.T) {
		_, err := factory.CreateSlotBooking(item, nil, contact, 1, date("2026-08-30"), nil, booking.MethodMpesa)
		assert.NoError(t, err)
	})

	t.Run("過去日付は拒否", func(t *testing.T) {
		_, err := factory.CreateSlotBooking(item, nil, contact, 1, date("2026-08-29"), nil, booking.MethodMpesa)
		assert.ErrorIs(t, err, booking.ErrVisitDateInPast)
	})

	t.Run("スロット数0は拒否", func(t *testing.T) {
		_, err := factory.CreateSlotBooking(item, nil, contact, 0, date("2026-09-15"), nil, booking.MethodMpesa)
		assert.ErrorIs(t, err, booking.ErrInvalidSlots)
	})
}

func TestFactory_CreateFacilityBooking(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now))

	item, err := builder.NewListingBuilder().WithType("hotel").BuildDomain()
	require.NoError(t, err)

	contact, err := booking.NewGuestContact("Wanjiku Kamau", "254712345678")
	require.NoError(t, err)

	mustFacility := func(name string, price int64, start, end string) booking.FacilitySelection {
		fac, err := booking.NewFacilitySelection(name, price, date(start), date(end))
		require.NoError(t, err)
		return fac
	}

	t.Run("施設ごとの日割り合計と最早開始日", func(t *testing.T) {
		facilities := []booking.FacilitySelection{
			mustFacility("Deluxe Room", 100_000, "2026-09-12", "2026-09-14"),
			mustFacility("Standard Room", 60_000, "2026-09-10", "2026-09-11"),
		}

		b, err := factory.CreateFacilityBooking(item, nil, contact, facilities, nil, booking.MethodMpesa)
		require.NoError(t, err)

		assert.Equal(t, int32(2), b.SlotsBooked())
		assert.Equal(t, int64(260_000), b.TotalAmount().Cents())
		assert.Equal(t, date("2026-09-10"), b.VisitDate())
		require.Len(t, b.Details().Facilities, 2)
		assert.Equal(t, "2026-09-12", b.Details().Facilities[0].StartDate)
	})

	t.Run("アクティビティの追記", func(t *testing.T) {
		facilities := []booking.FacilitySelection{
			mustFacility("Camp Site", 30_000, "2026-09-10", "2026-09-11"),
		}
		activities := []booking.ActivitySelection{{Name: "Snorkeling", Headcount: 2}}

		b, err := factory.CreateFacilityBooking(item, nil, contact, facilities, activities, booking.MethodMpesa)
		require.NoError(t, err)

		require.Len(t, b.Details().Activities, 1)
		assert.Equal(t, "Snorkeling", b.Details().Activities[0].Name)
	})

	t.Run("施設未選択は拒否", func(t *testing.T) {
		_, err := factory.CreateFacilityBooking(item, nil, contact, nil, nil, booking.MethodMpesa)
		assert.ErrorIs(t, err, booking.ErrNoFacilities)
	})
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tembea/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFacilitySelection(t *testing.T) {
	t.Run("宿泊日数の計算", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end string
			priceCents int64
			wantDays   int64
			wantTotal  int64
		}{
			{
				name:  "2泊分を日割りで請求",
				start: "2026-06-01", end: "2026-06-03",
				priceCents: 100_000,
				wantDays:   2,
				wantTotal:  200_000,
			},
			{
				name:  "同日チェックイン・チェックアウトは1日分",
				start: "2026-06-01", end: "2026-06-01",
				priceCents: 100_000,
				wantDays:   1,
				wantTotal:  100_000,
			},
			{
				name:  "1泊",
				start: "2026-06-01", end: "2026-06-02",
				priceCents: 150_000,
				wantDays:   1,
				wantTotal:  150_000,
			},
			{
				name:  "1週間",
				start: "2026-06-01", end: "2026-06-08",
				priceCents: 100_000,
				wantDays:   7,
				wantTotal:  700_000,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				fac, err := booking.NewFacilitySelection("Deluxe Tent", tc.priceCents, date(tc.start), date(tc.end))
				require.NoError(t, err)
				assert.Equal(t, tc.wantDays, fac.Days())
				assert.Equal(t, tc.wantTotal, fac.TotalCents())
			})
		}
	})

	t.Run("バリデーション", func(t *testing.T) {
		_, err := booking.NewFacilitySelection("Tent", 1000, date("2026-06-03"), date("2026-06-01"))
		assert.ErrorIs(t, err, booking.ErrInvalidFacilityDate)

		_, err = booking.NewFacilitySelection("  ", 1000, date("2026-06-01"), date("2026-06-02"))
		assert.ErrorIs(t, err, booking.ErrEmptyFacilityName)

		_, err = booking.NewFacilitySelection("Tent", -1, date("2026-06-01"), date("2026-06-02"))
		assert.ErrorIs(t, err, booking.ErrNegativeAmount)
	})
}

func TestGuestContact(t *testing.T) {
	t.Run("電話番号とメールアドレスの判別", func(t *testing.T) {
		byPhone, err := booking.NewGuestContact("Wanjiku Kamau", "254712345678")
		require.NoError(t, err)
		assert.Equal(t, "254712345678", byPhone.Phone())
		assert.Empty(t, byPhone.Email())

		byEmail, err := booking.NewGuestContact("Wanjiku Kamau", "wanjiku@example.com")
		require.NoError(t, err)
		assert.Equal(t, "wanjiku@example.com", byEmail.Email())
		assert.Empty(t, byEmail.Phone())
	})

	t.Run("空の連絡先NG", func(t *testing.T) {
		_, err := booking.NewGuestContact("Wanjiku", "  ")
		assert.ErrorIs(t, err, booking.ErrEmptyContact)

		_, err = booking.NewGuestContact("", "254712345678")
		assert.ErrorIs(t, err, booking.ErrEmptyContact)
	})
}

func TestMoney(t *testing.T) {
	m, err := booking.NewMoney(100)
	require.NoError(t, err)
	assert.Equal(t, int64(300), m.Add(m).Add(m).Cents())

	_, err = booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativeAmount)
}

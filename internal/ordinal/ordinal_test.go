package ordinal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTimeKnownOrdinals(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want int
	}{
		{"day one", time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{"unix epoch", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), 719163},
		{"day after unix epoch", time.Date(1970, time.January, 2, 12, 30, 0, 0, time.UTC), 719164},
		{"y2k", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), 730120},
		{"leap day", time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC), 730179},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromTime(tc.t))
		})
	}
}

func TestFromTimeZeroTimeIsZero(t *testing.T) {
	assert.Equal(t, 0, FromTime(time.Time{}))
}

func TestFromTimeIsComparable(t *testing.T) {
	earlier := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC)
	later := time.Date(2024, time.March, 2, 0, 1, 0, 0, time.UTC)
	assert.Less(t, FromTime(earlier), FromTime(later))
}

func TestRoundTrip(t *testing.T) {
	for _, ord := range []int{1, 366, 719163, 730120, 739000} {
		assert.Equal(t, ord, FromTime(ToTime(ord)))
	}
	assert.True(t, ToTime(0).IsZero())
}

func TestTimeOfDayDoesNotChangeOrdinal(t *testing.T) {
	morning := time.Date(2024, time.July, 4, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.July, 4, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, FromTime(morning), FromTime(evening))
}

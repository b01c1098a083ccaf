package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/models"
)

func bk(id, date, start string) models.Booking {
	return models.Booking{
		ID:           id,
		Date:         date,
		StartTime:    start,
		EndTime:      "23:00",
		CustomerName: "Ana",
		Service:      models.Service{ID: "6", Name: "Депилација Лице", Price: 150},
	}
}

func at(date string) time.Time {
	t, _ := time.Parse(models.DateLayout, date)
	return t
}

func TestDaily(t *testing.T) {
	bookings := []models.Booking{
		bk("1", "2024-06-10", "10:00"),
		bk("2", "2024-06-11", "10:00"),
	}

	// Time of day on the reference must not affect membership.
	ref := at("2024-06-10").Add(23*time.Hour + 59*time.Minute)
	got := Daily(bookings, ref)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestWeekly_MondayToSunday(t *testing.T) {
	// 2024-06-10 is a Monday; the week runs through Sunday 2024-06-16.
	bookings := []models.Booking{
		bk("sun-before", "2024-06-09", "10:00"),
		bk("mon", "2024-06-10", "10:00"),
		bk("sun", "2024-06-16", "10:00"),
		bk("mon-after", "2024-06-17", "10:00"),
	}

	tests := []struct {
		name string
		ref  time.Time
	}{
		{name: "from monday", ref: at("2024-06-10")},
		{name: "from midweek", ref: at("2024-06-13")},
		{name: "from sunday", ref: at("2024-06-16")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weekly(bookings, tt.ref)
			require.Len(t, got, 2)
			assert.Equal(t, "mon", got[0].ID)
			assert.Equal(t, "sun", got[1].ID)
		})
	}
}

func TestMonthly(t *testing.T) {
	bookings := []models.Booking{
		bk("may", "2024-05-31", "10:00"),
		bk("first", "2024-06-01", "10:00"),
		bk("last", "2024-06-30", "10:00"),
		bk("july", "2024-07-01", "10:00"),
	}

	got := Monthly(bookings, at("2024-06-15"))
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "last", got[1].ID)
}

func TestFilters_DoNotMutateInput(t *testing.T) {
	bookings := []models.Booking{
		bk("2", "2024-06-10", "12:00"),
		bk("1", "2024-06-10", "09:00"),
	}

	_ = GroupByDate(bookings)
	_ = Weekly(bookings, at("2024-06-10"))

	assert.Equal(t, "2", bookings[0].ID)
	assert.Equal(t, "1", bookings[1].ID)
}

func TestInMonth(t *testing.T) {
	bookings := []models.Booking{
		bk("a", "2024-06-10", "10:00"),
		bk("b", "2024-07-10", "10:00"),
	}

	got := InMonth(bookings, "2024-06-25")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	assert.Empty(t, InMonth(bookings, ""))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{ref: "2024-06-10", want: "2024-06-10"}, // Monday
		{ref: "2024-06-12", want: "2024-06-10"}, // Wednesday
		{ref: "2024-06-16", want: "2024-06-10"}, // Sunday
	}

	for _, tt := range tests {
		got := WeekStart(at(tt.ref))
		assert.Equal(t, tt.want, got.Format(models.DateLayout))
	}
}

func TestWorkingWeek(t *testing.T) {
	days := WorkingWeek(at("2024-06-13"))
	require.Len(t, days, 6)
	assert.Equal(t, "2024-06-10", days[0].Format(models.DateLayout))
	assert.Equal(t, "2024-06-15", days[5].Format(models.DateLayout))
}

func TestSlotBookings(t *testing.T) {
	bookings := []models.Booking{
		bk("a", "2024-06-10", "09:15"),
		bk("b", "2024-06-10", "10:00"),
		bk("c", "2024-06-11", "09:30"),
	}

	got := SlotBookings(bookings, at("2024-06-10"), 9)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestGroupByDate_SortsDatesAndTimes(t *testing.T) {
	bookings := []models.Booking{
		bk("late", "2024-06-11", "16:00"),
		bk("b", "2024-06-10", "10:30"),
		bk("a", "2024-06-10", "10:05"),
		bk("early", "2024-06-11", "08:00"),
	}

	groups := GroupByDate(bookings)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-06-10", groups[0].Date)
	assert.Equal(t, []string{"a", "b"}, ids(groups[0].Bookings))

	assert.Equal(t, "2024-06-11", groups[1].Date)
	assert.Equal(t, []string{"early", "late"}, ids(groups[1].Bookings))
}

func ids(bookings []models.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

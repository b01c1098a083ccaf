package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBooking() Booking {
	return Booking{
		ID:           "1700000000000",
		Date:         "2024-06-01",
		StartTime:    "09:00",
		EndTime:      "09:30",
		CustomerName: "Jane Doe",
		Service:      Service{ID: "3", Name: "Депилација Раци", Price: 400},
	}
}

func TestBooking_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Booking)
		wantErr bool
	}{
		{
			name:    "valid booking",
			mutate:  func(b *Booking) {},
			wantErr: false,
		},
		{
			name:    "empty customer name",
			mutate:  func(b *Booking) { b.CustomerName = "" },
			wantErr: true,
		},
		{
			name:    "whitespace customer name",
			mutate:  func(b *Booking) { b.CustomerName = "   " },
			wantErr: true,
		},
		{
			name:    "bad date format",
			mutate:  func(b *Booking) { b.Date = "01-06-2024" },
			wantErr: true,
		},
		{
			name:    "bad start time",
			mutate:  func(b *Booking) { b.StartTime = "9am" },
			wantErr: true,
		},
		{
			name:    "bad end time",
			mutate:  func(b *Booking) { b.EndTime = "25:00" },
			wantErr: true,
		},
		{
			name:    "end before start is accepted",
			mutate:  func(b *Booking) { b.StartTime = "18:00"; b.EndTime = "09:00" },
			wantErr: false,
		},
		{
			name:    "missing service",
			mutate:  func(b *Booking) { b.Service = Service{} },
			wantErr: true,
		},
		{
			name:    "negative price",
			mutate:  func(b *Booking) { b.Service.Price = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBooking_StartMinutes(t *testing.T) {
	b := validBooking()
	assert.Equal(t, 9*60, b.StartMinutes())
	assert.Equal(t, 9, b.StartHour())

	b.StartTime = "14:45"
	assert.Equal(t, 14*60+45, b.StartMinutes())
	assert.Equal(t, 14, b.StartHour())

	b.StartTime = "garbage"
	assert.Equal(t, 0, b.StartMinutes())
}

func TestBooking_Day(t *testing.T) {
	b := validBooking()
	day, err := b.Day()
	assert.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, 6, int(day.Month()))
	assert.Equal(t, 1, day.Day())
}

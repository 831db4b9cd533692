package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testWindow() SlotWindow {
	return SlotWindow{OpenHour: 9, CloseHour: 17, Step: 30 * time.Minute}
}

func TestSlotWindow_Grid(t *testing.T) {
	grid := testWindow().Grid()

	require.Len(t, grid, 17)
	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "09:30", grid[1])
	assert.Equal(t, "12:00", grid[6])
	assert.Equal(t, "16:30", grid[15])
	assert.Equal(t, "17:00", grid[16])
}

func TestFilterSlots_FutureDayAllOpen(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2030, 6, 9, 12, 0, 0, 0, time.UTC)

	got := filterSlots(testWindow().Grid(), date, now, nil)

	assert.Len(t, got, 17)
}

func TestFilterSlots_DropsPastAndBooked(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	// mid-slot: 10:00 already started, 10:30 still ahead
	now := time.Date(2030, 6, 10, 10, 15, 0, 0, time.UTC)

	got := filterSlots(testWindow().Grid(), date, now, []string{"11:00", "14:30"})

	require.NotEmpty(t, got)
	assert.Equal(t, "10:30", got[0])
	assert.NotContains(t, got, "09:00")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "11:00")
	assert.NotContains(t, got, "14:30")
	assert.Contains(t, got, "17:00")
	assert.Len(t, got, 12)
}

func TestFilterSlots_PastDayEmpty(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2030, 6, 11, 0, 0, 0, 0, time.UTC)

	got := filterSlots(testWindow().Grid(), date, now, nil)

	assert.Empty(t, got)
}

func TestFilterSlots_ExactSlotStartIsPast(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2030, 6, 10, 13, 0, 0, 0, time.UTC)

	got := filterSlots(testWindow().Grid(), date, now, nil)

	// a slot starting exactly now is no longer bookable
	assert.NotContains(t, got, "13:00")
	assert.Contains(t, got, "13:30")
}

func TestFilterSlots_OrderPreserved(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2030, 6, 9, 0, 0, 0, 0, time.UTC)

	got := filterSlots(testWindow().Grid(), date, now, []string{"09:30"})

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestAvailabilityService_AvailableSlots(t *testing.T) {
	apptRepo := mocks.NewMockAppointmentRepo(t)
	svc := NewAvailabilityService(apptRepo, testWindow())

	date := time.Now().AddDate(0, 0, 7)
	apptRepo.EXPECT().BookedSlots(mock.Anything, date).Return([]string{"10:00"}, nil)

	got, err := svc.AvailableSlots(context.Background(), date)

	require.NoError(t, err)
	assert.Len(t, got, 16)
	assert.NotContains(t, got, "10:00")
}

func TestAvailabilityService_AvailableSlots_RepoError(t *testing.T) {
	apptRepo := mocks.NewMockAppointmentRepo(t)
	svc := NewAvailabilityService(apptRepo, testWindow())

	date := time.Now().AddDate(0, 0, 7)
	apptRepo.EXPECT().BookedSlots(mock.Anything, date).Return(nil, errors.New("db down"))

	got, err := svc.AvailableSlots(context.Background(), date)

	require.Error(t, err)
	assert.Nil(t, got)
}

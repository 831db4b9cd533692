package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memAppointmentRepo is an in-memory ports.AppointmentRepo with the same
// conflict semantics as the SQL implementation, for flow tests that need
// state to carry across calls.
type memAppointmentRepo struct {
	mu           sync.Mutex
	byID         map[string]*domain.Appointment
	serviceNames map[string]string
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{
		byID:         make(map[string]*domain.Appointment),
		serviceNames: make(map[string]string),
	}
}

func (m *memAppointmentRepo) slotHeld(date time.Time, slot, excludeID string) bool {
	for _, a := range m.byID {
		if a.ID == excludeID || a.Status == domain.AppointmentStatusCanceled {
			continue
		}
		if a.Date.Equal(date) && a.Slot == slot {
			return true
		}
	}
	return false
}

func (m *memAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slotHeld(a.Date, a.Slot, "") {
		return domain.ErrSlotTaken
	}
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAppointmentRepo) UpdateSlot(_ context.Context, id string, date time.Time, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	if a.Status != domain.AppointmentStatusScheduled {
		return domain.ErrNotScheduled
	}
	if m.slotHeld(date, slot, id) {
		return domain.ErrSlotTaken
	}
	a.Date = date
	a.Slot = slot
	return nil
}

func (m *memAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	if a.Status != domain.AppointmentStatusScheduled {
		if a.Status == status {
			return nil
		}
		return domain.ErrNotScheduled
	}
	a.Status = status
	return nil
}

func (m *memAppointmentRepo) ListByUser(_ context.Context, userID string) ([]*domain.UserAppointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res []*domain.UserAppointment
	for _, a := range m.byID {
		if a.UserID != userID {
			continue
		}
		res = append(res, &domain.UserAppointment{
			Appointment: *a,
			ServiceName: m.serviceNames[a.ServiceID],
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Date.Equal(res[j].Date) {
			return res[i].Date.After(res[j].Date)
		}
		return res[i].Slot > res[j].Slot
	})
	return res, nil
}

func (m *memAppointmentRepo) BookedSlots(_ context.Context, date time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res []string
	for _, a := range m.byID {
		if a.Status != domain.AppointmentStatusCanceled && a.Date.Equal(date) {
			res = append(res, a.Slot)
		}
	}
	sort.Strings(res)
	return res, nil
}

func (m *memAppointmentRepo) CompletePast(_ context.Context) ([]*domain.Appointment, error) {
	return nil, nil
}

type nopNotifier struct{}

func (nopNotifier) NotifyAppointmentBooked(context.Context, *domain.User, *domain.Service, *domain.Appointment) {
}
func (nopNotifier) NotifyAppointmentCanceled(context.Context, *domain.User, *domain.Appointment) {}
func (nopNotifier) NotifyAppointmentRescheduled(context.Context, *domain.User, *domain.Appointment) {
}

// Two clients competing for one chair: a booked slot disappears from the
// availability output and rejects a second booking, canceling brings it back,
// and the freed slot can be booked again right away.
func TestBookingFlow_CancelFreesSlot(t *testing.T) {
	repo := newMemAppointmentRepo()
	repo.serviceNames["s-haircut"] = "Haircut"
	repo.serviceNames["s-shave"] = "Shave"

	alice := &domain.User{ID: "u-alice", Name: "Alice"}
	bob := &domain.User{ID: "u-bob", Name: "Bob"}
	haircut := &domain.Service{ID: "s-haircut", Name: "Haircut", PriceCents: 3000, DurationMin: 30}
	shave := &domain.Service{ID: "s-shave", Name: "Shave", PriceCents: 2000, DurationMin: 30}

	userRepo := mocks.NewMockUserRepo(t)
	serviceRepo := mocks.NewMockServiceRepo(t)
	userRepo.EXPECT().GetByID(mock.Anything, "u-alice").Return(alice, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u-bob").Return(bob, nil)
	serviceRepo.EXPECT().GetByID(mock.Anything, "s-haircut").Return(haircut, nil)
	serviceRepo.EXPECT().GetByID(mock.Anything, "s-shave").Return(shave, nil)

	appointments := NewAppointmentService(repo, serviceRepo, userRepo, nopNotifier{}, newTestLogger(t))
	availability := NewAvailabilityService(repo, testWindow())

	ctx := context.Background()
	date := futureDate()

	first, err := appointments.Book(ctx, domain.BookAppointmentInput{
		UserID:    "u-alice",
		ServiceID: "s-haircut",
		Date:      date,
		Slot:      "10:00",
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)

	slots, err := availability.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")

	_, err = appointments.Book(ctx, domain.BookAppointmentInput{
		UserID:    "u-bob",
		ServiceID: "s-shave",
		Date:      date,
		Slot:      "10:00",
	})
	require.ErrorIs(t, err, domain.ErrSlotTaken)

	canceled, err := appointments.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCanceled, canceled.Status)

	slots, err = availability.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")

	second, err := appointments.Book(ctx, domain.BookAppointmentInput{
		UserID:    "u-bob",
		ServiceID: "s-shave",
		Date:      date,
		Slot:      "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusScheduled, second.Status)
	assert.NotEqual(t, first.ID, second.ID)

	aliceHistory, err := appointments.ListByUser(ctx, "u-alice")
	require.NoError(t, err)
	require.Len(t, aliceHistory, 1)
	assert.Equal(t, "Haircut", aliceHistory[0].ServiceName)
	assert.Equal(t, domain.AppointmentStatusCanceled, aliceHistory[0].Status)

	bobHistory, err := appointments.ListByUser(ctx, "u-bob")
	require.NoError(t, err)
	require.Len(t, bobHistory, 1)
	assert.Equal(t, "Shave", bobHistory[0].ServiceName)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

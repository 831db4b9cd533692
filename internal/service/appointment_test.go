package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type appointmentFixture struct {
	apptRepo    *mocks.MockAppointmentRepo
	serviceRepo *mocks.MockServiceRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
	svc         *AppointmentService
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()
	f := &appointmentFixture{
		apptRepo:    mocks.NewMockAppointmentRepo(t),
		serviceRepo: mocks.NewMockServiceRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewAppointmentService(f.apptRepo, f.serviceRepo, f.userRepo, f.notifier, newTestLogger(t))
	return f
}

func futureDate() time.Time {
	return time.Now().AddDate(0, 0, 7)
}

func TestAppointmentService_Book(t *testing.T) {
	f := newAppointmentFixture(t)

	user := &domain.User{ID: "u1", Name: "Alice"}
	haircut := &domain.Service{ID: "s1", Name: "Haircut", PriceCents: 3000, DurationMin: 30}
	date := futureDate()

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(haircut, nil)
	f.apptRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyAppointmentBooked(mock.Anything, user, haircut, mock.Anything).Return()

	a, err := f.svc.Book(context.Background(), domain.BookAppointmentInput{
		UserID:    "u1",
		ServiceID: "s1",
		Date:      date,
		Slot:      "10:00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.AppointmentStatusScheduled, a.Status)
	assert.Equal(t, "u1", a.UserID)
	assert.Equal(t, "s1", a.ServiceID)
	assert.Equal(t, "10:00", a.Slot)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAppointmentService_Book_IncompleteInput(t *testing.T) {
	date := futureDate()

	cases := []struct {
		name  string
		input domain.BookAppointmentInput
	}{
		{"no user", domain.BookAppointmentInput{ServiceID: "s1", Date: date, Slot: "10:00"}},
		{"no service", domain.BookAppointmentInput{UserID: "u1", Date: date, Slot: "10:00"}},
		{"no date", domain.BookAppointmentInput{UserID: "u1", ServiceID: "s1", Slot: "10:00"}},
		{"no slot", domain.BookAppointmentInput{UserID: "u1", ServiceID: "s1", Date: date}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAppointmentFixture(t)

			a, err := f.svc.Book(context.Background(), tc.input)

			require.ErrorIs(t, err, domain.ErrIncompleteInput)
			assert.Nil(t, a)
		})
	}
}

func TestAppointmentService_Book_PastSlot(t *testing.T) {
	f := newAppointmentFixture(t)

	a, err := f.svc.Book(context.Background(), domain.BookAppointmentInput{
		UserID:    "u1",
		ServiceID: "s1",
		Date:      time.Now().AddDate(0, 0, -1),
		Slot:      "10:00",
	})

	require.ErrorIs(t, err, domain.ErrPastSlot)
	assert.Nil(t, a)
}

func TestAppointmentService_Book_BadSlotLabel(t *testing.T) {
	f := newAppointmentFixture(t)

	a, err := f.svc.Book(context.Background(), domain.BookAppointmentInput{
		UserID:    "u1",
		ServiceID: "s1",
		Date:      futureDate(),
		Slot:      "ten thirty",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, a)
}

func TestAppointmentService_Book_UserNotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	f.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	a, err := f.svc.Book(context.Background(), domain.BookAppointmentInput{
		UserID:    "ghost",
		ServiceID: "s1",
		Date:      futureDate(),
		Slot:      "10:00",
	})

	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, a)
}

func TestAppointmentService_Book_ServiceNotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	user := &domain.User{ID: "u1"}
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrServiceNotFound)

	a, err := f.svc.Book(context.Background(), domain.BookAppointmentInput{
		UserID:    "u1",
		ServiceID: "ghost",
		Date:      futureDate(),
		Slot:      "10:00",
	})

	require.ErrorIs(t, err, domain.ErrServiceNotFound)
	assert.Nil(t, a)
}

func TestAppointmentService_Book_SlotTaken(t *testing.T) {
	f := newAppointmentFixture(t)

	user := &domain.User{ID: "u1"}
	shave := &domain.Service{ID: "s2", Name: "Shave"}
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s2").Return(shave, nil)
	f.apptRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	a, err := f.svc.Book(context.Background(), domain.BookAppointmentInput{
		UserID:    "u1",
		ServiceID: "s2",
		Date:      futureDate(),
		Slot:      "10:00",
	})

	require.ErrorIs(t, err, domain.ErrSlotTaken)
	assert.Nil(t, a)
}

func TestAppointmentService_Cancel(t *testing.T) {
	f := newAppointmentFixture(t)

	stored := &domain.Appointment{
		ID:     "a1",
		UserID: "u1",
		Status: domain.AppointmentStatusScheduled,
	}
	user := &domain.User{ID: "u1"}

	f.apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(stored, nil)
	f.apptRepo.EXPECT().UpdateStatus(mock.Anything, "a1", domain.AppointmentStatusCanceled).Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyAppointmentCanceled(mock.Anything, user, mock.Anything).Return()

	a, err := f.svc.Cancel(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCanceled, a.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestAppointmentService_Cancel_AlreadyCanceledIsNoop(t *testing.T) {
	f := newAppointmentFixture(t)

	stored := &domain.Appointment{
		ID:     "a1",
		UserID: "u1",
		Status: domain.AppointmentStatusCanceled,
	}
	f.apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(stored, nil)

	a, err := f.svc.Cancel(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCanceled, a.Status)
	f.apptRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentService_Cancel_CompletedRejected(t *testing.T) {
	f := newAppointmentFixture(t)

	stored := &domain.Appointment{
		ID:     "a1",
		Status: domain.AppointmentStatusCompleted,
	}
	f.apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(stored, nil)

	a, err := f.svc.Cancel(context.Background(), "a1")

	require.ErrorIs(t, err, domain.ErrNotScheduled)
	assert.Nil(t, a)
}

func TestAppointmentService_Cancel_NotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	f.apptRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrAppointmentNotFound)

	a, err := f.svc.Cancel(context.Background(), "ghost")

	require.ErrorIs(t, err, domain.ErrAppointmentNotFound)
	assert.Nil(t, a)
}

func TestAppointmentService_Reschedule(t *testing.T) {
	f := newAppointmentFixture(t)

	stored := &domain.Appointment{
		ID:     "a1",
		UserID: "u1",
		Date:   futureDate(),
		Slot:   "10:00",
		Status: domain.AppointmentStatusScheduled,
	}
	user := &domain.User{ID: "u1"}
	newDate := futureDate().AddDate(0, 0, 1)

	f.apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(stored, nil)
	f.apptRepo.EXPECT().UpdateSlot(mock.Anything, "a1", newDate, "14:30").Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyAppointmentRescheduled(mock.Anything, user, mock.Anything).Return()

	a, err := f.svc.Reschedule(context.Background(), "a1", newDate, "14:30")

	require.NoError(t, err)
	assert.Equal(t, newDate, a.Date)
	assert.Equal(t, "14:30", a.Slot)
	assert.Equal(t, domain.AppointmentStatusScheduled, a.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestAppointmentService_Reschedule_PastSlot(t *testing.T) {
	f := newAppointmentFixture(t)

	a, err := f.svc.Reschedule(context.Background(), "a1", time.Now().AddDate(0, 0, -1), "10:00")

	require.ErrorIs(t, err, domain.ErrPastSlot)
	assert.Nil(t, a)
}

func TestAppointmentService_Reschedule_NotScheduled(t *testing.T) {
	f := newAppointmentFixture(t)

	stored := &domain.Appointment{
		ID:     "a1",
		Status: domain.AppointmentStatusCanceled,
	}
	f.apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(stored, nil)

	a, err := f.svc.Reschedule(context.Background(), "a1", futureDate(), "10:00")

	require.ErrorIs(t, err, domain.ErrNotScheduled)
	assert.Nil(t, a)
}

func TestAppointmentService_Reschedule_SlotTaken(t *testing.T) {
	f := newAppointmentFixture(t)

	stored := &domain.Appointment{
		ID:     "a1",
		UserID: "u1",
		Status: domain.AppointmentStatusScheduled,
	}
	date := futureDate()

	f.apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(stored, nil)
	f.apptRepo.EXPECT().UpdateSlot(mock.Anything, "a1", date, "10:00").Return(domain.ErrSlotTaken)

	a, err := f.svc.Reschedule(context.Background(), "a1", date, "10:00")

	require.ErrorIs(t, err, domain.ErrSlotTaken)
	assert.Nil(t, a)
}

func TestAppointmentService_ListByUser(t *testing.T) {
	f := newAppointmentFixture(t)

	history := []*domain.UserAppointment{
		{Appointment: domain.Appointment{ID: "a2", Slot: "14:00"}, ServiceName: "Shave"},
		{Appointment: domain.Appointment{ID: "a1", Slot: "10:00"}, ServiceName: "Haircut"},
	}
	f.apptRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(history, nil)

	got, err := f.svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Shave", got[0].ServiceName)
	assert.Equal(t, "Haircut", got[1].ServiceName)
}

func TestAppointmentService_CompletePast(t *testing.T) {
	f := newAppointmentFixture(t)

	done := []*domain.Appointment{
		{ID: "a1", Status: domain.AppointmentStatusCompleted},
	}
	f.apptRepo.EXPECT().CompletePast(mock.Anything).Return(done, nil)

	got, err := f.svc.CompletePast(context.Background())

	require.NoError(t, err)
	assert.Equal(t, done, got)
}

func TestAppointmentService_CompletePast_Error(t *testing.T) {
	f := newAppointmentFixture(t)

	f.apptRepo.EXPECT().CompletePast(mock.Anything).Return(nil, errors.New("db down"))

	got, err := f.svc.CompletePast(context.Background())

	require.Error(t, err)
	assert.Nil(t, got)
}

package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/dbtest"
	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
	"github.com/BruksfildServices01/barbercraft/internal/infra/repository"
	"github.com/BruksfildServices01/barbercraft/internal/models"
	uc "github.com/BruksfildServices01/barbercraft/internal/usecase/appointment"
)

type fixture struct {
	db     *gorm.DB
	repo   *repository.AppointmentGormRepository
	audit  *audit.Dispatcher
	alice  models.User
	bob    models.User
	cut    models.Service
	marcus models.Staff
	david  models.Staff
	create *uc.CreateAppointment
	update *uc.UpdateAppointment
	remove *uc.DeleteAppointment
	get    *uc.GetAppointment
	list   *uc.ListAppointments
	slots  *uc.GetAvailability
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := dbtest.Open(t)

	f := &fixture{
		db:     gdb,
		repo:   repository.NewAppointmentGormRepository(gdb),
		alice:  models.User{Username: "alice", PasswordHash: "x", Role: models.RoleUser, Name: "Alice"},
		bob:    models.User{Username: "bob", PasswordHash: "x", Role: models.RoleUser},
		cut:    models.Service{Name: "Signature Cut", Price: 65, Duration: 45},
		marcus: models.Staff{Name: "Marcus Johnson"},
		david:  models.Staff{Name: "David Chen"},
	}
	require.NoError(t, gdb.Create(&f.alice).Error)
	require.NoError(t, gdb.Create(&f.bob).Error)
	require.NoError(t, gdb.Create(&f.cut).Error)
	require.NoError(t, gdb.Create(&f.marcus).Error)
	require.NoError(t, gdb.Create(&f.david).Error)

	f.audit = audit.NewDispatcher(audit.New(gdb), zap.NewNop())
	t.Cleanup(f.audit.Close)

	f.create = uc.NewCreateAppointment(f.repo, f.audit)
	f.update = uc.NewUpdateAppointment(f.repo, f.audit)
	f.remove = uc.NewDeleteAppointment(f.repo, f.audit)
	f.get = uc.NewGetAppointment(f.repo)
	f.list = uc.NewListAppointments(f.repo)
	f.slots = uc.NewGetAvailability(f.repo)
	return f
}

func (f *fixture) book(t *testing.T, user models.User, staff *uint, date, clock string) uint {
	t.Helper()
	v, err := f.create.Execute(context.Background(), uc.CreateAppointmentInput{
		UserID: user.ID, ServiceID: f.cut.ID, StaffID: staff, Date: date, Time: clock,
	})
	require.NoError(t, err)
	return v.ID
}

func scopeOf(u models.User) access.Scope {
	return access.For(u.ID, u.Role)
}

func ptr[T any](v T) *T { return &v }

func TestCreate_SnapshotsPriceAndEnriches(t *testing.T) {
	f := newFixture(t)

	v, err := f.create.Execute(context.Background(), uc.CreateAppointmentInput{
		UserID: f.alice.ID, ServiceID: f.cut.ID, StaffID: &f.marcus.ID,
		Date: "2025-03-01", Time: "10:00", Notes: "fade",
	})
	require.NoError(t, err)

	assert.Equal(t, 65.0, v.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), v.Status)
	require.NotNil(t, v.ServiceName)
	assert.Equal(t, "Signature Cut", *v.ServiceName)
	require.NotNil(t, v.StaffName)
	assert.Equal(t, "Marcus Johnson", *v.StaffName)
	require.NotNil(t, v.UserName)
	assert.Equal(t, "Alice", *v.UserName)

	// Later price edits do not touch the snapshot.
	require.NoError(t, f.db.Model(&models.Service{}).Where("id = ?", f.cut.ID).Update("price", 80).Error)
	got, err := f.get.Execute(context.Background(), v.ID, scopeOf(f.alice))
	require.NoError(t, err)
	assert.Equal(t, 65.0, got.TotalPrice)
	assert.Equal(t, 80.0, *got.ServicePrice)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   uc.CreateAppointmentInput
		want error
	}{
		{"unknown service", uc.CreateAppointmentInput{UserID: f.alice.ID, ServiceID: 999, Date: "2025-03-01", Time: "10:00"}, domain.ErrInvalidService},
		{"unknown staff", uc.CreateAppointmentInput{UserID: f.alice.ID, ServiceID: f.cut.ID, StaffID: ptr(uint(999)), Date: "2025-03-01", Time: "10:00"}, domain.ErrInvalidStaff},
		{"bad date", uc.CreateAppointmentInput{UserID: f.alice.ID, ServiceID: f.cut.ID, Date: "01/03/2025", Time: "10:00"}, domain.ErrInvalidDateTime},
		{"bad time", uc.CreateAppointmentInput{UserID: f.alice.ID, ServiceID: f.cut.ID, Date: "2025-03-01", Time: "9:00"}, domain.ErrInvalidDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := f.create.Execute(ctx, uc.CreateAppointmentInput{UserID: f.alice.ID})
	assert.Error(t, err)
}

func TestCreate_SlotConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := "2025-03-01"

	f.book(t, f.alice, &f.marcus.ID, date, "10:00")

	t.Run("same staff rejected", func(t *testing.T) {
		_, err := f.create.Execute(ctx, uc.CreateAppointmentInput{UserID: f.bob.ID, ServiceID: f.cut.ID, StaffID: &f.marcus.ID, Date: date, Time: "10:00"})
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	})

	t.Run("other staff allowed", func(t *testing.T) {
		f.book(t, f.bob, &f.david.ID, date, "10:00")
	})

	t.Run("unassigned blocked by any booking", func(t *testing.T) {
		_, err := f.create.Execute(ctx, uc.CreateAppointmentInput{UserID: f.bob.ID, ServiceID: f.cut.ID, Date: date, Time: "10:00"})
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	})

	t.Run("unassigned booking blocks every staff", func(t *testing.T) {
		f.book(t, f.alice, nil, date, "11:00")
		_, err := f.create.Execute(ctx, uc.CreateAppointmentInput{UserID: f.bob.ID, ServiceID: f.cut.ID, StaffID: &f.david.ID, Date: date, Time: "11:00"})
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	})

	var live int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Where("date = ?", date).Count(&live).Error)
	assert.Equal(t, int64(3), live)
}

func TestCancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.book(t, f.alice, &f.marcus.ID, "2025-03-01", "10:00")

	v, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: id, Scope: scopeOf(f.alice), Status: ptr("cancelled")})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", v.Status)
	assert.NotNil(t, v.CancelledAt)

	f.book(t, f.bob, &f.marcus.ID, "2025-03-01", "10:00")

	// Reviving the cancelled one now collides.
	_, err = f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: id, Scope: scopeOf(f.alice), Status: ptr("confirmed")})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mine := f.book(t, f.alice, &f.marcus.ID, "2025-03-01", "10:00")
	f.book(t, f.bob, &f.marcus.ID, "2025-03-01", "11:00")

	t.Run("no fields", func(t *testing.T) {
		_, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: mine, Scope: scopeOf(f.alice)})
		assert.ErrorIs(t, err, domain.ErrNothingToUpdate)
	})

	t.Run("move onto taken slot", func(t *testing.T) {
		_, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: mine, Scope: scopeOf(f.alice), Time: ptr("11:00")})
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	})

	t.Run("notes only keeps slot", func(t *testing.T) {
		v, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: mine, Scope: scopeOf(f.alice), Notes: ptr("window seat")})
		require.NoError(t, err)
		assert.Equal(t, "window seat", v.Notes)
		assert.Equal(t, "10:00", v.Time)
	})

	t.Run("move to free slot and unassign", func(t *testing.T) {
		v, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: mine, Scope: scopeOf(f.alice), Time: ptr("12:30"), StaffSet: true})
		require.NoError(t, err)
		assert.Equal(t, "12:30", v.Time)
		assert.Nil(t, v.StaffID)
		assert.Nil(t, v.StaffName)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: mine, Scope: scopeOf(f.alice), Status: ptr("scheduled")})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("other user", func(t *testing.T) {
		_, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: mine, Scope: scopeOf(f.bob), Notes: ptr("mine now")})
		assert.ErrorIs(t, err, domain.ErrNotFoundOrScope)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		v, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: mine, Scope: access.For(999, models.RoleAdmin), Status: ptr("completed")})
		require.NoError(t, err)
		assert.Equal(t, "completed", v.Status)
		assert.NotNil(t, v.CompletedAt)
	})
}

func TestGetListDelete_Scoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.book(t, f.alice, nil, "2025-03-01", "10:00")
	f.book(t, f.alice, nil, "2025-03-02", "09:00")
	b1 := f.book(t, f.bob, nil, "2025-03-01", "15:00")

	mine, err := f.list.Execute(ctx, scopeOf(f.alice))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2025-03-02", mine[0].Date)

	all, err := f.list.Execute(ctx, access.For(0, models.RoleAdmin))
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.get.Execute(ctx, b1, scopeOf(f.alice))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, f.remove.Execute(ctx, b1, scopeOf(f.alice)), domain.ErrNotFoundOrScope)
	require.NoError(t, f.remove.Execute(ctx, a1, scopeOf(f.alice)))
	assert.ErrorIs(t, f.remove.Execute(ctx, a1, scopeOf(f.alice)), domain.ErrNotFoundOrScope)
}

func TestAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := "2025-03-01"

	f.book(t, f.alice, &f.marcus.ID, date, "10:00")
	f.book(t, f.alice, &f.david.ID, date, "11:00")
	f.book(t, f.bob, nil, date, "14:00")
	cancelled := f.book(t, f.bob, &f.marcus.ID, date, "16:00")
	_, err := f.update.Execute(ctx, uc.UpdateAppointmentInput{ID: cancelled, Scope: scopeOf(f.bob), Status: ptr("cancelled")})
	require.NoError(t, err)

	all, err := f.slots.Execute(ctx, domain.AvailabilityInput{Date: date, ServiceID: f.cut.ID})
	require.NoError(t, err)
	assert.Len(t, all, 17)
	assert.Contains(t, all, "16:00")

	forMarcus, err := f.slots.Execute(ctx, domain.AvailabilityInput{Date: date, ServiceID: f.cut.ID, StaffID: &f.marcus.ID})
	require.NoError(t, err)
	assert.Len(t, forMarcus, 18)
	assert.NotContains(t, forMarcus, "10:00")
	assert.NotContains(t, forMarcus, "14:00")
	assert.Contains(t, forMarcus, "11:00")

	_, err = f.slots.Execute(ctx, domain.AvailabilityInput{Date: date})
	assert.Error(t, err)
	_, err = f.slots.Execute(ctx, domain.AvailabilityInput{Date: date, ServiceID: 999})
	require.Error(t, err)
	assert.Equal(t, "Service not found", err.Error())
	_, err = f.slots.Execute(ctx, domain.AvailabilityInput{Date: "tomorrow", ServiceID: f.cut.ID})
	assert.Error(t, err)
}

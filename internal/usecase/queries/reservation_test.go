package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/infra"
	"mall-space-booking/internal/infra/memstore"
	"mall-space-booking/internal/pkg/errs"
	"mall-space-booking/internal/pkg/ptr"
	"mall-space-booking/internal/testutil/builder"
	sharedmock "mall-space-booking/internal/testutil/mock/shared"
	"mall-space-booking/internal/usecase/queries"
	"mall-space-booking/internal/usecase/shared"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := pricing.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seed(t *testing.T, rs ...*reservation.Reservation) *memstore.ReservationStore {
	t.Helper()
	store := memstore.NewReservationStore()
	for _, r := range rs {
		require.NoError(t, store.Create(context.Background(), r))
	}
	return store
}

func TestReservationQueries_Conflicts(t *testing.T) {
	ctx := context.Background()
	booked := builder.NewReservationBuilder().Dates("2024-06-20", "2024-06-22").BuildDomain()
	cancelled := builder.NewReservationBuilder().
		Dates("2024-06-20", "2024-06-22").
		With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCancelled }).
		BuildDomain()
	other := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) { b.SpaceID = "S-202" }).
		BuildDomain()
	q := queries.NewReservationQueries(seed(t, booked, cancelled, other))

	t.Run("overlapping window reports the active booking", func(t *testing.T) {
		got, err := q.Conflicts(ctx, queries.ConflictsInput{
			SpaceID:   "S-101",
			StartDate: mustDate(t, "2024-06-21"),
			EndDate:   mustDate(t, "2024-06-23"),
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, booked.ID(), got[0].ID())
	})

	t.Run("adjacent window is free", func(t *testing.T) {
		got, err := q.Conflicts(ctx, queries.ConflictsInput{
			SpaceID:   "S-101",
			StartDate: mustDate(t, "2024-06-22"),
			EndDate:   mustDate(t, "2024-06-24"),
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := q.Conflicts(ctx, queries.ConflictsInput{StartDate: mustDate(t, "2024-06-21"), EndDate: mustDate(t, "2024-06-21")})
		assert.ErrorIs(t, err, reservation.ErrEmptySpaceID)

		_, err = q.Conflicts(ctx, queries.ConflictsInput{
			SpaceID:   "S-101",
			StartDate: mustDate(t, "2024-06-21"),
			EndDate:   mustDate(t, "2024-06-20"),
		})
		assert.ErrorIs(t, err, reservation.ErrInvalidInterval)
	})

	t.Run("does not mutate the ledger", func(t *testing.T) {
		store := seed(t, booked)
		qq := queries.NewReservationQueries(store)
		for i := 0; i < 3; i++ {
			_, err := qq.Conflicts(ctx, queries.ConflictsInput{
				SpaceID:   "S-101",
				StartDate: mustDate(t, "2024-06-20"),
				EndDate:   mustDate(t, "2024-06-21"),
			})
			require.NoError(t, err)
		}
		all, err := store.List(ctx, shared.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestReservationQueries_Get(t *testing.T) {
	ctx := context.Background()
	r := builder.NewReservationBuilder().BuildDomain()
	q := queries.NewReservationQueries(seed(t, r))

	got, err := q.Get(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, r.ID(), got.ID())

	_, err = q.Get(ctx, builder.NewReservationBuilder().BuildDomain().ID())
	assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
}

func TestReservationQueries_Get_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := sharedmock.NewMockReservationReader(ctrl)
	reader.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		Return(nil, infra.NewRepoErr(infra.KindDBFailure, "timeout"))

	_, err := queries.NewReservationQueries(reader).Get(context.Background(), builder.NewReservationBuilder().ID)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func TestReservationQueries_List(t *testing.T) {
	ctx := context.Background()
	june := builder.NewReservationBuilder().Dates("2024-06-20", "2024-06-22").BuildDomain()
	july := builder.NewReservationBuilder().
		Dates("2024-07-10", "2024-07-12").
		With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusConfirmed }).
		BuildDomain()
	q := queries.NewReservationQueries(seed(t, july, june))

	t.Run("by status", func(t *testing.T) {
		got, err := q.List(ctx, shared.ListFilter{Status: ptr.To(reservation.StatusConfirmed)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, july.ID(), got[0].ID())
	})

	t.Run("by date window", func(t *testing.T) {
		from, to := mustDate(t, "2024-06-01"), mustDate(t, "2024-06-30")
		got, err := q.List(ctx, shared.ListFilter{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, june.ID(), got[0].ID())
	})

	t.Run("inverted window", func(t *testing.T) {
		from, to := mustDate(t, "2024-06-30"), mustDate(t, "2024-06-01")
		_, err := q.List(ctx, shared.ListFilter{From: &from, To: &to})
		assert.ErrorIs(t, err, reservation.ErrInvalidInterval)
	})
}

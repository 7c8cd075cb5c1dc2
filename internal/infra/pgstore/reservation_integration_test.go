//go:build integration

package pgstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/infra"
	"mall-space-booking/internal/infra/pgstore"
	"mall-space-booking/internal/pkg/ptr"
	"mall-space-booking/internal/testutil/builder"
	"mall-space-booking/internal/testutil/pgtest"
	"mall-space-booking/internal/usecase/shared"
)

type ReservationStoreSuite struct {
	suite.Suite
	store *pgstore.ReservationStore
	ctx   context.Context
}

func TestReservationStoreSuite(t *testing.T) {
	suite.Run(t, new(ReservationStoreSuite))
}

func (s *ReservationStoreSuite) SetupTest() {
	pool, _ := pgtest.NewPool(s.T())
	s.ctx = context.Background()
	s.Require().NoError(pgstore.Migrate(s.ctx, pool))
	// Second run is a no-op.
	s.Require().NoError(pgstore.Migrate(s.ctx, pool))
	s.store = pgstore.NewReservationStore(pool)
}

func (s *ReservationStoreSuite) TestCreateAndFind_RoundTrip() {
	tenant := "tenant-7"
	r := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) {
			b.TenantID = &tenant
			b.Note = "corner unit"
			b.Discount = "12.5"
		}).
		Times("09:00", "17:30").
		BuildDomain()

	s.Require().NoError(s.store.Create(s.ctx, r))

	got, err := s.store.FindByID(s.ctx, r.ID())
	s.Require().NoError(err)
	s.Equal(r.ID(), got.ID())
	s.Equal(r.SpaceID(), got.SpaceID())
	s.Equal(r.Category(), got.Category())
	s.Equal(r.Interval().String(), got.Interval().String())
	s.Equal(r.Status(), got.Status())
	s.Equal(r.TotalCost(), got.TotalCost())
	s.True(r.Price().DiscountPercent.Equal(got.Price().DiscountPercent))
	s.Equal("tenant-7", *got.TenantID())
	s.Equal("corner unit", got.Note().String())
	s.WithinDuration(r.CreatedAt(), got.CreatedAt(), time.Millisecond)
}

func (s *ReservationStoreSuite) TestCreateAndFind_KeepsExactPriceSnapshot() {
	r := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) {
			b.Category = "large_shop"
			b.UnitsBooked = 10000
			b.PricePerUnit = 10000
			b.Discount = "12.34567"
		}).
		BuildDomain()
	s.Require().NoError(s.store.Create(s.ctx, r))

	got, err := s.store.FindByID(s.ctx, r.ID())
	s.Require().NoError(err)

	want, have := r.Price(), got.Price()
	s.Equal("12.34567", have.DiscountPercent.String())
	s.Equal(want.Classification, have.Classification)
	s.Equal(want.Unit, have.Unit)
	s.Equal(want.PricePerUnit, have.PricePerUnit)
	s.Equal(want.UnitsBooked, have.UnitsBooked)
	s.Equal(want.Subtotal, have.Subtotal)
	s.Equal(want.DiscountAmount, have.DiscountAmount)
	s.Equal(want.TotalCost, have.TotalCost)
	s.Equal(int64(87654330), have.TotalCost.Minor())

	listed, err := s.store.List(s.ctx, shared.ListFilter{SpaceID: r.SpaceID()})
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal("12.34567", listed[0].Price().DiscountPercent.String())
}

func (s *ReservationStoreSuite) TestCreate_DuplicateID() {
	r := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(s.store.Create(s.ctx, r))

	err := s.store.Create(s.ctx, r)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *ReservationStoreSuite) TestFind_Missing() {
	r := builder.NewReservationBuilder().BuildDomain()
	_, err := s.store.FindByID(s.ctx, r.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))

	err = s.store.Update(s.ctx, r)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *ReservationStoreSuite) TestUpdate_PersistsStatusAndReason() {
	r := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(s.store.Create(s.ctx, r))

	s.Require().NoError(r.Cancel("tenant withdrew", r.CreatedAt().Add(time.Hour)))
	s.Require().NoError(s.store.Update(s.ctx, r))

	got, err := s.store.FindByID(s.ctx, r.ID())
	s.Require().NoError(err)
	s.Equal(reservation.StatusCancelled, got.Status())
	s.Equal("tenant withdrew", got.CancelReason())
}

func (s *ReservationStoreSuite) TestListActiveBySpace_SkipsInactiveAndOtherSpaces() {
	active := builder.NewReservationBuilder().BuildDomain()
	cancelled := builder.NewReservationBuilder().Dates("2024-07-01", "2024-07-02").BuildDomain()
	other := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.SpaceID = "S-999" }).BuildDomain()
	for _, r := range []*reservation.Reservation{active, cancelled, other} {
		s.Require().NoError(s.store.Create(s.ctx, r))
	}
	s.Require().NoError(cancelled.Cancel("", cancelled.CreatedAt()))
	s.Require().NoError(s.store.Update(s.ctx, cancelled))

	got, err := s.store.ListActiveBySpace(s.ctx, active.SpaceID())
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(active.ID(), got[0].ID())
}

func (s *ReservationStoreSuite) TestList_Filters() {
	june := builder.NewReservationBuilder().Dates("2024-06-20", "2024-06-22").BuildDomain()
	july := builder.NewReservationBuilder().Dates("2024-07-10", "2024-07-10").BuildDomain()
	for _, r := range []*reservation.Reservation{july, june} {
		s.Require().NoError(s.store.Create(s.ctx, r))
	}

	all, err := s.store.List(s.ctx, shared.ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(june.ID(), all[0].ID(), "ordered by start date")

	from, _ := pricing.ParseDate("2024-06-21")
	to, _ := pricing.ParseDate("2024-06-30")
	got, err := s.store.List(s.ctx, shared.ListFilter{From: &from, To: &to})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(june.ID(), got[0].ID())

	// 2024-06-22 is the exclusive end of the June booking.
	from, _ = pricing.ParseDate("2024-06-22")
	got, err = s.store.List(s.ctx, shared.ListFilter{From: &from, To: &to})
	s.Require().NoError(err)
	s.Empty(got)

	got, err = s.store.List(s.ctx, shared.ListFilter{Status: ptr.To(reservation.StatusConfirmed)})
	s.Require().NoError(err)
	s.Empty(got)
}

func TestMigrate_RecordsFiles(t *testing.T) {
	pool, _ := pgtest.NewPool(t)
	ctx := context.Background()
	require.NoError(t, pgstore.Migrate(ctx, pool))

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

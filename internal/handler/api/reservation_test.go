package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/handler/api"
	reqdto "mall-space-booking/internal/handler/dto/request"
	resdto "mall-space-booking/internal/handler/dto/response"
	"mall-space-booking/internal/handler/middleware"
	"mall-space-booking/internal/pkg/errs"
	"mall-space-booking/internal/pkg/ptr"
	"mall-space-booking/internal/testutil"
	"mall-space-booking/internal/testutil/builder"
	"mall-space-booking/internal/testutil/httptest"
	commandsmock "mall-space-booking/internal/testutil/mock/commands"
	queriesmock "mall-space-booking/internal/testutil/mock/queries"
	"mall-space-booking/internal/usecase/commands"
	"mall-space-booking/internal/usecase/queries"
	"mall-space-booking/internal/usecase/shared"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PATCH("/reservations/:id/status", s.handler.UpdateStatus)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
	s.router.GET("/spaces/:spaceId/conflicts", s.handler.Conflicts)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func validCreateRequest() reqdto.CreateReservationRequest {
	pct := decimal.NewFromInt(10)
	return reqdto.CreateReservationRequest{
		SpaceID:         "S-101",
		Category:        "small_shop",
		StartDate:       "2024-06-20",
		EndDate:         "2024-06-22",
		UnitsBooked:     2,
		DiscountPercent: &pct,
		TenantID:        ptr.To("tenant-7"),
		Note:            ptr.To("window display"),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	reqBody := validCreateRequest()
	created := builder.NewReservationBuilder().BuildDomain()

	validation := []testCaseReservation{
		{name: "missing field: spaceId", mutate: testutil.Field("spaceId", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "missing field: category", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "missing field: startDate", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "spaceId too long", mutate: testutil.Field("spaceId", strings.Repeat("s", 65)), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "negative units", mutate: testutil.Field("unitsBooked", -1), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "note too long", mutate: testutil.Field("note", strings.Repeat("n", 1001)), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "unknown category", mutate: testutil.Field("category", "food_court"), expectCode: http.StatusBadRequest, expectInBody: "Unknown space category"},
		{name: "malformed date", mutate: testutil.Field("startDate", "20-06-2024"), expectCode: http.StatusBadRequest, expectInBody: "Invalid date"},
		{name: "malformed time", mutate: func(m map[string]any) { m["startTime"] = "25:00"; m["endTime"] = "11:00" }, expectCode: http.StatusBadRequest, expectInBody: "Invalid time"},
	}

	s.Run("success: returns 201 with the priced reservation", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.ReserveInput) (*reservation.Reservation, error) {
				s.Equal("S-101", in.SpaceID)
				s.Equal(space.CategorySmallShop, in.Category)
				s.Equal("2024-06-20", in.StartDate.Format("2006-01-02"))
				s.True(in.DiscountPercent.Equal(decimal.NewFromInt(10)))
				s.Equal("tenant-7", *in.TenantID)
				s.Nil(in.StartTime)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("small_shop", body.Category)
		s.Equal("Small Shop", body.CategoryName)
		s.Equal("2024-06-20", body.StartDate)
		s.Equal("pending", body.Status)
		s.Equal(int64(2000), body.TotalCost)
	})

	s.Run("success: timed window is forwarded", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.ReserveInput) (*reservation.Reservation, error) {
				s.Require().NotNil(in.StartTime)
				s.Require().NotNil(in.EndTime)
				s.Equal(9*60, in.StartTime.Minutes())
				s.Equal(13*60+30, in.EndTime.Minutes())
				return builder.NewReservationBuilder().Times("09:00", "13:30").BuildDomain(), nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("startTime", "09:00"), testutil.Field("endTime", "13:30"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("09:00", *resp.StartTime)
		s.Equal("13:30", *resp.EndTime)
	})

	s.Run("error: 400 on validation errors without reaching the usecase", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"spaceId":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 names the conflicting reservation", func() {
		blocking := uuid.New()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, &reservation.ConflictError{SpaceID: "S-101", ConflictingID: blocking}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
		s.Equal(blocking.String(), body.Detail["conflictingReservationId"])
	})

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"unpriced combination", pricing.ErrUnpricedCombination, http.StatusUnprocessableEntity, "No rate"},
		{"invalid quantity", errs.Mark(errors.New("units"), pricing.ErrInvalidQuantity), http.StatusBadRequest, "Invalid quantity"},
		{"invalid discount", pricing.ErrInvalidDiscount, http.StatusBadRequest, "Discount percent"},
		{"inverted range", pricing.ErrInvalidDateRange, http.StatusBadRequest, "Start date must not be after end date"},
		{"lock unavailable", errs.Mark(errors.New("timeout"), errs.ErrLockUnavailable), http.StatusServiceUnavailable, "busy"},
		{"database failure", errs.Mark(errors.New("conn reset"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	r := builder.NewReservationBuilder().BuildDomain()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), r.ID()).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+r.ID().String(), nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(r.ID(), body.ID)
		s.Equal("S-101", body.SpaceID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrReservationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: query parameters become a filter", func() {
		rs := []*reservation.Reservation{
			builder.NewReservationBuilder().BuildDomain(),
			builder.NewReservationBuilder().Dates("2024-07-01", "2024-07-02").BuildDomain(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f shared.ListFilter) ([]*reservation.Reservation, error) {
				s.Equal("S-101", f.SpaceID)
				s.Require().NotNil(f.Status)
				s.Equal(reservation.StatusConfirmed, *f.Status)
				s.Require().NotNil(f.From)
				s.Equal("2024-06-01", f.From.Format("2006-01-02"))
				s.Nil(f.To)
				return rs, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?spaceId=S-101&status=confirmed&from=2024-06-01", nil)

		var body []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(rs[1].ID(), body[1].ID)
	})

	s.Run("success: empty list is an array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), shared.ListFilter{}).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=archived", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation status")
	})

	s.Run("error: 400 on inverted window", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, reservation.ErrInvalidInterval).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?from=2024-06-10&to=2024-06-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation interval")
	})
}

// ================================================================================
// TestUpdateStatus / TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = reservation.StatusConfirmed
	}).BuildDomain()
	url := "/reservations/" + r.ID().String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), r.ID(), reservation.StatusConfirmed).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CONFIRMED"})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation status")
	})

	s.Run("error: 409 on illegal transition", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), r.ID(), reservation.StatusPending).
			Return(nil, &reservation.TransitionError{From: reservation.StatusConfirmed, To: reservation.StatusPending}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"})

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid reservation status transition")
		s.Equal("confirmed", body.Detail["from"])
		s.Equal("pending", body.Detail["to"])
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = reservation.StatusCancelled
	}).BuildDomain()
	url := "/reservations/" + r.ID().String() + "/cancel"

	s.Run("success: with reason", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), r.ID(), "tenant withdrew").Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CancelReservationRequest{Reason: "tenant withdrew"})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("success: without body", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), r.ID(), "").Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), r.ID(), "").
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestConflicts
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConflicts() {
	s.Run("success: reports overlapping reservations", func() {
		blocking := builder.NewReservationBuilder().BuildDomain()
		s.mockQueries.EXPECT().Conflicts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in queries.ConflictsInput) ([]*reservation.Reservation, error) {
				s.Equal("S-101", in.SpaceID)
				s.Equal("2024-06-21", in.StartDate.Format("2006-01-02"))
				s.Require().NotNil(in.StartTime)
				s.Equal(10*60, in.StartTime.Minutes())
				return []*reservation.Reservation{blocking}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/spaces/S-101/conflicts?startDate=2024-06-21&endDate=2024-06-21&startTime=10:00&endTime=12:00", nil)

		var body resdto.ConflictsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.HasConflict)
		s.Require().Len(body.Conflicts, 1)
		s.Equal(blocking.ID(), body.Conflicts[0].ID)
	})

	s.Run("success: free window", func() {
		s.mockQueries.EXPECT().Conflicts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/S-9/conflicts?startDate=2024-06-21&endDate=2024-06-22", nil)

		var body resdto.ConflictsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.HasConflict)
		s.Empty(body.Conflicts)
	})

	s.Run("error: 400 when dates are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/S-9/conflicts?startDate=2024-06-21", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when only one time is given", func() {
		s.mockQueries.EXPECT().Conflicts(gomock.Any(), gomock.Any()).Return(nil, reservation.ErrInvalidInterval).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/S-9/conflicts?startDate=2024-06-21&endDate=2024-06-21&startTime=10:00", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation interval")
	})
}

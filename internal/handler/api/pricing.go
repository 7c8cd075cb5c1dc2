package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "mall-space-booking/internal/handler/dto/request"
	resdto "mall-space-booking/internal/handler/dto/response"
	"mall-space-booking/internal/handler/httperr"
	"mall-space-booking/internal/usecase/commands"
	"mall-space-booking/internal/usecase/queries"
)

type PricingHandler struct {
	cmds commands.PricingCommands
	q    queries.PricingQueries
}

func NewPricingHandler(cmds commands.PricingCommands, q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{cmds: cmds, q: q}
}

// @Summary Quote a booking
// @Description Price a space for a date range without reserving it. Amounts are in paise.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	result, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(in.Category.String(), result))
}

// @Summary List rates
// @Description List configured rates, optionally for one category
// @Tags pricing
// @Produce json
// @Param category query string false "Space category"
// @Success 200 {array} resdto.CategoryRatesResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/rates [get]
func (h *PricingHandler) Rates(c *gin.Context) {
	var q reqdto.RatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	category, err := q.CategoryFilter()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	groups, err := h.q.Rates(c.Request.Context(), category)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromCategoryRates(groups)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Suggest a price
// @Description Suggest a price from current and target utilization ratios (0.0 to 1.0)
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.SuggestPriceRequest true "Suggestion request"
// @Success 200 {object} resdto.SuggestionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/pricing/suggestions [post]
func (h *PricingHandler) Suggest(c *gin.Context) {
	var req reqdto.SuggestPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	s, err := h.q.Suggest(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromSuggestion(s)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List holidays
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.HolidaysResponse
// @Router /api/pricing/holidays [get]
func (h *PricingHandler) Holidays(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromHolidays(h.q.Holidays(c.Request.Context())))
}

// @Summary Replace holidays
// @Description Replace the public holiday set. Existing reservations keep their price.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ReplaceHolidaysRequest true "Holiday dates (YYYY-MM-DD)"
// @Success 200 {object} resdto.HolidaysResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/holidays [put]
func (h *PricingHandler) ReplaceHolidays(c *gin.Context) {
	var req reqdto.ReplaceHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	dates, err := req.ToDates()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	current := h.cmds.ReplaceHolidays(c.Request.Context(), dates)
	c.JSON(http.StatusOK, resdto.FromHolidays(current))
}

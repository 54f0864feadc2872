package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"mortgage-simulator/domain"
	"mortgage-simulator/pkg/log"
	"mortgage-simulator/pkg/response"
	"mortgage-simulator/service"
)

const defaultHistoryLimit = 20

type MortgageHandler struct {
	l       log.Logger
	service *service.MortgageService
}

func NewMortgageHandler(l log.Logger, service *service.MortgageService) *MortgageHandler {
	return &MortgageHandler{l: l, service: service}
}

// Calculate handles POST /api/v1/mortgage/calculate.
func (h *MortgageHandler) Calculate(c *gin.Context) {
	ctx := c.Request.Context()

	var input domain.MortgageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, errors.New("invalid request body"))
		return
	}

	result, err := h.service.Calculate(ctx, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Schedule handles POST /api/v1/mortgage/schedule and returns the full
// amortization table.
func (h *MortgageHandler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	var input domain.MortgageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, errors.New("invalid request body"))
		return
	}

	result, err := h.service.Schedule(ctx, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// History handles GET /api/v1/mortgage/history?limit=N.
func (h *MortgageHandler) History(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, errors.New("invalid limit"))
			return
		}
		limit = parsed
	}

	response.OK(c, h.service.History(limit))
}

package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mortgage-simulator/domain"
	"mortgage-simulator/pkg/log"
	"mortgage-simulator/pkg/response"
	"mortgage-simulator/service"
)

type ScenarioHandler struct {
	l       log.Logger
	service *service.ScenarioService
}

func NewScenarioHandler(l log.Logger, service *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{l: l, service: service}
}

// Simulate handles POST /api/v1/scenario/simulate.
func (h *ScenarioHandler) Simulate(c *gin.Context) {
	ctx := c.Request.Context()

	var input domain.ScenarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, errors.New("invalid request body"))
		return
	}

	result, err := h.service.Simulate(ctx, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Sweep handles POST /api/v1/scenario/sweep.
func (h *ScenarioHandler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	var input domain.SweepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, errors.New("invalid request body"))
		return
	}

	result, err := h.service.Sweep(ctx, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

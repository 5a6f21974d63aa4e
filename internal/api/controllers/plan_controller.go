package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelbah/internal/models/request_models"
	"travelbah/internal/services"
	"travelbah/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// BuildPlan godoc
// @Summary Build a route plan
// @Description Resolve the route between origin and destination and pick stops plus a surprise drop
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan request"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlanController) BuildPlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := p.planService.BuildPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan built successfully")
}

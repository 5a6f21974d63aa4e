package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"travelbah/internal/models/response_models"
	"travelbah/internal/services"
	"travelbah/pkg/utils"
)

type POIsController struct {
	catalogService services.CatalogServiceInterface
}

func NewPOIsController(catalogService services.CatalogServiceInterface) *POIsController {
	return &POIsController{
		catalogService: catalogService,
	}
}

func (p *POIsController) GetPoiById(c *gin.Context) {
	poiId := c.Param("id")
	if poiId == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	poi, err := p.catalogService.GetByID(poiId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPOI(poi), "POI fetched successfully")
}

func (p *POIsController) ListPois(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	pois, err := p.catalogService.Page(page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPOIs(pois), "POIs fetched successfully")
}

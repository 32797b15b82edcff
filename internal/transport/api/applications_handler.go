package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/gin-gonic/gin"
)

type ApplicationsHandler struct {
	svs ApplicationServicer
}

func NewApplicationsHandler(svs ApplicationServicer) *ApplicationsHandler {
	return &ApplicationsHandler{svs: svs}
}

type ApplicationParams struct {
	Name     string `binding:"required,max=100"  json:"name"`
	ShopName string `binding:"required,max=100"  json:"shopName"`
	Phone    string `binding:"required,phone"    json:"mobile"`
	City     string `binding:"required,max=100"  json:"city"`
	GSTIN    string `binding:"omitempty,len=15"  json:"gstin"`
	Volume   string `binding:"max=100"           json:"volume"`
}

// Create POST RouteGroup + ApplicationsRoute. Публичная заявка на дилерство.
func (h *ApplicationsHandler) Create(c *gin.Context) {
	var params ApplicationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	application, err := h.svs.Submit(ctx, service.SubmitApplicationArgs{
		Name:     params.Name,
		ShopName: params.ShopName,
		Phone:    params.Phone,
		City:     params.City,
		GSTIN:    params.GSTIN,
		Volume:   params.Volume,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	applications, err := h.svs.List(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(applications))
}

type UpdateApplicationParams struct {
	Status     domain.ApplicationStatus `binding:"required"       json:"status"`
	AdminNotes *string                  `binding:"omitempty,max=1000" json:"adminNotes"`
}

type ApplicationResponse struct {
	*domain.Application
	// Dealer заполняется, когда заявка одобрена этим запросом.
	Dealer *domain.Dealer `json:"dealer,omitempty"`
}

// UpdateStatus PUT RouteGroup + ApplicationRoute. Status Approved создает дилера.
func (h *ApplicationsHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var params UpdateApplicationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	application, dealer, err := h.svs.UpdateStatus(ctx, service.UpdateApplicationArgs{
		ID:         id,
		Status:     params.Status,
		AdminNotes: params.AdminNotes,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApplicationResponse{Application: application, Dealer: dealer})
}

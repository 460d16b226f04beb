package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sakay/internal/models/request_models"
	"sakay/internal/services"
	"sakay/pkg/utils"
)

type VehicleController struct {
	vehicleService services.VehicleServiceInterface
}

func NewVehicleController(vehicleService services.VehicleServiceInterface) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

// Search godoc
// @Summary Search listed vehicles
// @Tags Vehicle
// @Produce json
// @Param type query string false "car or motorcycle"
// @Param city query string false "City"
// @Param min_price query number false "Minimum daily price"
// @Param max_price query number false "Maximum daily price"
// @Success 200 {array} response_models.VehicleResponse
// @Router /vehicles [get]
func (v *VehicleController) Search(c *gin.Context) {
	query := services.VehicleSearchQuery{
		Type: c.Query("type"),
		City: c.Query("city"),
	}
	if raw := c.Query("min_price"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || p < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid min_price")
			return
		}
		query.MinPrice = p
	}
	if raw := c.Query("max_price"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || p < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid max_price")
			return
		}
		query.MaxPrice = p
	}

	vehicles, err := v.vehicleService.Search(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vehicles, "Vehicles fetched successfully")
}

func (v *VehicleController) GetByID(c *gin.Context) {
	vehicle, err := v.vehicleService.GetByID(c.Request.Context(), c.Param("vehicleId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vehicle, "Vehicle fetched successfully")
}

func (v *VehicleController) Create(c *gin.Context) {
	var req request_models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	vehicle, err := v.vehicleService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, vehicle, "Vehicle listed successfully")
}

func (v *VehicleController) ListMine(c *gin.Context) {
	vehicles, err := v.vehicleService.ListByHost(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vehicles, "Vehicles fetched successfully")
}

func (v *VehicleController) Update(c *gin.Context) {
	var req request_models.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	err := v.vehicleService.Update(c.Request.Context(), c.GetString("user_id"), c.Param("vehicleId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Vehicle updated successfully")
}

func (v *VehicleController) Delete(c *gin.Context) {
	err := v.vehicleService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("vehicleId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Vehicle removed successfully")
}

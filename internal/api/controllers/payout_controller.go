package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sakay/internal/models/request_models"
	"sakay/internal/services"
	"sakay/pkg/utils"
)

type PayoutController struct {
	payoutService services.PayoutServiceInterface
	methodService services.PayoutMethodServiceInterface
}

func NewPayoutController(
	payoutService services.PayoutServiceInterface,
	methodService services.PayoutMethodServiceInterface,
) *PayoutController {
	return &PayoutController{
		payoutService: payoutService,
		methodService: methodService,
	}
}

// --- payout methods (host-facing) ---

func (p *PayoutController) AddMethod(c *gin.Context) {
	var req request_models.AddPayoutMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	method, err := p.methodService.Add(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, method, "Payout method added successfully")
}

func (p *PayoutController) ListMethods(c *gin.Context) {
	methods, err := p.methodService.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, methods, "Payout methods fetched successfully")
}

func (p *PayoutController) UpdateMethod(c *gin.Context) {
	var req request_models.UpdatePayoutMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	err := p.methodService.Update(c.Request.Context(), c.GetString("user_id"), c.Param("methodId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Payout method updated successfully")
}

func (p *PayoutController) SetPrimaryMethod(c *gin.Context) {
	err := p.methodService.SetPrimary(c.Request.Context(), c.GetString("user_id"), c.Param("methodId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Primary payout method updated")
}

func (p *PayoutController) DeleteMethod(c *gin.Context) {
	err := p.methodService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("methodId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Payout method removed")
}

// --- admin ---

func (p *PayoutController) VerifyMethod(c *gin.Context) {
	err := p.methodService.Verify(c.Request.Context(), c.Param("methodId"), true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Payout method verified")
}

// UnpaidEarnings godoc
// @Summary Aggregate a host's unpaid earnings
// @Tags Payout
// @Produce json
// @Param hostId path string true "Host ID"
// @Success 200 {object} response_models.UnpaidEarnings
// @Security BearerAuth
// @Router /admin/payouts/unpaid/{hostId} [get]
func (p *PayoutController) UnpaidEarnings(c *gin.Context) {
	agg, err := p.payoutService.AggregateUnpaidEarnings(c.Request.Context(), c.Param("hostId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, agg, "Unpaid earnings aggregated")
}

// ProcessPayout godoc
// @Summary Settle a host's unpaid bookings against a GCash reference
// @Tags Payout
// @Accept json
// @Produce json
// @Param request body request_models.ProcessPayoutRequest true "Payout payload"
// @Success 201 {object} response_models.PayoutResult
// @Security BearerAuth
// @Router /admin/payouts [post]
func (p *PayoutController) ProcessPayout(c *gin.Context) {
	var req request_models.ProcessPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := p.payoutService.ProcessPayout(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, result, "Payout recorded successfully")
}

func (p *PayoutController) ListTransactions(c *gin.Context) {
	txns, err := p.payoutService.ListTransactions(c.Request.Context(), c.Query("host_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, txns, "Payout transactions fetched successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sakay/internal/models/request_models"
	"sakay/internal/services"
	"sakay/pkg/utils"
)

// CancellationController exposes the admin refund desk: the queue of
// pending refunds and the settlement action.
type CancellationController struct {
	cancellationService services.CancellationServiceInterface
}

func NewCancellationController(cancellationService services.CancellationServiceInterface) *CancellationController {
	return &CancellationController{cancellationService: cancellationService}
}

func (r *CancellationController) ListPendingRefunds(c *gin.Context) {
	list, err := r.cancellationService.ListPendingRefunds(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, list, "Pending refunds fetched successfully")
}

func (r *CancellationController) GetByID(c *gin.Context) {
	cancellation, err := r.cancellationService.GetByID(c.Request.Context(), c.Param("cancellationId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cancellation, "Cancellation fetched successfully")
}

// SettleRefund godoc
// @Summary Record a manually reconciled refund
// @Tags Refund
// @Accept json
// @Produce json
// @Param cancellationId path string true "Cancellation ID"
// @Param request body request_models.SettleRefundRequest true "Settlement payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/refunds/{cancellationId}/settle [post]
func (r *CancellationController) SettleRefund(c *gin.Context) {
	var req request_models.SettleRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	txn, err := r.cancellationService.SettleRefund(c.Request.Context(), c.GetString("user_id"), c.Param("cancellationId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, txn, "Refund settled successfully")
}

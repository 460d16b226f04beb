package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sakay/internal/models/request_models"
	"sakay/internal/services"
	"sakay/pkg/utils"
)

type VerificationController struct {
	verificationService services.VerificationServiceInterface
}

func NewVerificationController(verificationService services.VerificationServiceInterface) *VerificationController {
	return &VerificationController{verificationService: verificationService}
}

func (v *VerificationController) Submit(c *gin.Context) {
	var req request_models.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	verification, err := v.verificationService.Submit(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, verification, "Verification submitted successfully")
}

func (v *VerificationController) ListPending(c *gin.Context) {
	list, err := v.verificationService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, list, "Pending verifications fetched successfully")
}

func (v *VerificationController) Approve(c *gin.Context) {
	err := v.verificationService.Approve(c.Request.Context(), c.GetString("user_id"), c.Param("verificationId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Verification approved")
}

func (v *VerificationController) Reject(c *gin.Context) {
	var req request_models.RejectVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	err := v.verificationService.Reject(c.Request.Context(), c.GetString("user_id"), c.Param("verificationId"), req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Verification rejected")
}

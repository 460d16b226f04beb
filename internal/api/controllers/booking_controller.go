package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sakay/internal/models/request_models"
	"sakay/internal/services"
	"sakay/pkg/utils"
)

type BookingController struct {
	bookingService      services.BookingServiceInterface
	cancellationService services.CancellationServiceInterface
}

func NewBookingController(
	bookingService services.BookingServiceInterface,
	cancellationService services.CancellationServiceInterface,
) *BookingController {
	return &BookingController{
		bookingService:      bookingService,
		cancellationService: cancellationService,
	}
}

// Create godoc
// @Summary Book a vehicle
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response_models.BookingResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) Create(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	booking, err := b.bookingService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, booking, "Booking created successfully")
}

func (b *BookingController) Confirm(c *gin.Context) {
	booking, err := b.bookingService.Confirm(c.Request.Context(), c.GetString("user_id"), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking confirmed successfully")
}

func (b *BookingController) GetByID(c *gin.Context) {
	booking, err := b.bookingService.GetByID(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

func (b *BookingController) ListMine(c *gin.Context) {
	bookings, err := b.bookingService.ListForGuest(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

func (b *BookingController) ListHosted(c *gin.Context) {
	bookings, err := b.bookingService.ListForHost(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// QuoteRefund previews the refund a cancellation right now would yield.
func (b *BookingController) QuoteRefund(c *gin.Context) {
	quote, err := b.bookingService.QuoteRefund(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quote, "Refund quote computed")
}

// Cancel godoc
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body request_models.CancelBookingRequest true "Cancellation payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/cancel [post]
func (b *BookingController) Cancel(c *gin.Context) {
	var req request_models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cancellation, err := b.cancellationService.Cancel(c.Request.Context(), c.GetString("user_id"), c.Param("bookingId"), req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cancellation, "Booking cancelled successfully")
}

package api

import (
	"errors"
	"net/http"

	reqdto "tavola-api/internal/handler/dto/request"
	resdto "tavola-api/internal/handler/dto/response"
	"tavola-api/internal/handler/httperr"
	"tavola-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Submit reservation request
// @Description Public booking form endpoint; the reservation starts pending
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitReservationRequest true "Reservation request"
// @Success 201 {object} resdto.IntakeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	result, err := h.reservationUseCase.SubmitReservation(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing required fields",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIntakeResult(result))
}

// @Summary List reservations
// @Description All reservations, newest first, for the admin triage table
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} readmodel.ReservationRM
// @Failure 401 {object} map[string]string
// @Router /admin/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.reservationUseCase.ListReservations(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// @Summary Respond to reservation
// @Description Accept or reject a pending reservation and notify the guest
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RespondReservationRequest true "Response status"
// @Success 200 {object} resdto.RespondResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/respond [post]
func (h *ReservationHandler) Respond(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}

	var req reqdto.RespondReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationUseCase.RespondToReservation(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidResponseStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Status must be accepted or rejected",
			})
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, usecase.ErrAlreadyResponded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation has already been responded to",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRespondResult(result))
}

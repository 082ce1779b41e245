package httpHandler

import (
	"errors"
	"net/http"

	"rental-server/auth"
	"rental-server/entities"
	"rental-server/repositories"
	"rental-server/usecases"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	useCase *usecases.BookingUseCase
}

func NewBookingHandler(useCase *usecases.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		useCase: useCase,
	}
}

// GetBookingsByOwner handles GET /getBookedHousebyId/:id
func (h *BookingHandler) GetBookingsByOwner(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	bookings, err := h.useCase.GetBookingsByOwner(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    bookings,
		"message": "booked houses retrieved successfully",
	})
}

// GetBookingsByRenter handles GET /getSingleBooked-house/:email
func (h *BookingHandler) GetBookingsByRenter(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	bookings, err := h.useCase.GetBookingsByRenter(c.Request.Context(), claims.Email, c.Param("email"))
	if err != nil {
		if errors.Is(err, usecases.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    bookings,
		"message": "booked houses retrieved successfully",
	})
}

// CreateBooking handles POST /bookedHouse
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking entities.BookedHouse
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	claims := auth.ClaimsFrom(c)
	if err := h.useCase.CreateBooking(c.Request.Context(), claims.Email, &booking); err != nil {
		switch {
		case errors.Is(err, repositories.ErrBookingLimit):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "You have already booked two houses. Cannot book more at this time.",
			})
		case errors.Is(err, usecases.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    booking,
		"message": "Booked house successfully.",
	})
}

// DeleteBooking handles DELETE /dletBookedHouse/:id
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	deleted, err := h.useCase.DeleteBooking(c.Request.Context(), claims.Email, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    deleted,
		"message": "booking deleted successfully",
	})
}

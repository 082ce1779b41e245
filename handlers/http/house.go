package httpHandler

import (
	"errors"
	"net/http"

	"rental-server/auth"
	"rental-server/entities"
	"rental-server/usecases"

	"github.com/gin-gonic/gin"
)

type HouseHandler struct {
	useCase *usecases.HouseUseCase
}

func NewHouseHandler(useCase *usecases.HouseUseCase) *HouseHandler {
	return &HouseHandler{
		useCase: useCase,
	}
}

// GetAllHouses handles GET /allOwnerHouse
func (h *HouseHandler) GetAllHouses(c *gin.Context) {
	houses, err := h.useCase.GetAllHouses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, houses)
}

// GetHousesByOwner handles GET /findIdByHOuse/:id
func (h *HouseHandler) GetHousesByOwner(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	houses, err := h.useCase.GetHousesByOwner(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    houses,
		"message": "houses retrieved successfully",
	})
}

// CreateHouse handles POST /postHouse
func (h *HouseHandler) CreateHouse(c *gin.Context) {
	var house entities.House
	if err := c.ShouldBindJSON(&house); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	claims := auth.ClaimsFrom(c)
	if err := h.useCase.CreateHouse(c.Request.Context(), claims.UserID, &house); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    house,
		"message": "house saved successfully",
	})
}

// UpdateHouse handles PUT /editHouse/:id
func (h *HouseHandler) UpdateHouse(c *gin.Context) {
	var house entities.House
	if err := c.ShouldBindJSON(&house); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}
	house.ID = c.Param("id")

	claims := auth.ClaimsFrom(c)
	updated, err := h.useCase.UpdateHouse(c.Request.Context(), claims.UserID, &house)
	if err != nil {
		if errors.Is(err, usecases.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    updated,
		"message": "house updated successfully",
	})
}

// DeleteHouse handles DELETE /deletHouse/:id
func (h *HouseHandler) DeleteHouse(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	deleted, err := h.useCase.DeleteHouse(c.Request.Context(), claims.UserID, c.Param("id"))
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
		"message": "house deleted successfully",
	})
}

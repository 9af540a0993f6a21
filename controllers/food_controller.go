package controllers

import (
	"net/http"
	"strconv"

	"github.com/ggowtam/nutrition-tracker/config"
	"github.com/ggowtam/nutrition-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodInput struct {
	Name        string   `json:"name" binding:"required"`
	Protein     *float64 `json:"protein" binding:"required,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"required,gte=0"`
	Calories    *float64 `json:"calories" binding:"required,gte=0"`
	ServingSize float64  `json:"serving_size"` // grams/ml per serving; 0 means default
}

// POST /foods
func AddFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFoodService(config.DB)
	food, err := svc.Create(uid, input.Name, *input.Protein, *input.Carbs, *input.Calories, input.ServingSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add food"})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// GET /foods
func ListFoods(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewFoodService(config.DB)
	foods, err := svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// DELETE /foods/:id
func DeleteFood(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	svc := services.NewFoodService(config.DB)
	if err := svc.Delete(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food"})
		return
	}
	c.Status(http.StatusNoContent)
}

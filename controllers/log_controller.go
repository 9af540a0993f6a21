package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/ggowtam/nutrition-tracker/models"
	"github.com/ggowtam/nutrition-tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogController holds the log service and the realtime hub so sibling
// sessions hear about writes without polling.
type LogController struct {
	Logs *services.LogService
	RT   *services.RealtimeHub
}

func NewLogController(logs *services.LogService, rt *services.RealtimeHub) *LogController {
	return &LogController{Logs: logs, RT: rt}
}

type LogInput struct {
	FoodID   uint     `json:"food_id" binding:"required"`
	Servings *float64 `json:"servings"`
	Grams    *float64 `json:"grams"`
}

// round1 is display rounding only; stored values keep full precision.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// POST /logs
func (lc *LogController) LogFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var input LogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Servings == nil && input.Grams == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings or grams required"})
		return
	}

	entry, err := lc.Logs.LogConsumption(uid, input.FoodID, input.Servings, input.Grams)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		case errors.Is(err, services.ErrQuantityRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log food"})
		}
		return
	}

	if lc.RT != nil {
		lc.RT.Broadcast(uid, gin.H{"kind": "log.created", "log": entry})
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /logs/today?date=YYYY-MM-DD (date overrides "today")
func (lc *LogController) ListToday(c *gin.Context) {
	uid := c.GetUint("userID")

	var (
		logs []models.DailyLog
		err  error
	)
	if date := c.Query("date"); date != "" {
		logs, err = lc.Logs.ListByDate(uid, date)
	} else {
		logs, err = lc.Logs.ListToday(uid)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GET /logs/summary?date=YYYY-MM-DD
//
// Totals are rounded here for display: one decimal for protein/carbs,
// whole numbers for calories.
func (lc *LogController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")

	var (
		dayLogs []models.DailyLog
		err     error
	)
	if date := c.Query("date"); date != "" {
		dayLogs, err = lc.Logs.ListByDate(uid, date)
	} else {
		dayLogs, err = lc.Logs.ListToday(uid)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load logs"})
		return
	}

	totals := services.Aggregate(dayLogs)

	c.JSON(http.StatusOK, gin.H{
		"protein":  round1(totals.Protein),
		"carbs":    round1(totals.Carbs),
		"calories": math.Round(totals.Calories),
	})
}

// DELETE /logs/:id
func (lc *LogController) DeleteLog(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := lc.Logs.Delete(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log entry"})
		return
	}

	if lc.RT != nil {
		lc.RT.Broadcast(uid, gin.H{"kind": "log.deleted", "log_id": id})
	}
	c.Status(http.StatusNoContent)
}

package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ggowtam/nutrition-tracker/config"
	"github.com/ggowtam/nutrition-tracker/models"
	"github.com/ggowtam/nutrition-tracker/services"
	"github.com/ggowtam/nutrition-tracker/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Profiles *services.ProfileService
}

func NewNotificationController(ps *services.ProfileService) *NotificationController {
	return &NotificationController{Profiles: ps}
}

// POST /user/reminders/weight
//
// Fires the weight-update reminder out of band when it is due: stores an
// alert, broadcasts it to open sessions, emails the user and pushes to
// registered devices. When not due it reports that and does nothing.
func (nc *NotificationController) TriggerWeightReminder(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	due, daysSince, err := nc.Profiles.WeightReminderStatus(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check reminder"})
		return
	}
	if !due {
		c.JSON(http.StatusOK, gin.H{"due": false})
		return
	}

	msg := fmt.Sprintf("It has been %d days since you last updated your weight.", daysSince)
	services.EmitAlert(uid, "weight_reminder", msg)

	if email != "" {
		// Best effort; the alert row is already stored.
		_ = utils.SendWeightReminderEmail(email, daysSince)
	}

	c.JSON(http.StatusOK, gin.H{"due": true, "days_since": daysSince})
}

// GET /alerts
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	var alerts []models.Alert
	err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// DELETE /alerts/:id
func DismissAlert(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	if err := config.DB.
		Where("id = ? AND user_id = ?", id, uid).
		Delete(&models.Alert{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to dismiss alert"})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /user/notifications/toggle
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notifications updated", "enabled": req.Enabled})
}

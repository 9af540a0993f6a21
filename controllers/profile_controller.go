package controllers

import (
	"net/http"

	"github.com/ggowtam/nutrition-tracker/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(ps *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: ps}
}

// GET /user/profile
//
// Returns the stored profile plus derived values. bmi and bmi_category
// are absent when height or weight is missing; weight_update_due drives
// the client's reminder modal and re-triggers on every load while
// overdue (dismissal is never persisted).
func (pc *ProfileController) GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	overview, err := pc.Profiles.Overview(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// PUT /user/profile
func (pc *ProfileController) SaveProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.Profiles.Save(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

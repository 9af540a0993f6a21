package routes

import (
	"log"

	"github.com/ggowtam/nutrition-tracker/config"
	"github.com/ggowtam/nutrition-tracker/controllers"
	"github.com/ggowtam/nutrition-tracker/middlewares"
	"github.com/ggowtam/nutrition-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	rt := services.NewRealtimeHub()
	logSvc := services.NewLogService(config.DB)
	profileSvc := services.NewProfileService(config.DB)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		// push is optional; everything else still works
		log.Printf("push service unavailable: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, push)

	logCtrl := controllers.NewLogController(logSvc, rt)
	profileCtrl := controllers.NewProfileController(profileSvc)
	notifCtrl := controllers.NewNotificationController(profileSvc)
	rtCtrl := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/foods", controllers.ListFoods)
		protected.POST("/foods", controllers.AddFood)
		protected.DELETE("/foods/:id", controllers.DeleteFood)

		protected.POST("/logs", logCtrl.LogFood)
		protected.GET("/logs/today", logCtrl.ListToday)
		protected.GET("/logs/summary", logCtrl.Summary)
		protected.DELETE("/logs/:id", logCtrl.DeleteLog)

		protected.GET("/user/profile", profileCtrl.GetProfile)
		protected.PUT("/user/profile", profileCtrl.SaveProfile)
		protected.POST("/user/reminders/weight", notifCtrl.TriggerWeightReminder)
		protected.POST("/user/notifications/toggle", controllers.ToggleNotifications)

		protected.GET("/alerts", controllers.ListAlerts)
		protected.DELETE("/alerts/:id", controllers.DismissAlert)

		protected.GET("/ws/events", rtCtrl.EventsWS)
	}

	if push != nil {
		devCtrl := controllers.NewDeviceController(push)
		protected.POST("/devices/register", devCtrl.Register)
	}

	return r
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/importer"
	"swimtrack/training-tracker/internal/repository/selector"
	"swimtrack/training-tracker/internal/service"
)

// Services bundles everything SetupRoutes needs to wire the handlers.
type Services struct {
	Auth         service.AuthService
	Sessions     service.SessionService
	Exercises    service.ExerciseService
	Strength     service.StrengthService
	Catalog      service.CatalogService
	Assignments  service.AssignmentService
	Notification service.NotificationService
	Records      service.RecordsService
	Timesheet    service.TimesheetService
	Importer     *importer.Client
	Selector     *selector.Selector
}

func SetupRoutes(router *gin.Engine, jwtSecret string, svcs Services) {
	authHandler := NewAuthHandler(svcs.Auth)
	sessionHandler := NewSessionHandler(svcs.Sessions)
	exerciseHandler := NewExerciseHandler(svcs.Exercises)
	strengthHandler := NewStrengthHandler(svcs.Strength, svcs.Exercises)
	catalogHandler := NewCatalogHandler(svcs.Catalog)
	assignmentHandler := NewAssignmentHandler(svcs.Assignments)
	notificationHandler := NewNotificationHandler(svcs.Notification)
	recordsHandler := NewRecordsHandler(svcs.Records, svcs.Importer)
	timesheetHandler := NewTimesheetHandler(svcs.Timesheet)

	authMiddleware := AuthMiddleware(jwtSecret)
	coachOnly := RoleMiddleware(domain.RoleCoach)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	// storage mode: remote backend when reachable, local mirror otherwise
	router.GET("/status", func(c *gin.Context) {
		mode := "local"
		if svcs.Selector.CanUseBackend() {
			mode = "remote"
		}
		c.JSON(http.StatusOK, gin.H{"mode": mode})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
		})

		sessions := protected.Group("/sessions")
		{
			sessions.POST("", sessionHandler.Sync)
			sessions.GET("", sessionHandler.List)
			sessions.GET("/:id", sessionHandler.GetByID)
			sessions.DELETE("/:id", sessionHandler.Delete)
		}

		exercises := protected.Group("/exercises")
		{
			exercises.GET("", exerciseHandler.List)
			exercises.GET("/:id", exerciseHandler.GetByID)
			exercises.GET("/:id/params", strengthHandler.ResolveParams)
			exercises.GET("/:id/illustration", exerciseHandler.IllustrationURL)
			exercises.POST("", coachOnly, exerciseHandler.Create)
			exercises.PUT("/:id", coachOnly, exerciseHandler.Update)
			exercises.DELETE("/:id", coachOnly, exerciseHandler.Delete)
			exercises.POST("/illustrations", coachOnly, exerciseHandler.RequestIllustrationUpload)
		}

		strength := protected.Group("/strength")
		{
			strength.GET("/sessions", strengthHandler.ListSessions)
			strength.GET("/sessions/:id", strengthHandler.GetSession)
			strength.POST("/sessions", coachOnly, strengthHandler.CreateSession)
			strength.PUT("/sessions/:id", coachOnly, strengthHandler.UpdateSession)
			strength.DELETE("/sessions/:id", coachOnly, strengthHandler.DeleteSession)

			strength.POST("/runs", strengthHandler.StartRun)
			strength.GET("/runs", strengthHandler.ListRuns)
			strength.POST("/runs/:id/logs", strengthHandler.LogSet)
			strength.PUT("/runs/:id/progress", strengthHandler.UpdateProgress)
			strength.PUT("/runs/:id/save", strengthHandler.SaveRun)
			strength.PUT("/runs/:id/abandon", strengthHandler.AbandonRun)
			strength.DELETE("/runs/:id", strengthHandler.DeleteRun)

			strength.GET("/history", strengthHandler.History)
			strength.GET("/onerm", strengthHandler.OneRm)
		}

		catalog := protected.Group("/catalog")
		{
			catalog.GET("", catalogHandler.List)
			catalog.GET("/folders", catalogHandler.Folders)
			catalog.GET("/:id", catalogHandler.GetByID)
			catalog.POST("", coachOnly, catalogHandler.Create)
			catalog.PUT("/:id", coachOnly, catalogHandler.Update)
			catalog.PUT("/:id/archive", coachOnly, catalogHandler.SetArchived)
			catalog.DELETE("/:id", coachOnly, catalogHandler.Delete)
		}

		assignments := protected.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListMine)
			assignments.PUT("/:id/status", assignmentHandler.SetStatus)
			assignments.POST("", coachOnly, assignmentHandler.Assign)
			assignments.DELETE("/:id", coachOnly, assignmentHandler.Delete)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListMine)
			notifications.GET("/unread", notificationHandler.UnreadCount)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.POST("", coachOnly, notificationHandler.Send)
			notifications.DELETE("/:id", coachOnly, notificationHandler.Delete)
		}

		records := protected.Group("/records")
		{
			records.GET("/halloffame", recordsHandler.HallOfFame)
			records.GET("/club", recordsHandler.ListClubRecords)
			records.GET("/swim/:athleteId", recordsHandler.ListSwimRecords)
			records.POST("/swim", coachOnly, recordsHandler.SaveSwimRecord)
			records.POST("/import/:athleteId", coachOnly, recordsHandler.ImportAthlete)
			records.POST("/club/recalculate", coachOnly, recordsHandler.RecalculateClubRecords)
		}

		timesheet := protected.Group("/timesheet")
		timesheet.Use(coachOnly)
		{
			timesheet.POST("/shifts", timesheetHandler.CreateShift)
			timesheet.GET("/shifts", timesheetHandler.ListShifts)
			timesheet.PUT("/shifts/:id", timesheetHandler.UpdateShift)
			timesheet.DELETE("/shifts/:id", timesheetHandler.DeleteShift)
			timesheet.GET("/summary", timesheetHandler.MonthlySummaries)
			timesheet.POST("/locations", timesheetHandler.CreateLocation)
			timesheet.GET("/locations", timesheetHandler.ListLocations)
		}
	}
}

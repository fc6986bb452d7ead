package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/handlers"
	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
	"github.com/Kamaludyn/career-connect-backend/internal/ws"
)

// Deps is everything the router mounts.
type Deps struct {
	JWTSecret string
	Users     repository.UserRepository

	Auth          *handlers.AuthHandler
	User          *handlers.UserHandler
	Conversations *handlers.ConversationHandler
	Messages      *handlers.MessageHandler
	Notifications *handlers.NotificationHandler
	Jobs          *handlers.JobHandler
	Applications  *handlers.ApplicationHandler
	Mentorships   *handlers.MentorshipHandler
	Resources     *handlers.ResourceHandler
	Reports       *handlers.ReportHandler
	Admin         *handlers.AdminHandler
	Search        *handlers.SearchHandler

	Relay *ws.Relay

	// optional, nil disables it
	RateLimiter *middleware.RateLimiter
}

func Register(app *fiber.App, d Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// websocket relay
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(d.Relay.Handler()))

	api := app.Group("/api")
	authed := middleware.Auth(d.JWTSecret)
	withUser := middleware.LoadUser(d.Users)
	admin := middleware.RequireRole(d.Users, models.RoleAdmin)
	employer := middleware.RequireRole(d.Users, models.RoleEmployer)

	auth := api.Group("/auth")
	if d.RateLimiter != nil {
		auth.Use(d.RateLimiter.ByIP())
	}
	auth.Post("/register", d.Auth.Register)
	auth.Post("/login", d.Auth.Login)
	auth.Post("/logout", authed, d.Auth.Logout)
	auth.Get("/profile", authed, d.Auth.Profile)
	auth.Put("/profile", authed, d.Auth.UpdateProfile)

	users := api.Group("/users", authed)
	users.Get("/", d.User.List)
	users.Get("/mentors", d.User.Mentors)
	users.Get("/:id/status", d.User.Status)
	users.Get("/:id", d.User.Get)
	users.Put("/:id", withUser, d.User.Update)
	users.Delete("/:id", withUser, d.User.Delete)

	conversations := api.Group("/conversations", authed)
	conversations.Post("/", d.Conversations.Create)
	conversations.Get("/:userId", d.Conversations.ListForUser)

	messages := api.Group("/messages", authed)
	messages.Post("/", d.Messages.Send)
	messages.Get("/:conversationId", d.Messages.History)
	messages.Patch("/:id/read", d.Messages.MarkRead)

	jobs := api.Group("/jobs", authed)
	jobs.Post("/", employer, d.Jobs.Create)
	jobs.Get("/", d.Jobs.List)
	jobs.Get("/mine", employer, d.Jobs.Mine)
	jobs.Get("/:id", d.Jobs.Get)
	jobs.Put("/:id", employer, d.Jobs.Update)
	jobs.Delete("/:id", withUser, d.Jobs.Delete)

	applications := api.Group("/applications", authed)
	applications.Post("/:jobId", withUser, d.Applications.Apply)
	applications.Patch("/:id", employer, d.Applications.Review)
	applications.Get("/job/:jobId", employer, d.Applications.ListForJob)
	applications.Get("/mine", d.Applications.Mine)

	mentorships := api.Group("/mentorships", authed)
	mentorships.Post("/:mentorId", withUser, d.Mentorships.Request)
	mentorships.Get("/", d.Mentorships.List)
	mentorships.Patch("/:id/accept", d.Mentorships.Accept)
	mentorships.Patch("/:id/reject", d.Mentorships.Reject)

	resources := api.Group("/resources", authed)
	resources.Post("/", d.Resources.Upload)
	resources.Get("/", d.Resources.List)
	resources.Get("/mine/list", d.Resources.Mine)
	resources.Get("/:id", d.Resources.Get)
	resources.Delete("/:id", withUser, d.Resources.Delete)

	notifications := api.Group("/notifications", authed)
	notifications.Get("/", d.Notifications.List)
	notifications.Patch("/read-all", d.Notifications.MarkAllRead)
	notifications.Patch("/:id/read", d.Notifications.MarkRead)
	notifications.Delete("/:id", d.Notifications.Delete)
	notifications.Delete("/", d.Notifications.Clear)

	reports := api.Group("/reports", authed)
	reports.Post("/", d.Reports.Submit)
	reports.Get("/", admin, d.Reports.List)
	reports.Patch("/:id", admin, d.Reports.SetStatus)

	adminGroup := api.Group("/admin", authed, admin)
	adminGroup.Get("/stats", d.Admin.Stats)

	api.Get("/search", authed, d.Search.Search)
}

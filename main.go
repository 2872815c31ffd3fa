package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"study-organizer/app/config"
	applogger "study-organizer/app/logger"
	"study-organizer/app/mail"
	"study-organizer/app/metrics"
	"study-organizer/app/planner"
	"study-organizer/app/routes/calendar"
	"study-organizer/app/routes/notifications"
	"study-organizer/app/routes/schedule"
	"study-organizer/app/routes/settings"
	"study-organizer/app/routes/tasks"
	"study-organizer/app/routes/weekly"
	"study-organizer/app/store"
)

// customErrorHandler renders errors for page requests and returns JSON
// for API requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Study Organizer",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Study Organizer",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	zlog := applogger.New(os.Getenv("LOG_MODE"))
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// All state is in-memory for the lifetime of the process.
	st := store.NewStore()
	mailer := mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Timeout)
	notifier := planner.NewNotifier(mailer, cfg.Notify.HorizonDays, zlog)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.HTTPRequests.WithLabelValues(
			c.Method(), c.Route().Path, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	})

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/weekly")
	})

	// Setup weekly table routes
	weekly.SetupWeeklyRoutes(app, st)

	// Setup class schedule routes
	schedule.SetupScheduleRoutes(app, st)

	// Setup tasks routes
	tasks.SetupTasksRoutes(app, st)

	// Setup calendar routes
	calendar.SetupCalendarRoutes(app, st, cfg.Calendar.CellCap)

	// Setup settings routes
	settings.SetupSettingsRoutes(app, st, mailer)

	// Setup notifications routes
	notifications.SetupNotificationsRoutes(app, st, notifier)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	zlog.Info("Server starting", zap.String("addr", cfg.Server.Addr))
	log.Fatal(app.Listen(cfg.Server.Addr))
}

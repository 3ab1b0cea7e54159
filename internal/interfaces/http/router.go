package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/iec-registro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistrationUC *usecase.RegistrationUseCase
	DB             Pinger
	ServiceName    string
	Log            zerolog.Logger
}

// NewApp crea la aplicación Fiber con el manejador de errores y los middlewares comunes.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API. Debe llamarse después de montar cualquier middleware
// adicional: el último handler responde 404 a todo lo no registrado.
func Router(app *fiber.App, deps RouterDeps) {
	health := NewHealthHandler(deps.DB, deps.ServiceName, deps.Log)
	app.Get("/health", health.Health)

	api := app.Group("/api")
	api.Get("/test-db", health.Database)

	iecGroup := api.Group("/iec")
	iecHandler := NewIECHandler(deps.RegistrationUC)
	iecGroup.Post("/register", iecHandler.Register)
	iecGroup.Get("/user/:user_id", iecHandler.GetUser)
	iecGroup.Get("/company/:iec_code", iecHandler.GetCompany)

	app.Use(NotFound)
}

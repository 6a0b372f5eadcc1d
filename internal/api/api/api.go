package api

import (
	"eventfront/cmd/middleware"
	"eventfront/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

type Routers struct {
	Service   service.Service
	JWTSecret string
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(cors.Default())

	apiGroup := app.Group("/v1")

	// public surface consumed by the registration shell
	apiGroup.GET("/form", r.Service.RegistrationForm)
	apiGroup.POST("/register", r.Service.Register)
	apiGroup.GET("/autofill", r.Service.Autofill)
	apiGroup.GET("/check-in/:eventId/:qrId", r.Service.CheckInInfo)
	apiGroup.POST("/check-in/:eventId", r.Service.CheckIn)

	// dashboard surface, identity-provider gated
	admin := apiGroup.Group("/admin")
	admin.Use(middleware.AuthJWT(r.JWTSecret))

	admin.GET("/events", r.Service.ListEvents)
	admin.POST("/events", r.Service.CreateEvent)
	admin.GET("/events/:id", r.Service.GetEvent)
	admin.PATCH("/events/:id", r.Service.UpdateEvent)
	admin.DELETE("/events/:id", r.Service.DeleteEvent)
	admin.POST("/events/:id/toggle", r.Service.ToggleEvent)
	admin.POST("/events/:id/clone", r.Service.CloneEvent)
	admin.GET("/events/:id/registrations", r.Service.EventRegistrations)
	admin.GET("/events/:id/registrations/export", r.Service.ExportRegistrations)
	admin.PUT("/events/:id/fields", r.Service.ReplaceFields)

	admin.GET("/message-templates", r.Service.ListTemplates)
	admin.POST("/message-templates", r.Service.CreateTemplate)
	admin.PUT("/message-templates/:id", r.Service.UpdateTemplate)
	admin.DELETE("/message-templates/:id", r.Service.DeleteTemplate)

	admin.POST("/send/:channel/:eventId", r.Service.SendBulk)
	admin.GET("/send/:channel/:eventId/field-values/:fieldName", r.Service.FieldValues)
	admin.GET("/registrants-count/:eventId", r.Service.RegistrantsCount)

	admin.GET("/branding", r.Service.GetBranding)
	admin.PUT("/branding", r.Service.UpdateBranding)
	admin.GET("/themes", r.Service.ListThemes)
	admin.GET("/palettes", r.Service.ListPalettes)

	admin.POST("/qr-codes", r.Service.CreateQRCode)
	admin.GET("/qr-codes/event/:eventId", r.Service.QRCodesByEvent)
	admin.DELETE("/qr-codes/:id", r.Service.DeleteQRCode)

	// static shell
	app.GET("/", func(c *ginext.Context) {
		c.File("./frontend/index.html")
	})
	app.GET("/thank-you", func(c *ginext.Context) {
		c.File("./frontend/thank-you.html")
	})
	app.GET("/no-events", func(c *ginext.Context) {
		c.File("./frontend/no-events.html")
	})
	app.GET("/sign-in", func(c *ginext.Context) {
		c.File("./frontend/sign-in.html")
	})
	app.GET("/dashboard", func(c *ginext.Context) {
		c.File("./frontend/dashboard.html")
	})
	app.GET("/check-in/:eventId/:qrId", func(c *ginext.Context) {
		c.File("./frontend/check-in.html")
	})
	app.Static("/frontend", "./frontend")

	return app
}

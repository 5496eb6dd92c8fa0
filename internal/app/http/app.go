package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmiddleware "nevod_store/internal/middleware"
	httprouters "nevod_store/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "nevod_store/docs"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, sessionSecret, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// adminOnlyMiddleware пропускает только запросы с признаком администратора
// в сессии. Саму аутентификацию выполняет внешний сервис, который после
// входа проставляет is_admin в сессионную cookie.
func (s *Server) adminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get("session", c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "session required"})
		}

		isAdmin, ok := sess.Values["is_admin"].(bool)
		if !ok || !isAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api/v1")
	{
		api.GET("/galleries", s.routers.ListGalleries)
		api.GET("/galleries/:gallery_id", s.routers.GetGallery)
		api.GET("/categories", s.routers.ListCategories)
		api.GET("/categories/:category_id/banner", s.routers.GetCategoryBanner)
		api.GET("/products", s.routers.ListProducts)
		api.GET("/products/:product_id", s.routers.GetProduct)
		api.GET("/information", s.routers.GetInformation)
		api.GET("/shop-links", s.routers.ListShopLinks)

		admin := api.Group("", s.adminOnlyMiddleware)
		{
			admin.POST("/galleries", s.routers.CreateGallery)
			admin.PUT("/galleries/:gallery_id", s.routers.UpdateGallery)
			admin.DELETE("/galleries/:gallery_id", s.routers.DeleteGallery)

			admin.POST("/categories", s.routers.CreateCategory)
			admin.PUT("/categories/:category_id", s.routers.UpdateCategory)
			admin.DELETE("/categories/:category_id", s.routers.DeleteCategory)
			admin.PUT("/categories/:category_id/banner", s.routers.SaveCategoryBanner)

			admin.POST("/products", s.routers.CreateProduct)
			admin.PUT("/products/:product_id", s.routers.UpdateProduct)
			admin.DELETE("/products/:product_id", s.routers.DeleteProduct)

			admin.PUT("/information", s.routers.SaveInformation)

			admin.POST("/shop-links", s.routers.CreateShopLink)
			admin.PUT("/shop-links/:link_id", s.routers.UpdateShopLink)
			admin.DELETE("/shop-links/:link_id", s.routers.DeleteShopLink)
		}
	}
}

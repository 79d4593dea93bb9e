package router

import (
	"net/http"
	"poe-recomb-sim/internal/cache"
	"poe-recomb-sim/internal/env"
	simulate_router "poe-recomb-sim/internal/router/simulate"
	"poe-recomb-sim/internal/simulation"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Config struct {
	Simulator *simulation.Simulator
}

func NewRouter(config Config) *echo.Echo {
	e := echo.New()

	// Set up middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	sim := config.Simulator
	if sim == nil {
		selectionCache, err := cache.NewLruCache(env.DefaultCacheSize)
		if err != nil {
			panic(err)
		}
		sim = simulation.New(simulation.Config{Cache: selectionCache})
	}

	api := e.Group("/api")
	api.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	simulate_router.Bind(api, sim)

	return e
}

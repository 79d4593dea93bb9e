package simulate_router

import (
	"errors"
	"net/http"
	"poe-recomb-sim/internal/loader"
	"poe-recomb-sim/internal/models"
	"poe-recomb-sim/internal/report"
	"poe-recomb-sim/internal/simulation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Request struct {
	ReportBase bool              `json:"report_base"`
	Items      []loader.ItemSpec `json:"items"`
}

func badRequest(c echo.Context, code string, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   code,
		"message": err.Error(),
	})
}

// isInputError reports whether err was caused by the submitted items rather
// than by the server.
func isInputError(err error) bool {
	return errors.Is(err, loader.ErrInvalidScenario) ||
		errors.Is(err, models.ErrInvalidItem) ||
		errors.Is(err, simulation.ErrUnsupportedPoolSize)
}

func Bind(e *echo.Group, sim *simulation.Simulator) *echo.Group {
	e.GET("/chances", func(c echo.Context) error {
		return c.JSON(http.StatusOK, simulation.AffixChances)
	})

	e.POST("/simulate", func(c echo.Context) error {
		var req Request
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid_body", err)
		}

		scenario := loader.Scenario{Name: "request", ReportBase: req.ReportBase, Items: req.Items}
		item1, item2, err := scenario.Pair()
		if err != nil {
			if isInputError(err) {
				return badRequest(c, "invalid_items", err)
			}
			return c.String(http.StatusInternalServerError, err.Error())
		}

		result, err := sim.Simulate(item1, item2, scenario.ReportBase)
		if err != nil {
			if isInputError(err) {
				return badRequest(c, "invalid_items", err)
			}
			log.Error().Err(err).Msgf("Failed to simulate %s + %s", item1, item2)
			return c.String(http.StatusInternalServerError, err.Error())
		}

		if c.QueryParam("format") == "text" {
			return c.String(http.StatusOK, report.Text(result))
		}

		return c.JSON(http.StatusOK, report.NewView(result))
	})

	return e
}

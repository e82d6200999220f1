package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core/timetable"
)

type timetableApi struct {
	store *timetable.Store
}

func registerTimetableAPI(g *echo.Group, store *timetable.Store) {
	api := timetableApi{store: store}

	g.GET("/timetable/:section", api.bySection)
}

func (api *timetableApi) bySection(ctx echo.Context) error {
	entries, err := api.store.BySection(ctx.Param("section"))
	if err != nil {
		if errors.Cause(err) == timetable.ErrNotFound {
			return errTimetableNotFound
		}
		return errors.Wrap(err, "querying timetable")
	}
	return ctx.JSON(http.StatusOK, entries)
}

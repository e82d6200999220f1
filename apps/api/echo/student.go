package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core/student"
)

type studentApi struct {
	svc *student.Service
}

func registerStudentAPI(g *echo.Group, svc *student.Service) {
	api := studentApi{svc: svc}

	g.GET("/students/section/:section", api.bySection)
}

// bySection lists one section's roster; unknown sections yield an empty list.
func (api *studentApi) bySection(ctx echo.Context) error {
	students, err := api.svc.BySection(ctx.Param("section"))
	if err != nil {
		return errors.Wrap(err, "querying students by section")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core/attendance"
)

type attendanceApi struct {
	svc      *attendance.Service
	validate *validator.Validate
}

func registerAttendanceAPI(g *echo.Group, svc *attendance.Service, validate *validator.Validate) {
	api := attendanceApi{
		svc:      svc,
		validate: validate,
	}

	g.POST("/attendance", api.submit)
	// the admin dashboard and the student portal hit different paths for the
	// same history listing
	g.GET("/attendance/:adminNo", api.history)
	g.GET("/student-attendance/:adminNo", api.history)
}

func (api *attendanceApi) submit(ctx echo.Context) error {
	var data attendance.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Submit(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Attendance recorded successfully!",
	})
}

func (api *attendanceApi) history(ctx echo.Context) error {
	records, err := api.svc.History(ctx.Param("adminNo"))
	if err != nil {
		return errors.Wrap(err, "querying attendance history")
	}
	if records == nil {
		records = []attendance.Record{}
	}
	return ctx.JSON(http.StatusOK, records)
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

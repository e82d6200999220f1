package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core"
	"github.com/campusmark/rollcall/core/student"
)

// Roles accepted by the login endpoint.
const (
	roleAdmin   = "admin"
	roleStudent = "student"
)

type authApi struct {
	conf     *core.Config
	svc      *student.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, conf *core.Config, svc *student.Service, validate *validator.Validate) {
	api := authApi{
		conf:     conf,
		svc:      svc,
		validate: validate,
	}

	// no session or token is issued; the caller keeps the returned identity
	g.POST("/login", api.login)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	switch data.Role {
	case roleAdmin:
		if data.AdminNo == api.conf.Auth.AdminUsername && data.RollNo == api.conf.Auth.AdminSecret {
			return ctx.JSON(http.StatusOK, LoginResponse{
				Success: true,
				User:    UserResponse{AdminNo: api.conf.Auth.AdminUsername, Name: "Administrator", Role: roleAdmin},
			})
		}
	case roleStudent:
		s, err := api.svc.Authenticate(student.Credentials{AdminNo: data.AdminNo, RollNo: data.RollNo})
		if err == nil {
			return ctx.JSON(http.StatusOK, LoginResponse{
				Success: true,
				User: UserResponse{
					AdminNo: s.AdminNo,
					RollNo:  string(s.RollNo),
					Name:    s.Name,
					Role:    roleStudent,
				},
			})
		}
		if errors.Cause(err) != student.ErrNotFound {
			return errors.Wrap(err, "authenticating student")
		}
	}

	// no hint on which part was wrong
	return errInvalidCredentials
}

type (
	LoginRequest struct {
		AdminNo string `json:"adminNo" validate:"required"`
		RollNo  string `json:"rollNo" validate:"required"`
		Role    string `json:"role" validate:"required"`
	}

	UserResponse struct {
		AdminNo string `json:"adminNo"`
		RollNo  string `json:"rollNo,omitempty"`
		Name    string `json:"name"`
		Role    string `json:"role"`
	}

	LoginResponse struct {
		Success bool         `json:"success"`
		User    UserResponse `json:"user"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.AdminNo = core.CleanString(lr.AdminNo)
	lr.RollNo = core.CleanString(lr.RollNo)
	lr.Role = core.CleanString(lr.Role, true /* lower */)
	return validate.Struct(lr)
}

package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/campusmark/rollcall/apps/api/echo"
	"github.com/campusmark/rollcall/core"
	"github.com/campusmark/rollcall/core/attendance"
	"github.com/campusmark/rollcall/core/student"
	"github.com/campusmark/rollcall/core/timetable"
	logsvc "github.com/campusmark/rollcall/services/logger"
	"github.com/campusmark/rollcall/storage/inmem"
	"github.com/campusmark/rollcall/storage/jsonfile"
	"github.com/campusmark/rollcall/storage/pgstore"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up logger
	var logger core.Logger
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up storage
	studentRepo, attendanceRepo, err := setUpStorage(conf, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}

	// set up services
	studentSvc := student.NewService(studentRepo)
	attendanceSvc := attendance.NewService(attendanceRepo, conf, logger)
	ttStore := timetable.NewStore(conf.Storage.TimetablePath, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			StudentSvc:    studentSvc,
			AttendanceSvc: attendanceSvc,
			Timetable:     ttStore,
			Validate:      validate,
			Translator:    translator,
		},
	)
	logger.Info(fmt.Sprintf("API server listening on %s", conf.Server.Addr))
	server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpStorage(conf *core.Config, logger core.Logger) (student.Repository, attendance.Repository, error) {
	switch conf.Storage.Backend {
	case "jsonfile":
		db, err := jsonfile.Open(conf, logger)
		if err != nil {
			return nil, nil, err
		}
		return jsonfile.NewStudentRepository(db), jsonfile.NewAttendanceRepository(db), nil

	case "postgres":
		db, err := pgstore.Open(conf)
		if err != nil {
			return nil, nil, err
		}
		studentRepo := pgstore.NewStudentRepository(db)
		// the roster file stays the source of truth; sync it in at startup
		if students, err := jsonfile.LoadRoster(conf.Storage.RosterPath); err != nil {
			logger.Error(fmt.Sprintf("loading roster %s, keeping the stored roster: %v", conf.Storage.RosterPath, err), err)
		} else if err := studentRepo.ReplaceRoster(students); err != nil {
			return nil, nil, err
		}
		return studentRepo, pgstore.NewAttendanceRepository(db), nil

	case "inmem":
		db, err := inmem.Open()
		if err != nil {
			return nil, nil, err
		}
		return inmem.NewStudentRepository(db), inmem.NewAttendanceRepository(db), nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

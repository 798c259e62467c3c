package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kyalo/elimu/apps/api/echo"
	"github.com/kyalo/elimu/core"
	"github.com/kyalo/elimu/core/course"
	"github.com/kyalo/elimu/core/dashboard"
	"github.com/kyalo/elimu/core/instructor"
	"github.com/kyalo/elimu/core/lesson"
	"github.com/kyalo/elimu/services/email"
	"github.com/kyalo/elimu/services/logger"
	"github.com/kyalo/elimu/storage/database/dummy"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	logger := logsvc.NewRollbarLogger(std, core.Conf)
	logger.Enable(!core.Conf.Debug) // only report remotely outside DEV

	// set up DB & repos
	db, err := dummydb.Open()
	if err != nil {
		std.Fatalf("opening database: %v", err)
	}
	if os.Getenv("ELIMU_SEED_DEMO") != "" {
		if err := dummydb.Seed(db); err != nil {
			std.Fatalf("seeding demo catalog: %v", err)
		}
	}
	courseRepo := dummydb.NewCourseRepository(db)
	lessonRepo := dummydb.NewLessonRepository(db)
	instructorRepo := dummydb.NewInstructorRepository(db)

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// shutdown channel; the API error handler signals it on unrecoverable errors
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:           core.Conf.ServerAddr(),
			Logger:         logger,
			SignalShutdown: func() { shutdown <- syscall.SIGTERM },
			CourseSvc:      course.NewService(courseRepo),
			LessonSvc:      lesson.NewService(lessonRepo),
			InstructorSvc:  instructor.NewService(instructorRepo, mailSvc),
			DashboardSvc:   dashboard.NewService(courseRepo, lessonRepo, instructorRepo),
		},
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		logger.Fatal("server error", err)
	case sig := <-shutdown:
		logger.Info("shutdown started", sig)

		ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			logger.Error("graceful shutdown failed", err)
		}
	}
}

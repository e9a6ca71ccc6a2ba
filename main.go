package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
	"github.com/sahdevkumar/Result-Management-sub000/handlers/api/directory"
	"github.com/sahdevkumar/Result-Management-sub000/handlers/api/reports"
	"github.com/sahdevkumar/Result-Management-sub000/handlers/api/templates"
	"github.com/sahdevkumar/Result-Management-sub000/printing"
	"github.com/sahdevkumar/Result-Management-sub000/stores"
)

func setupRouter(templateStore core.TemplateStore, dir core.Directory) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	corsOptions := cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if origin == "" {
				return false
			}

			parsed, err := url.Parse(origin)
			if err != nil {
				return false
			}

			switch parsed.Scheme {
			case "http", "https":
				switch parsed.Hostname() {
				case "localhost", "127.0.0.1", "[::1]":
					return true
				}
			}

			return false
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	r.Use(cors.Handler(corsOptions))

	r.Route("/api/templates", func(r chi.Router) {
		r.Post("/", templates.HandleSave(templateStore))
		r.Get("/", templates.HandleList(templateStore))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", templates.HandleGet(templateStore))
			r.Delete("/", templates.HandleDelete(templateStore))
		})
	})

	// Report hydration and printing need the school's master data, which only
	// the database-backed stores expose.
	if dir != nil {
		assembler := printing.NewAssembler(templateStore, dir)

		r.Route("/api/reports", func(r chi.Router) {
			r.Post("/preview", reports.HandlePreview(assembler))
			r.Post("/print", reports.HandlePrint(assembler))
		})

		r.Route("/api/directory", func(r chi.Router) {
			r.Get("/students", directory.HandleListStudents(dir))
			r.Get("/exams", directory.HandleListExams(dir))
			r.Get("/subjects", directory.HandleListSubjects(dir))
			r.Get("/school", directory.HandleGetSchoolInfo(dir))
		})

		logrus.Info("Report API routes registered")
	} else {
		logrus.Warn("Report API not available - requires a database-backed store")
	}

	return r
}

func waitForShutdown(server *http.Server) {
	exit := make(chan struct{})
	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				close(exit)
				return
			}
		}
	}()

	<-exit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("Forced shutdown")
	}
	fmt.Println("Shutting down...")
}

func main() {
	logLevel := flag.String("loglevel", "info", "Set the logging level: debug, info, warn, error, fatal, panic")
	listenAddr := flag.String("listen", ":3002", "Set the server listen address")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}
	logrus.SetLevel(level)

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on process environment")
	}

	templateStore := stores.GetStore()
	var dir core.Directory
	if d, ok := templateStore.(core.Directory); ok {
		dir = d
	}

	r := setupRouter(templateStore, dir)

	server := &http.Server{Addr: *listenAddr, Handler: r}
	logrus.WithField("addr", *listenAddr).Info("starting server")
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithField("event", "start server").Fatal(err)
		}
	}()

	logrus.Debug("Server is running in the background")
	waitForShutdown(server)
}

// Command tessserver exposes tesseroid field evaluation as an HTTP
// job API: clients submit a model and a grid, the evaluation runs
// asynchronously, and status/results are polled by job ID.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bxrne/launchrail/internal/config"
	"github.com/bxrne/launchrail/internal/jobs"
	"github.com/bxrne/launchrail/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tessserver:", err)
		os.Exit(1)
	}

	log := logger.GetLogger(cfg.Logging.Level)
	manager := jobs.NewManager(log)

	r := gin.New()
	r.Use(gin.Recovery(), logger.LoggingMiddleware(log))

	srv := &server{cfg: cfg, log: log, jobs: manager}
	r.POST("/jobs", srv.submitJob)
	r.GET("/jobs/:id", srv.jobStatus)
	r.GET("/jobs/:id/report", srv.jobReport)

	log.Info("starting tesseroid evaluation service", "addr", cfg.Server.BindAddress)
	if err := r.Run(cfg.Server.BindAddress); err != nil {
		log.Fatal("server exited", "error", err)
	}
}

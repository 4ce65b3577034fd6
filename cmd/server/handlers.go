package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zerodha/logf"

	"github.com/bxrne/launchrail/internal/config"
	"github.com/bxrne/launchrail/internal/jobs"
	"github.com/bxrne/launchrail/internal/reporting"
	"github.com/bxrne/launchrail/pkg/field"
	"github.com/bxrne/launchrail/pkg/grid"
	"github.com/bxrne/launchrail/pkg/kernel"
	"github.com/bxrne/launchrail/pkg/tesseroid"
)

type server struct {
	cfg  *config.Config
	log  *logf.Logger
	jobs *jobs.Manager
}

// tesseroidPayload is the wire shape of a single model element.
type tesseroidPayload struct {
	West, East, South, North, Top, Bottom, Density float64
}

// jobPayload is the wire shape of a POST /jobs request.
type jobPayload struct {
	Tesseroids []tesseroidPayload
	Grid       grid.Spec
	Component  string
	Algorithm  string
	OrderLon   int
	OrderLat   int
	OrderR     int
}

func (s *server) submitJob(c *gin.Context) {
	var payload jobPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(payload.Tesseroids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tesseroids must not be empty"})
		return
	}

	elements := make([]tesseroid.Tesseroid, 0, len(payload.Tesseroids))
	for i, tp := range payload.Tesseroids {
		t, err := tesseroid.New(tp.West, tp.East, tp.South, tp.North, tp.Top, tp.Bottom, tp.Density)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("tesseroid %d: %v", i, err)})
			return
		}
		elements = append(elements, t)
	}

	if err := payload.Grid.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, ok := kernel.Parse(payload.Component)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown component %q", payload.Component)})
		return
	}

	var algorithm kernel.Algorithm
	switch payload.Algorithm {
	case "", "2D":
		algorithm = kernel.TwoD
	case "3D":
		algorithm = kernel.ThreeD
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown algorithm %q", payload.Algorithm)})
		return
	}

	orders := field.Orders{Lon: payload.OrderLon, Lat: payload.OrderLat, R: payload.OrderR}
	if orders.Lon == 0 {
		orders.Lon = s.cfg.Quadrature.DefaultOrderLon
	}
	if orders.Lat == 0 {
		orders.Lat = s.cfg.Quadrature.DefaultOrderLat
	}
	if orders.R == 0 {
		orders.R = s.cfg.Quadrature.DefaultOrderR
	}

	req := jobs.Request{
		Model:     tesseroid.NewModel(elements...),
		Grid:      payload.Grid,
		Component: component,
		Algorithm: algorithm,
		Orders:    orders,
	}
	id := s.jobs.Submit(req)
	c.JSON(http.StatusAccepted, gin.H{"job_id": id})
}

func (s *server) jobStatus(c *gin.Context) {
	job, ok := s.jobs.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": jobs.ErrJobNotFound.Error()})
		return
	}

	resp := gin.H{"job_id": job.ID, "state": job.State()}
	if job.Err != nil {
		resp["error"] = job.Err.Error()
	}
	if job.Result != nil {
		resp["stats"] = job.Result.Summarize()
		resp["result"] = job.Result
	}
	c.JSON(http.StatusOK, resp)
}

func (s *server) jobReport(c *gin.Context) {
	job, ok := s.jobs.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": jobs.ErrJobNotFound.Error()})
		return
	}
	if job.State() != jobs.StateDone {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("job is %s, not done", job.State())})
		return
	}

	renderer, err := reporting.NewTemplateRenderer(s.log, s.cfg.Server.TemplatesDir, s.cfg.Server.ReportsDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report := &reporting.JobReport{
		JobID:     job.ID,
		Component: job.Request.Component.String(),
		Algorithm: job.Request.Algorithm.String(),
		OrderLon:  job.Request.Orders.Lon,
		OrderLat:  job.Request.Orders.Lat,
		OrderR:    job.Request.Orders.R,
		Spec:      job.Request.Grid,
		Stats:     job.Result.Summarize(),
	}
	if err := renderer.CreateReportBundle(report, job.Result, s.cfg.Server.ReportsDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.File(fmt.Sprintf("%s/%s.html", s.cfg.Server.ReportsDir, job.ID))
}

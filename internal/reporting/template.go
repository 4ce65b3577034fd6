package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zerodha/logf"

	"github.com/bxrne/launchrail/pkg/grid"
)

// TemplateRenderer renders a job's report page and owns the directory
// the generated plot SVGs are written to.
type TemplateRenderer struct {
	log       *logf.Logger
	templates *template.Template
	assetsDir string
}

// NewTemplateRenderer parses every *.tmpl file under templatesDir with
// the renderer's function map and ensures assetsDir exists for plot
// output.
func NewTemplateRenderer(log *logf.Logger, templatesDir, assetsDir string) (*TemplateRenderer, error) {
	if log == nil {
		return nil, fmt.Errorf("reporting: logger cannot be nil")
	}

	if _, err := os.Stat(templatesDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("reporting: templates directory does not exist: %w", err)
	}

	if _, err := os.Stat(assetsDir); os.IsNotExist(err) {
		if err := os.MkdirAll(assetsDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("reporting: create assets directory: %w", err)
		}
	}

	funcMap := template.FuncMap{
		"sub": func(a, b float64) float64 { return a - b },
		"embedSVG": func(plotFileName, altText string) (template.HTML, error) {
			if plotFileName == "" {
				log.Warn("embedSVG called with empty plotFileName")
				return placeholderSVG(altText), nil
			}
			absolutePlotPath := filepath.Join(assetsDir, plotFileName)
			content, err := os.ReadFile(absolutePlotPath)
			if err != nil {
				log.Error("embedSVG failed to read file", "path", absolutePlotPath, "error", err)
				return placeholderSVG(altText), nil
			}
			return template.HTML(content), nil
		},
		"formatFloat": func(value float64, precision int) string {
			return fmt.Sprintf(fmt.Sprintf("%%.%df", precision), value)
		},
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"replace": func(input, from, to string) string {
			return strings.ReplaceAll(input, from, to)
		},
		"title": func(input string) string {
			return cases.Title(language.English).String(input)
		},
		"default": func(def, val interface{}) interface{} {
			if val == nil {
				return def
			}
			if s, ok := val.(string); ok && s == "" {
				return def
			}
			v := reflect.ValueOf(val)
			if v.Kind() == reflect.Ptr && v.IsNil() {
				return def
			}
			return val
		},
	}

	templatePattern := filepath.Join(templatesDir, "*.tmpl")
	tmpl, err := template.New("").Funcs(funcMap).ParseGlob(templatePattern)
	if err != nil {
		return nil, fmt.Errorf("reporting: parse templates %s: %w", templatePattern, err)
	}

	return &TemplateRenderer{log: log, templates: tmpl, assetsDir: assetsDir}, nil
}

func placeholderSVG(altText string) template.HTML {
	return template.HTML(fmt.Sprintf(
		"<div class='placeholder-svg' style='background:#f5f5f5;border:1px dashed #ccc;padding:20px;text-align:center;'>%s not available</div>",
		altText))
}

// RenderJobReport executes the "report.html.tmpl" template against report.
func (tr *TemplateRenderer) RenderJobReport(report *JobReport) (string, error) {
	if report == nil {
		return "", fmt.Errorf("reporting: job report cannot be nil")
	}
	if report.GeneratedAt == "" {
		report.GeneratedAt = time.Now().Format(time.RFC1123)
	}
	if report.Extensions == nil {
		report.Extensions = make(map[string]interface{})
	}

	tmpl := tr.templates.Lookup("report.html.tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("reporting: template 'report.html.tmpl' not found")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("reporting: execute report template: %w", err)
	}
	return buf.String(), nil
}

// CreateReportBundle generates the longitude profile plot and ASCII
// summary table for rg, renders the HTML report and writes the report
// under outputDir; the plot is written to the renderer's assets
// directory.
func (tr *TemplateRenderer) CreateReportBundle(report *JobReport, rg *grid.ResultGrid, outputDir string) error {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("reporting: create output directory: %w", err)
	}

	report.PlotFileName = fmt.Sprintf("%s_profile.svg", report.JobID)
	if err := tr.GenerateLonProfilePlot(rg, report.PlotFileName); err != nil {
		tr.log.Warn("failed to generate longitude profile plot", "error", err)
		report.PlotFileName = ""
	}
	report.SummaryTable = SummaryTable(rg)

	rendered, err := tr.RenderJobReport(report)
	if err != nil {
		return fmt.Errorf("reporting: render job report: %w", err)
	}

	reportPath := filepath.Join(outputDir, fmt.Sprintf("%s.html", report.JobID))
	if err := os.WriteFile(reportPath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("reporting: write report file: %w", err)
	}

	tr.log.Info("report bundle created", "job_id", report.JobID, "path", reportPath)
	return nil
}

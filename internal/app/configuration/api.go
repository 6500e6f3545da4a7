package configuration

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/har-tools/har2openapi/internal/app/harparse"
	"github.com/har-tools/har2openapi/internal/app/httpresponse"
	"github.com/har-tools/har2openapi/internal/app/observability"
	"github.com/har-tools/har2openapi/internal/app/openapi"
	"github.com/har-tools/har2openapi/internal/app/pipeline"
)

type api struct {
	config  Config
	metrics *observability.Metrics
}

// ServeAPI starts the conversion server and returns it so the caller can
// shut it down.
func ServeAPI(config Config) *echo.Echo {
	server := NewServer(config)

	go func() {
		if err := server.Start(config.ServerAddress); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	return server
}

// NewServer builds the echo server without starting it.
func NewServer(config Config) *echo.Echo {
	a := &api{config: config, metrics: observability.NewMetrics()}

	server := echo.New()
	server.HideBanner = true

	server.POST("/convert", a.convertHandler)
	server.GET("/ready", readyHandler)
	server.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.metrics.Registry(), promhttp.HandlerOpts{})))

	return server
}

func readyHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// convertHandler accepts a HAR document and responds with the generated
// description. The format query parameter selects json (default) or
// yaml output.
func (a *api) convertHandler(c echo.Context) error {
	id := uuid.NewString()

	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		a.metrics.ConversionsTotal.WithLabelValues("error").Inc()
		return c.JSON(
			http.StatusBadRequest,
			httpresponse.Errorf("unable to read request body. %s", err.Error()),
		)
	}

	entries, err := harparse.Parse(data, "request")
	if err != nil {
		a.metrics.ConversionsTotal.WithLabelValues("error").Inc()
		return c.JSON(
			http.StatusBadRequest,
			httpresponse.Errorf("unable to parse capture from data. %s", err.Error()),
		)
	}

	log.Infof("conversion %s: %d entries", id, len(entries))

	doc, err := pipeline.Build([][]harparse.Entry{entries}, pipeline.Options{
		Metadata: openapi.Metadata{
			Title:        a.config.Title,
			Version:      a.config.Version,
			ServerURL:    a.config.ServerURL,
			BearerAuth:   a.config.BearerAuth,
			APIKeyHeader: a.config.APIKeyHeader,
		},
	})
	if err != nil {
		a.metrics.ConversionsTotal.WithLabelValues("error").Inc()
		return c.JSON(
			http.StatusUnprocessableEntity,
			httpresponse.Errorf("unable to convert capture. %s", err.Error()),
		)
	}

	a.metrics.ConversionsTotal.WithLabelValues("success").Inc()
	a.metrics.EntriesTotal.Add(float64(len(entries)))
	a.metrics.PathsEmitted.Add(float64(len(doc.Paths)))

	if c.QueryParam("format") == "yaml" {
		out, err := doc.YAML()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, httpresponse.Errorf("unable to render document. %s", err.Error()))
		}
		return c.Blob(http.StatusOK, "application/yaml", out)
	}

	out, err := doc.JSON()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httpresponse.Errorf("unable to render document. %s", err.Error()))
	}
	return c.JSONBlob(http.StatusOK, out)
}

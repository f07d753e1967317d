package commands

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cityboard/internal/app"
	"cityboard/internal/domain"
)

var listenAddr string

// serve: the cities page over HTTP, one load cycle per request.
func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cities page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)
			addr := appCtx.Config.Listen
			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(appCtx, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			logger.Info().Str("addr", addr).Msg("cities page listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default :8080)")
	return cmd
}

func newRouter(w *app.Wire, l zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog(l))

	page := pageHandler(w)
	r.GET("/", page)
	r.GET("/cities", page)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func pageHandler(w *app.Wire) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		res, err := w.RenderPage(c.Request.Context(), &buf)
		if err != nil {
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, "render failed")
			return
		}
		status := http.StatusOK
		if res.State == domain.StateError {
			status = http.StatusBadGateway
		}
		c.Data(status, "text/html; charset=utf-8", buf.Bytes())
	}
}

// accessLog records method, path, remote, status, bytes and duration, and
// hands the logger to handlers through the request context.
func accessLog(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
		c.Next()
		l.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("remote", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/an-ttt/MySpyder-sub002/internal/system"
)

// Server serves the JSON wrapping API on Addr.
type Server struct {
	Addr string
}

// Start serves the API on s.Addr until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: NewRouter(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("api server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// NewRouter builds the gin engine with all API routes mounted.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())
	mountAPIGin(r)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

// requestLogger reports each request through the shared logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		system.Logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur", time.Since(start))
	}
}

func mountAPIGin(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
	api.GET("/version", gin.WrapF(versionHandler))
	api.GET("/profiles", gin.WrapF(profilesHandler))

	// Wrapping
	api.POST("/wrap", gin.WrapF(wrapHandler))
	api.POST("/fill", gin.WrapF(fillHandler))
	api.POST("/shorten", gin.WrapF(shortenHandler))
	api.POST("/chunks", gin.WrapF(chunksHandler))
	api.POST("/dedent", gin.WrapF(dedentHandler))
}

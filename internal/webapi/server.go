// Package webapi exposes pane control over HTTP so editors and scripts can
// drive easel without speaking the socket protocol themselves.
package webapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easel/internal/markdown"
	"easel/internal/mux"
	"easel/internal/system"
	"easel/internal/transport"
	"easel/internal/version"
)

// Server bridges HTTP requests to tmux panes and their control sockets.
type Server struct {
	Addr     string
	Mux      mux.Controller
	Registry mux.Registry
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.mount(r)

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("api server listening", "addr", s.Addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) mount(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": version.AppVersion})
	})
	api.GET("/panes", s.listPanes)
	api.POST("/open", s.openPane)
	api.POST("/panes/:id/show", s.paneOp(buildShow))
	api.POST("/panes/:id/update", s.paneOp(buildUpdate))
	api.POST("/panes/:id/diffs", s.paneOp(buildDiffs))
	api.POST("/panes/:id/scroll", s.paneOp(buildScroll))
	api.POST("/panes/:id/select", s.paneOp(buildSelect))
	api.DELETE("/panes/:id", s.closePane)
}

type paneInfo struct {
	mux.Pane
	Socket string `json:"socket,omitempty"`
}

func (s *Server) listPanes(c *gin.Context) {
	panes, err := s.Mux.ListPanes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	entries, err := s.Registry.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sockets := make(map[string]string, len(entries))
	for _, e := range entries {
		sockets[e.PaneID] = e.Socket
	}
	out := make([]paneInfo, 0, len(panes))
	for _, p := range panes {
		out = append(out, paneInfo{Pane: p, Socket: sockets[p.ID]})
	}
	c.JSON(http.StatusOK, out)
}

type openRequest struct {
	Content  string `json:"content"`
	File     string `json:"file"`
	Title    string `json:"title"`
	Vertical bool   `json:"vertical"`
	Percent  int    `json:"percent"`
}

func (s *Server) openPane(c *gin.Context) {
	var req openRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" && req.File == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "need content or file"})
		return
	}
	entry, err := s.Mux.SpawnViewer(c.Request.Context(), s.Registry, mux.SpawnOptions{
		Title:    req.Title,
		Vertical: req.Vertical,
		Percent:  req.Percent,
		Content:  req.Content,
		File:     req.File,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"paneId": entry.PaneID, "socket": entry.Socket})
}

type opRequest struct {
	Content string          `json:"content"`
	Title   string          `json:"title"`
	Diffs   []markdown.Diff `json:"diffs"`
	Delta   int             `json:"delta"`
	Enable  *bool           `json:"enable"`
}

func buildShow(r opRequest) transport.Request {
	return transport.Request{Op: transport.OpShow, Content: r.Content, Title: r.Title}
}

func buildUpdate(r opRequest) transport.Request {
	return transport.Request{Op: transport.OpUpdate, Content: r.Content, Diffs: r.Diffs}
}

func buildDiffs(r opRequest) transport.Request {
	return transport.Request{Op: transport.OpDiffs, Diffs: r.Diffs}
}

func buildScroll(r opRequest) transport.Request {
	return transport.Request{Op: transport.OpScroll, Delta: r.Delta}
}

func buildSelect(r opRequest) transport.Request {
	enable := true
	if r.Enable != nil {
		enable = *r.Enable
	}
	return transport.Request{Op: transport.OpSelect, Enable: enable}
}

// paneOp resolves the pane's socket, sends one request, and waits for the
// ack.
func (s *Server) paneOp(build func(opRequest) transport.Request) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body opRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entry, ok, err := s.Registry.Find(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown pane"})
			return
		}
		ev, err := s.call(c.Request.Context(), entry.Socket, build(body))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ev)
	}
}

func (s *Server) closePane(c *gin.Context) {
	entry, err := s.Mux.ClosePane(c.Request.Context(), s.Registry, c.Param("id"))
	if errors.Is(err, mux.ErrNoPane) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": entry.PaneID})
}

func (s *Server) call(ctx context.Context, socket string, req transport.Request) (transport.Event, error) {
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	cl, err := transport.Dial(cctx, socket)
	if err != nil {
		return transport.Event{}, err
	}
	defer cl.Close()
	return cl.Call(cctx, req)
}

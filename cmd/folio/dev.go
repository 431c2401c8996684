package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/foliopress/folio/internal/cache"
	"github.com/foliopress/folio/internal/site"
	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/vex/builder"
)

type devServer struct {
	host        string
	port        int
	builder     *site.Builder
	renderCache *cache.Cache
	watcher     *fsnotify.Watcher
	wsClients   map[*websocket.Conn]bool
	wsMutex     sync.RWMutex
	upgrader    websocket.Upgrader
	buildMutex  sync.Mutex
}

func newDevCommand() *cobra.Command {
	var port int
	var host string
	var cwd string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long:  `Builds the site, serves it over HTTP, and rebuilds with live reload on every change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cwd != "" {
				if err := os.Chdir(cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", cwd, err)
				}
			}
			return runDev(host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the dev server on")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind the dev server to")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Project directory (defaults to current)")

	return cmd
}

func runDev(host string, port int) error {
	server := &devServer{
		host:      host,
		port:      port,
		wsClients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins in dev mode
				return true
			},
		},
	}

	renderCache, err := cache.Open(cache.Config{Dir: filepath.Join(".", ".folio-cache")})
	if err != nil {
		log.Printf("⚠️  Failed to initialize render cache: %v", err)
	} else {
		server.renderCache = renderCache
	}

	if err := server.reload(); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}

	// CLI flags take precedence over folio.yml
	cfg := server.builder.Config()
	if server.port == 0 {
		server.port = cfg.Dev.Port
	}
	if server.host == "" {
		server.host = cfg.Dev.Host
	}

	log.Println("🚀 Starting Folio dev server...")
	if err := server.rebuild(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()
	server.watcher = watcher

	if err := server.setupWatcher(); err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}
	go server.watchFiles()

	mux := http.NewServeMux()
	mux.HandleFunc("/livereload", server.handleWebSocket)
	mux.HandleFunc("/favicon.ico", server.serveFavicon)
	mux.HandleFunc("/", server.serveStatic)

	addr := fmt.Sprintf("%s:%d", server.host, server.port)
	log.Printf("✨ Dev server running at http://%s\n", addr)

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Shutting down dev server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// reload re-reads config, theme and content from disk
func (s *devServer) reload() error {
	b, err := site.Load(".")
	if err != nil {
		return err
	}
	b.Cache = s.renderCache
	b.HeadExtra = []*vdom.VNode{liveReloadScript()}
	s.builder = b
	return nil
}

func (s *devServer) rebuild() error {
	s.buildMutex.Lock()
	defer s.buildMutex.Unlock()
	return s.builder.Build()
}

func (s *devServer) setupWatcher() error {
	outDir := s.builder.Config().Paths.Output

	return filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories, node_modules and the build output
		if info.IsDir() {
			name := info.Name()
			if (strings.HasPrefix(name, ".") && path != ".") || name == "node_modules" {
				return filepath.SkipDir
			}
			if rel, err := filepath.Rel(outDir, path); err == nil && !strings.HasPrefix(rel, "..") {
				return filepath.SkipDir
			}
			return s.watcher.Add(path)
		}
		return nil
	})
}

func (s *devServer) watchFiles() {
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	var pendingEvents []fsnotify.Event
	var mu sync.Mutex

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !s.isRelevantFile(event.Name) {
				continue
			}

			mu.Lock()
			pendingEvents = append(pendingEvents, event)
			mu.Unlock()

			debounce.Reset(100 * time.Millisecond)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Println("Watcher error:", err)

		case <-debounce.C:
			mu.Lock()
			events := pendingEvents
			pendingEvents = nil
			mu.Unlock()

			if len(events) > 0 {
				s.handleFileChanges(events)
			}
		}
	}
}

func (s *devServer) isRelevantFile(path string) bool {
	base := filepath.Base(path)
	if base == "folio.yml" || base == filepath.Base(s.builder.Config().Paths.Theme) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".css" || ext == ".js" ||
		ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".svg"
}

func (s *devServer) handleFileChanges(events []fsnotify.Event) {
	var configChanged bool
	for _, event := range events {
		base := filepath.Base(event.Name)
		if base == "folio.yml" || base == filepath.Base(s.builder.Config().Paths.Theme) {
			configChanged = true
			if s.renderCache != nil {
				if count := s.renderCache.InvalidateByDependency(base); count > 0 {
					log.Printf("🗑️  Invalidated %d cached pages due to %s", count, base)
				}
			}
		}
	}

	if configChanged {
		log.Println("🔄 Configuration changed, reloading site...")
	} else {
		log.Println("🔄 Content changed, rebuilding...")
	}

	if err := s.reload(); err != nil {
		log.Printf("❌ Reload failed: %v\n", err)
		s.notifyClients("error", map[string]interface{}{
			"message": fmt.Sprintf("Reload failed: %v", err),
		})
		return
	}

	if err := s.rebuild(); err != nil {
		log.Printf("❌ Build failed: %v\n", err)
		s.notifyClients("error", map[string]interface{}{
			"message": fmt.Sprintf("Build failed: %v", err),
		})
		return
	}

	log.Println("✅ Build succeeded, reloading...")
	s.notifyClients("reload", nil)
}

func (s *devServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	s.wsMutex.Lock()
	s.wsClients[conn] = true
	s.wsMutex.Unlock()

	defer func() {
		s.wsMutex.Lock()
		delete(s.wsClients, conn)
		s.wsMutex.Unlock()
	}()

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

func (s *devServer) notifyClients(msgType string, data map[string]interface{}) {
	s.wsMutex.RLock()
	defer s.wsMutex.RUnlock()

	message := map[string]interface{}{
		"type": strings.ToUpper(msgType),
	}
	for k, v := range data {
		message[k] = v
	}

	for client := range s.wsClients {
		if err := client.WriteJSON(message); err != nil {
			log.Printf("Failed to send message to client: %v", err)
		}
	}
}

func (s *devServer) serveStatic(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// Security: prevent directory traversal
	if strings.Contains(path, "..") {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	filePath := filepath.Join(s.builder.OutputDir(), strings.TrimPrefix(path, "/"))
	if info, err := os.Stat(filePath); err == nil && info.IsDir() {
		filePath = filepath.Join(filePath, "index.html")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	switch filepath.Ext(filePath) {
	case ".html":
		w.Header().Set("Content-Type", "text/html")
	case ".js":
		w.Header().Set("Content-Type", "application/javascript")
	case ".css":
		w.Header().Set("Content-Type", "text/css")
	case ".xml":
		w.Header().Set("Content-Type", "application/xml")
	default:
		// Let Go's default MIME type detection handle it
	}

	w.Header().Set("Cache-Control", "no-cache")
	w.Write(content)
}

// serveFavicon returns 204 instead of a noisy 404 when the project
// has no favicon.
func (s *devServer) serveFavicon(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.builder.OutputDir(), "favicon.ico")
	if _, err := os.Stat(path); err == nil {
		http.ServeFile(w, r, path)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// liveReloadScript is injected into every page head in dev mode
func liveReloadScript() *vdom.VNode {
	return builder.Script().Raw(`(function() {
	var proto = location.protocol === "https:" ? "wss://" : "ws://";
	var ws = new WebSocket(proto + location.host + "/livereload");
	ws.onmessage = function(ev) {
		var msg = JSON.parse(ev.data);
		if (msg.type === "RELOAD") {
			location.reload();
		} else if (msg.type === "ERROR") {
			console.error("[folio]", msg.message);
		}
	};
	ws.onclose = function() {
		setTimeout(function() { location.reload(); }, 1000);
	};
})();`).Build()
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dangdiep/shinyWidgets/internal/config"
	"github.com/dangdiep/shinyWidgets/pkg/middleware"
	"github.com/dangdiep/shinyWidgets/pkg/render"
	"github.com/dangdiep/shinyWidgets/pkg/server"
	"github.com/dangdiep/shinyWidgets/pkg/sweetalert"
	"github.com/dangdiep/shinyWidgets/pkg/vdom"
	"github.com/dangdiep/shinyWidgets/pkg/widgets"
)

func serveCmd() *cobra.Command {
	var (
		dir  string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo gallery server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(dir, addr)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory (holds shinywidgets.json)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(dir, addr string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Address = addr
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	gallery := defaultGallery()
	if cfg.Gallery != "" {
		gallery, err = LoadGallery(cfg.Gallery)
		if err != nil {
			return err
		}
	}

	page, err := renderGalleryPage(gallery, cfg.BasePath)
	if err != nil {
		return err
	}

	srv, err := server.New(&server.Config{
		Address:     cfg.Address,
		BasePath:    cfg.BasePath,
		ReadTimeout: cfg.ReadTimeout(),
		MaxSessions: cfg.MaxSessions,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	srv.OnSessionStart = func(sess *server.Session) {
		bindGalleryDemo(sess, logger)
	}

	r := chi.NewRouter()
	r.Use(middleware.Prometheus(middleware.WithNamespace("shinywidgets")))
	r.Use(middleware.OTel())
	srv.Mount(r)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	httpServer := &http.Server{
		Addr:    cfg.Address,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Address, "base_path", cfg.BasePath)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
	return httpServer.Shutdown(ctx)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// renderGalleryPage renders the demo page once at startup. Widgets render
// their declared defaults; the client runtime re-applies any values held in
// session storage after it connects.
func renderGalleryPage(g *Gallery, basePath string) ([]byte, error) {
	inputs := make([]*vdom.VNode, 0, len(g.Widgets))
	for _, w := range g.Widgets {
		node, err := w.Node(nil)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, node)
	}

	doc := vdom.Html(vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Title(g.Title),
			vdom.LinkEl(vdom.Rel("stylesheet"),
				vdom.Href("https://cdn.jsdelivr.net/npm/bootstrap@3.4.1/dist/css/bootstrap.min.css")),
			vdom.LinkEl(vdom.Rel("stylesheet"),
				vdom.Href("https://cdn.jsdelivr.net/npm/@fortawesome/fontawesome-free@6/css/all.min.css")),
			vdom.Script(vdom.Src("https://cdn.jsdelivr.net/npm/sweetalert2@11")),
		),
		vdom.Body(
			vdom.Div(vdom.Class("container"),
				vdom.H1(g.Title),
				vdom.Div(vdom.Class("row"),
					vdom.Div(vdom.Class("col-md-6"), inputs),
					vdom.Div(vdom.Class("col-md-6"),
						vdom.H3("Dialogs"),
						demoButton("show_confirm", "Confirm"),
						demoButton("show_input", "Ask name"),
						demoButton("show_progress", "Progress"),
						demoButton("show_toast", "Toast"),
						demoButton("close_dialog", "Close dialog"),
						vdom.Div(vdom.ID("load-progress"), vdom.StyleAttr("display: none;"),
							vdom.P("Working..."),
							vdom.Progress(vdom.ID("load-progress-bar"), vdom.Value("30"), vdom.Max("100")),
						),
					),
				),
			),
			vdom.Script(vdom.Src(basePath+"/client.js"), vdom.Data("base-path", basePath)),
		),
	)

	html, err := render.ToString(doc)
	if err != nil {
		return nil, err
	}
	return []byte("<!DOCTYPE html>\n" + html), nil
}

func demoButton(id, label string) *vdom.VNode {
	return vdom.Button(vdom.ID(id), vdom.Type("button"),
		vdom.Class("btn", "btn-default", "shinywidgets-action"), label)
}

// bindGalleryDemo wires the demo page's buttons and relay inputs for one
// session.
func bindGalleryDemo(sess *server.Session, logger *slog.Logger) {
	sess.OnInput("show_confirm", func(any) {
		sweetalert.Confirm(sess, "confirmed", sweetalert.Options{
			Title:            "Delete everything?",
			Text:             "This cannot be undone.",
			Icon:             sweetalert.IconWarning,
			ShowCancelButton: true,
		})
	})
	sess.OnInput("confirmed", func(v any) {
		ok, isBool := v.(bool)
		if !isBool {
			// The client clears the input to null before the dialog opens.
			return
		}
		opts := sweetalert.Options{Title: "Kept everything", Icon: sweetalert.IconInfo, TimerMillis: 2500}
		if ok {
			opts = sweetalert.Options{Title: "Deleted", Icon: sweetalert.IconSuccess, TimerMillis: 2500}
		}
		sweetalert.Toast(sess, opts)
	})

	sess.OnInput("show_input", func(any) {
		sweetalert.Input(sess, "visitor", sweetalert.Options{
			Title:            "Who are you?",
			InputType:        "text",
			InputPlaceholder: "your name",
			ResetInput:       true,
		})
	})
	sess.OnInput("visitor", func(v any) {
		name, ok := v.(string)
		if !ok || name == "" {
			return
		}
		logger.Info("visitor answered", "name", name)
		widgets.UpdateTextInputIcon(sess, "search", server.TextUpdate{Value: &name})
	})

	sess.OnInput("show_progress", func(any) {
		sweetalert.Progress(sess, "load-progress", sweetalert.Options{Title: "Loading"})
	})
	sess.OnInput("show_toast", func(any) {
		sweetalert.Toast(sess, sweetalert.Options{
			Title:       "Hello from the server",
			Icon:        sweetalert.IconInfo,
			TimerMillis: 3000,
		})
	})
	sess.OnInput("close_dialog", func(any) {
		sweetalert.Close(sess)
	})
}

package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/admin"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/config"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/notify"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/server"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/settings"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/site"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/submissions"
)

const sweepEvery = time.Minute

var (
	servePort    int
	serveOrigins string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the studio website",
	Long:  `Serves the public pages, the form API, the view-session channel and the admin console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, config.SplitAndTrim(serveOrigins)...)

		cat, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			return err
		}
		src := catalog.NewSource(cat)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, check, release, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer release()

		feed := submissions.NewFeed()
		defer feed.Close()
		svc := submissions.NewService(store, feed, notify.New(cfg.Mail, cfg.SiteName))

		reg := site.NewRegistry(src, site.Options{
			HeroInterval:        cfg.Carousel.HeroInterval(),
			TestimonialInterval: cfg.Carousel.TestimonialInterval(),
			TransitionLock:      cfg.Carousel.TransitionLock(),
			MobileBreakpoint:    cfg.Viewport.MobileBreakpoint,
		}, cfg.Session.IdleTimeout())
		defer reg.Close()
		go reg.Run(ctx, sweepEvery)

		if cfg.WatchCatalog {
			w, err := catalog.NewWatcher(cfg.CatalogFile, src, func(c *catalog.Catalog) {
				log.Info().Int("live_sessions", reg.Len()).Msg("new sessions will use the reloaded catalog")
			})
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAll,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}, check)
		registerRoutes(srv.Router(), cfg, reg, svc)

		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
		if err != nil {
			return err
		}

		stats := cat.Stats()
		log.Info().
			Str("version", Version).
			Str("site", cfg.SiteName).
			Str("store", string(cfg.Store.Backend)).
			Int("categories", stats.Categories).
			Int("images", stats.Images).
			Int("videos", stats.Videos).
			Bool("admin_locked", cfg.Admin.Passcode != "").
			Msg("studio starting")

		return srv.Run(ctx, ln)
	},
}

// registerRoutes wires every feature package onto the server router.
func registerRoutes(r chi.Router, cfg *config.Config, reg *site.Registry, svc *submissions.Service) {
	submissions.RegisterRoutes(r, svc)
	admin.New(svc, cfg.Admin.Passcode, cfg.SiteName).RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(settings.Middleware(cfg.Theme.DefaultDark))
		settings.RegisterRoutes(r)
		site.New(reg).RegisterRoutes(r)
	})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().StringVar(&serveOrigins, "origins", "", "extra comma-separated CORS origins")
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pdfservice/internal/assets"
	intconfig "pdfservice/internal/config"
	"pdfservice/internal/docdata"
	router "pdfservice/internal/http"
	"pdfservice/internal/http/handlers"
	"pdfservice/internal/logger"
	"pdfservice/internal/mail"
	"pdfservice/internal/render"
)

func main() {
	env := intconfig.LoadEnv()

	if err := logger.Setup(env.LogLevel, env.LogFormat); err != nil {
		panic(err)
	}
	log := logger.WithComponent("main")

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	pdfRenderer := render.NewPDFRenderer(env.BrowserBin, env.PDFTimeout)
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Warn().Err(err).Msg("closing browser")
		}
	}()

	deps := handlers.Deps{
		Preparer: docdata.Preparer{
			Logo:              assets.NewLogoProvider(env.LogoPath),
			PublicStorageURL:  env.PublicStorageURL,
			InternalMediaHost: env.InternalMediaHost,
		},
		Templates: render.NewTemplateRenderer(env.TemplateDir),
		PDF:       pdfRenderer,
		Sender: &mail.SMTPSender{
			Host:     env.SMTPHost,
			Port:     env.SMTPPort,
			Username: env.SMTPUser,
			Password: env.SMTPPassword,
			From:     env.MailFrom,
			FromName: env.MailFromName,
			Timeout:  env.MailTimeout,
		},
	}

	r := router.NewRouter(env, deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		// Rendering plus SMTP delivery can legitimately take a while.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", env.AppAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}

	log.Info().Msg("server stopped")
}

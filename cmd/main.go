package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/client"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/config"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/handler"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/intent"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/registry"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/service"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := log.L()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Init(cfg.Log)
	l := log.L()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Chat pipeline
	chatSvc := service.NewChatService(
		intent.NewRuleClassifier(),
		intent.NewRegexExtractor(),
		client.NewHTTPAppointmentClient(cfg.Downstream.AppointmentBaseURL, cfg.Downstream.Timeout),
	)

	// Registry background activity, fully decoupled from the chat path.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Eureka.ServerURL != "" {
		reg := registry.NewEurekaRegistry(cfg.Eureka, cfg.Server)
		reg.Start(ctx)
		defer reg.Stop()
	} else {
		l.Info().Msg("no eureka server configured, skipping registration")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(log.GinMiddleware(l))

	h := handler.NewHandler(chatSvc, cfg.Eureka.AppName)
	h.RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		l.Info().Str("addr", server.Addr).Msg("chatbot service listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info().Msg("shutting down chatbot service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("server forced to shutdown")
	}

	l.Info().Msg("chatbot service stopped")
}

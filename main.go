package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelgateway/internal/config"
	"travelgateway/internal/generator"
	router "travelgateway/internal/http"
	"travelgateway/internal/http/handlers"
	"travelgateway/internal/imagery"
	"travelgateway/internal/repositories"
	"travelgateway/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	env := intconfig.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "travel-gateway",
		Short: "HTTP gateway for generated travel content",
		Long: `travel-gateway serves city descriptions, activity suggestions and
generated travel plans backed by a chat completion API. The most recently
generated plan is kept in memory and can be fetched as JSON or PDF.`,
	}
	rootCmd.PersistentFlags().StringVar(&env.LogLevel, "log-level", env.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&env.LogFormat, "log-format", env.LogFormat, "Log format (console, json)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(env)
		},
	}
	serveCmd.Flags().StringVar(&env.AppAddr, "addr", env.AppAddr, "Listen address")
	serveCmd.Flags().StringVar(&env.PromptsFile, "prompts", env.PromptsFile, "YAML file overriding generator prompts")
	serveCmd.Flags().StringVar(&env.OpenAIModel, "model", env.OpenAIModel, "Chat completion model")

	rootCmd.AddCommand(serveCmd)
	// bare invocation serves
	rootCmd.RunE = serveCmd.RunE

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(env intconfig.Env) error {
	utils.InitLogger(env.LogLevel, env.LogFormat)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	prompts, err := intconfig.LoadPrompts(env.PromptsFile)
	if err != nil {
		return err
	}
	if env.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set; content generation requests will fail")
	}

	gw := handlers.Gateway{
		Generator: generator.NewOpenAIGenerator(generator.OpenAIOptions{
			APIKey:  env.OpenAIAPIKey,
			BaseURL: env.OpenAIBaseURL,
			Model:   env.OpenAIModel,
			Timeout: env.GeneratorTimeout,
			Prompts: prompts,
		}),
		Plans:  repositories.NewLatestPlanSlot(),
		Images: &imagery.UnsplashFinder{AccessKey: env.UnsplashAccessKey},
	}

	r := router.NewRouter(env, gw)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		// plan generation can take most of GENERATOR_TIMEOUT
		WriteTimeout: env.GeneratorTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", env.AppAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

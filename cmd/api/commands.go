package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/seed"
	"github.com/yigit/coursehub/internal/server"
)

var (
	configPath   string
	tokenSubject string
)

var rootCmd = &cobra.Command{
	Use:   "coursehub",
	Short: "CourseHub course and unit catalogue API",
	Long: `CourseHub serves a catalogue of courses and their units over HTTP.

Run without arguments to start the API server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample catalogue into an empty database",
	RunE:  runSeed,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin access token for the write routes",
	Long: `Prints a signed admin JWT. The configured jwt.secret must be set;
the token expires after jwt.access_token_expiration.`,
	RunE: runToken,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", filepath.Join("configs", "config.yaml"), "path to the YAML config file")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "subject claim of the token")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.NewServer(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	if err := srv.Run(); err != nil {
		return err
	}
	logger.Info().Msg("Application finished gracefully.")
	return nil
}

// openDatabase loads the config and opens a migrated database. Commands that
// act on stored data make no sense against the memory driver.
func openDatabase(ctx context.Context) (*db.PostgresDB, zerolog.Logger, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, lgr, err
	}
	if cfg.Database.Driver != config.DatabaseDriverPostgres {
		return nil, lgr, errors.New("this command requires database.driver postgres")
	}

	database, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	return database, lgr, err
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	database, _, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	database.Close()
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	database, lgr, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	created, err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(database), lgr)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d courses\n", created)
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	if !cfg.AuthEnabled() {
		return errors.New("jwt.secret is not set; write routes are open and need no token")
	}

	token, expiresAt, err := bootstrap.NewJWTService(cfg).GenerateAdminToken(tokenSubject)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
	return nil
}

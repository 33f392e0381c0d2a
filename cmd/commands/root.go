package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"parth-agrotech/internal/utils"
	"parth-agrotech/pkg/session"
)

var (
	// Global flags
	configPath string

	cfg utils.Config
)

var rootCmd = &cobra.Command{
	Use:   "parthagro",
	Short: "Parth Agrotech back-office API",
	Long: `Back-office API for Parth Agrotech: farmer registrations, factories,
cold-storage units, the inventory ledger and inbound inquiries.

Configuration is read from a yaml file, a .env file and the environment,
in increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := utils.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		utils.InitLogger(os.Stderr, cfg.LogLevel)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the yaml config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(adminCmd)
}

// openSessionStore uses Redis when REDIS_ADDR is set and an in-process store
// otherwise. The returned client is nil for the in-process store.
func openSessionStore(ctx context.Context) (session.SessionStore, *redis.Client, error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(cfg.SessionMaxItems, cfg.SessionTTL()), nil, nil
	}
	return session.NewRedisStore(ctx, session.RedisConfig{
		Addr:     cfg.RedisAddr,
		User:     cfg.RedisUser,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

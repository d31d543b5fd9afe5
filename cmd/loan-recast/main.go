package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/finsim/loan-recast/internal/comparison"
	"github.com/finsim/loan-recast/internal/config"
	"github.com/finsim/loan-recast/internal/schedule"
	"github.com/finsim/loan-recast/internal/server"
	"github.com/finsim/loan-recast/internal/share"
	"github.com/finsim/loan-recast/internal/store"
	"github.com/finsim/loan-recast/pkg/constants"
	"github.com/finsim/loan-recast/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	logLevelFlag     string
	outputFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "loan-recast",
	Short: "Fixed-rate loan repayment simulator with extra payments, forgiveness, and recasting",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [plan-file]",
	Short: "Simulate the repayment schedule for a plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, logger, err := loadPlan(args)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		reportWarnings(logger, conf)

		params, err := conf.ToParams()
		if err != nil {
			return err
		}
		result := schedule.NewBuilder(logger).Build(params)

		format := resolveOutputFormat(conf)
		switch format {
		case constants.OutputFormatCSV:
			return output.CsvFormat(os.Stdout, result)
		case constants.OutputFormatPretty:
			output.PrettyFormat(os.Stdout, result)
			return nil
		default:
			return fmt.Errorf("unknown output format %q", format)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [plan-file]",
	Short: "Compare the plan against its unmodified baseline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, logger, err := loadPlan(args)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		reportWarnings(logger, conf)

		params, err := conf.ToParams()
		if err != nil {
			return err
		}
		comp := comparison.Compare(logger, params)
		output.PrettyComparison(os.Stdout, comp)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the schedule API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := server.LoadConfig(configPath)
		if err != nil {
			return err
		}

		logger, err := initializeLogger(cfg.Logging, logLevelFlag)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		planStore, closeStore, err := buildStore(cfg.Storage)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}

		handler := server.NewHandler(logger, cfg.BodySizeBytes(), version, planStore)
		logger.Info("starting server",
			zap.String("address", cfg.Address),
			zap.String("storage", cfg.Storage.Backend),
		)
		srv := &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return srv.ListenAndServe()
	},
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode or decode shareable plan tokens",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode [plan-file]",
	Short: "Encode a plan file into a share token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, logger, err := loadPlan(args)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		token, err := share.Encode(conf.Plan())
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode [token]",
	Short: "Decode a share token into a plan document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := share.Decode(args[0])
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(plan)
	},
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage stored plans",
}

var plansSaveCmd = &cobra.Command{
	Use:   "save [name] [plan-file]",
	Short: "Store a plan file under a name",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, logger, err := loadPlan(args[1:])
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		planStore, closeStore, err := storeFromFlags(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		if err := planStore.Save(context.Background(), args[0], conf.Plan()); err != nil {
			return err
		}
		fmt.Printf("saved plan %s\n", args[0])
		return nil
	},
}

var plansLoadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Print a stored plan as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planStore, closeStore, err := storeFromFlags(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		plan, err := planStore.Load(context.Background(), args[0])
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(plan)
	},
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plan names",
	RunE: func(cmd *cobra.Command, args []string) error {
		planStore, closeStore, err := storeFromFlags(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		names, err := planStore.List(context.Background())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a stored plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planStore, closeStore, err := storeFromFlags(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		if err := planStore.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted plan %s\n", args[0])
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loan-recast %s\n", version)
	},
}

// loadPlan loads the plan file named by args (or the default file) and
// initializes logging from its configuration.
func loadPlan(args []string) (*config.Configuration, *zap.Logger, error) {
	path := constants.DefaultConfigFile
	if len(args) > 0 {
		path = args[0]
	}

	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, nil, err
	}

	logger, err := initializeLogger(conf.Logging, logLevelFlag)
	if err != nil {
		return nil, nil, err
	}
	return conf, logger, nil
}

func reportWarnings(logger *zap.Logger, conf *config.Configuration) {
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn(warning, zap.String("op", "main"))
	}
}

func resolveOutputFormat(conf *config.Configuration) string {
	if outputFormatFlag != "" {
		return outputFormatFlag
	}
	if conf.Output.Format != "" {
		return conf.Output.Format
	}
	return constants.OutputFormatPretty
}

// buildStore constructs the plan store selected by the storage config.
func buildStore(cfg server.StorageConfig) (store.Store, func() error, error) {
	switch cfg.Backend {
	case "redis":
		return store.NewRedisStore(cfg.RedisAddr), nil, nil
	case "postgres":
		pg, err := store.NewPostgresStore(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	default:
		return store.NewMemoryStore(), nil, nil
	}
}

func storeFromFlags(cmd *cobra.Command) (store.Store, func() error, error) {
	backend, _ := cmd.Flags().GetString("storage")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	postgresDSN, _ := cmd.Flags().GetString("postgres-dsn")
	cfg := server.StorageConfig{Backend: backend, RedisAddr: redisAddr, PostgresDSN: postgresDSN}
	if cfg.Backend == "" {
		cfg.Backend = "redis"
	}
	return buildStore(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level override (debug, info, warn, error)")
	simulateCmd.Flags().StringVar(&outputFormatFlag, "output-format", "", "type of output override: pretty, csv")
	serveCmd.Flags().String("config", constants.DefaultServerConfigFile, "path to server configuration file")

	for _, cmd := range []*cobra.Command{plansSaveCmd, plansLoadCmd, plansListCmd, plansDeleteCmd} {
		cmd.Flags().String("storage", "redis", "storage backend: redis, postgres")
		cmd.Flags().String("redis-addr", "localhost:6379", "redis address")
		cmd.Flags().String("postgres-dsn", "", "postgres connection string")
	}

	shareCmd.AddCommand(shareEncodeCmd, shareDecodeCmd)
	plansCmd.AddCommand(plansSaveCmd, plansLoadCmd, plansListCmd, plansDeleteCmd)
	rootCmd.AddCommand(simulateCmd, compareCmd, serveCmd, shareCmd, plansCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

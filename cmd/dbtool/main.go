package main

import (
	"context"
	"database/sql"
	"fmt"
	"fruit-order-service/internal/adapters/repositories"
	"fruit-order-service/internal/config"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/platform/db"
	"fruit-order-service/internal/platform/logger"
	"fruit-order-service/internal/ports"
	"fruit-order-service/internal/services"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type store struct {
	conn *sql.DB
	repo ports.OrderRepository
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Manage the fruit order database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()
			cfg = config.Load()
			lg, err := logger.New(cfg.LogMode)
			if err != nil {
				return err
			}
			logger.SetGlobal(lg)
			return nil
		},
	}

	openStore := func() (*store, error) {
		switch cfg.DBDriver {
		case "postgres":
			if strings.TrimSpace(cfg.DatabaseURL) == "" {
				return nil, fmt.Errorf("DATABASE_URL is required")
			}
			conn, err := db.Open(cfg.DatabaseURL)
			if err != nil {
				return nil, err
			}
			return &store{conn: conn, repo: repositories.NewSQLOrderRepository(conn)}, nil
		default:
			conn, err := db.OpenSqlite(cfg.DBPath)
			if err != nil {
				return nil, err
			}
			return &store{conn: conn, repo: repositories.NewSqliteOrderRepository(conn)}, nil
		}
	}

	initSchema := func(s *store) error {
		if cfg.DBDriver == "postgres" {
			return repositories.InitPostgresSchema(s.conn)
		}
		return repositories.InitSchema(s.conn)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Create the database schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := openStore()
				if err != nil {
					return err
				}
				defer s.conn.Close()

				logger.L().Info("initializing database schema", "driver", cfg.DBDriver)
				if err := initSchema(s); err != nil {
					return fmt.Errorf("schema initialization failed: %w", err)
				}
				logger.L().Info("schema ready")
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed [file]",
			Short: "Create the schema and load orders from a JSON or YAML seed file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := config.Get("SEED_PATH", "data/seeds/orders.json")
				if len(args) == 1 {
					path = args[0]
				}

				s, err := openStore()
				if err != nil {
					return err
				}
				defer s.conn.Close()

				if err := initSchema(s); err != nil {
					return fmt.Errorf("schema initialization failed: %w", err)
				}

				n, err := services.NewOrderService(s.repo).Seed(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("seeding failed: %w", err)
				}
				logger.L().Info("seeding complete", "orders", n, "path", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <order-id>",
			Short: "Print an order's fruit lines in the stored weight format",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := domain.ParseOrderID(args[0])
				if err != nil {
					return err
				}

				s, err := openStore()
				if err != nil {
					return err
				}
				defer s.conn.Close()

				order, err := s.repo.GetOrder(cmd.Context(), id)
				if err != nil {
					return err
				}
				printOrder(cmd, order)
				return nil
			},
		},
		&cobra.Command{
			Use:   "convert <value> <from> <to>",
			Short: "Convert a weight between Grams, Kilograms and Pounds",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := services.Convert(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				cmd.Println(out.String())
				return nil
			},
		},
	)

	root.SetContext(context.Background())
	return root
}

func printOrder(cmd *cobra.Command, order *domain.Order) {
	cmd.Printf("order %s\n", order.ID)
	for i, f := range order.Fruits {
		cmd.Printf("#%d %s\n", i, f.Type)
		for _, line := range strings.Split(domain.EncodeProfile(f.Weights), "\n") {
			cmd.Printf("  %s\n", line)
		}
	}
}

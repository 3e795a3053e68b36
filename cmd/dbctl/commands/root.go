package commands

import (
	"context"
	"fmt"

	"minishop/internal/config"
	"minishop/internal/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// サブコマンドで共有する状態
type runtime struct {
	v   *viper.Viper
	cfg config.Config
	log zerolog.Logger
}

// dbctlのルート。flagはviperへbindし、環境変数より優先する
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *runtime) {
	rt := &runtime{v: config.NewViper(), log: zerolog.Nop()}
	var envFile string

	root := &cobra.Command{
		Use:           "dbctl",
		Short:         "Provision and inspect the minishop database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFiles(envFile); err != nil {
				return err
			}
			cfg, err := config.FromViper(rt.v)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			rt.cfg = cfg
			rt.log = logger.NewWithWriter(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load (missing file is ignored)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = rt.v.BindPFlag("LOG_LEVEL", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newInitCmd(rt),
		newRecalcOrderTotalCmd(rt),
		newTopCategoriesCmd(rt),
	)

	return root, rt
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

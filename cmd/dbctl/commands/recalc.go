package commands

import (
	"fmt"
	"strconv"

	"minishop/internal/infra/db"
	infraRepo "minishop/internal/infra/repository"
	"minishop/internal/usecase"

	"github.com/spf13/cobra"
)

func newRecalcOrderTotalCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "recalc-order-total <order_id>",
		Short: "Recompute orders.total from its items and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid order id %q", args[0])
			}

			gormDB, err := db.Connect(rt.cfg, rt.log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(gormDB) }()

			uc := usecase.NewOrderUsecase(
				infraRepo.NewTxManagerGorm(gormDB),
				infraRepo.NewOrderGormRepository(gormDB),
			)
			total, err := uc.RecalcOrderTotal(commandContext(cmd), id)
			if err != nil {
				return err
			}

			rt.log.Info().Int64("order_id", id).Str("total", total.StringFixed(2)).Msg("order total recalculated")
			fmt.Fprintln(cmd.OutOrStdout(), total.StringFixed(2))
			return nil
		},
	}
}

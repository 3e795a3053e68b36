package commands

import (
	"fmt"
	"text/tabwriter"

	"minishop/internal/infra/db"
	infraRepo "minishop/internal/infra/repository"
	"minishop/internal/usecase"

	"github.com/spf13/cobra"
)

func newTopCategoriesCmd(rt *runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-categories",
		Short: "Print categories ranked by revenue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be >= 1")
			}

			gormDB, err := db.Connect(rt.cfg, rt.log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(gormDB) }()

			uc := usecase.NewReportUsecase(infraRepo.NewReportGormRepository(gormDB))
			rows, err := uc.TopCategories(commandContext(cmd), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tREVENUE\tORDERS")
			for _, r := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", r.CategoryID, r.Name, r.Revenue.StringFixed(2), r.OrdersCount)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultTopCategoriesLimit, "number of categories")
	return cmd
}

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tyleryates/cookie-tracker-sub004/internal/repository"
)

func init() {
	rootCmd.AddCommand(seasonsCmd)
	seasonsCmd.Flags().IntP("limit", "n", 20, "Maximum number of builds to list")
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List persisted season builds",
	RunE:  runSeasons,
}

func runSeasons(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	db, err := repository.InitDB(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	defer db.Close()

	builds, err := repository.NewBuildRepo(db).List(limit)
	if err != nil {
		return fmt.Errorf("list builds: %w", err)
	}
	if len(builds) == 0 {
		fmt.Println("No builds persisted yet. Run 'cookietrack build' first.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUILD\tTROOP\tBUILT\tSCOUTS\tORDERS\tWARNINGS\tCREDITED\tRATE")
	for _, b := range builds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%.2f\n",
			b.ID, b.TroopID, b.BuiltAt.Format("2006-01-02 15:04"),
			b.ScoutCount, b.OrderCount, b.WarningCount, b.PackagesCredited, b.ProceedsRate)
	}
	return w.Flush()
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/metricsing"
	"github.com/vfg2006/bizmetrics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentFiles = 4

type ValidateCmd struct {
	strict bool
}

type validationResult struct {
	path    string
	metrics *domain.Metrics
	err     error
}

func NewValidateCmd() *cobra.Command {
	vc := &ValidateCmd{}
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Run the upload parser locally over one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  vc.run,
	}

	cmd.Flags().BoolVar(&vc.strict, "strict", false, "Also check series length, numeric values and all four KPIs")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, args []string) error {
	results, err := vc.validateFiles(cmd.Context(), args)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		printResult(cmd.OutOrStdout(), result)
		if result.err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(results))
	}

	return nil
}

// validateFiles interpreta os arquivos em paralelo; a ordem do resultado segue a dos argumentos
func (vc *ValidateCmd) validateFiles(ctx context.Context, paths []string) ([]validationResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	parser := metricsing.NewParser(vc.strict)
	results := make([]validationResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = validationResult{path: path}

			content, err := os.ReadFile(path)
			if err != nil {
				results[i].err = err
				return nil
			}

			results[i].metrics, results[i].err = parser.Parse(content)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func printResult(out io.Writer, result validationResult) {
	name := filepath.Base(result.path)

	if result.err != nil {
		fmt.Fprintf(out, "FAIL %s: %v\n", name, result.err)
		return
	}

	view, err := result.metrics.View()
	if err != nil {
		fmt.Fprintf(out, "OK   %s (non-standard shape, stored as sent)\n", name)
		return
	}

	fmt.Fprintf(out, "OK   %s revenue=%.2f costs=%.2f margin=%.2f%% growth=%.2f%% months=%d\n",
		name,
		utils.RoundWithTwoDecimalPlace(view.KPIs.TotalRevenue),
		utils.RoundWithTwoDecimalPlace(view.KPIs.TotalCosts),
		utils.RoundWithTwoDecimalPlace(view.KPIs.ProfitMargin),
		utils.RoundWithTwoDecimalPlace(view.KPIs.GrowthRate),
		len(view.Revenue.Values),
	)
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/format"
	"github.com/alnah/go-promptgen/internal/prompt"
	"github.com/alnah/go-promptgen/internal/request"
)

// MaxParallel is the upper limit for concurrent generations in a batch.
const MaxParallel = 16

// batchSeparator separates prompts in batch output.
const batchSeparator = "\n---\n"

// clampParallel constrains the worker count to [1, MaxParallel].
func clampParallel(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxParallel {
		return MaxParallel
	}
	return n
}

// BatchCmd creates the batch command.
// The env parameter provides injectable dependencies for testing.
func BatchCmd(env *Env) *cobra.Command {
	var (
		parallel int
		out      outputOptions
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Generate prompts for every request in a file",
		Long: `Generate one prompt per request document.

The file is a multi-document YAML stream, a YAML sequence or a JSON array.
Each document is classified on its own, by its "kind" tag or its fields.
Prompts are written in input order, separated by "---". The first invalid
document aborts the batch and is reported by its 1-based position.`,
		Example: `  promptgen batch requests.yaml
  promptgen batch requests.yaml -o week-12.md --stats
  cat requests.json | promptgen batch - -p 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), env, args[0], parallel, out)
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, fmt.Sprintf("Max concurrent generations (1-%d)", MaxParallel))
	out.register(cmd.Flags())

	return cmd
}

// runBatch decodes every document of path and writes the joined prompts.
func runBatch(ctx context.Context, env *Env, path string, parallel int, out outputOptions) error {
	if err := out.validate(); err != nil {
		return err
	}
	data, err := readInput(env, path)
	if err != nil {
		return err
	}
	reqs, err := request.DecodeAll(data)
	if err != nil {
		return err
	}

	cfg := loadConfig(env)
	start := env.Now()
	results, err := generateAll(ctx, env, cfg, reqs, clampParallel(parallel))
	if err != nil {
		return err
	}

	prompts := make([]string, len(results))
	var total prompt.Stats
	for i, r := range results {
		prompts[i] = r.Prompt
		total.Characters += r.Stats.Characters
		total.Words += r.Stats.Words
		total.Tokens += r.Stats.Tokens
	}
	joined := strings.Join(prompts, batchSeparator)

	// Stats of the batch are the sums, not a re-measure of the joined text.
	combined := prompt.Result{Kind: batchKind(results), Prompt: joined, Stats: total}
	if err := emit(env, cfg, combined, out); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(env.Stderr, "Generated %d prompts in %s\n",
		len(results), format.Elapsed(env.Now().Sub(start)))
	return nil
}

// generateAll generates every request with at most parallel workers.
// Results keep the input order. The first failure cancels the rest.
func generateAll(ctx context.Context, env *Env, cfg config.Config, reqs []request.Request, parallel int) ([]prompt.Result, error) {
	results := make([]prompt.Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := generate(env, cfg, req)
			if err != nil {
				return fmt.Errorf("document %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	env.Logger.Debug("Batch generated", zap.Int("documents", len(reqs)), zap.Int("parallel", parallel))
	return results, nil
}

// batchKind names the files written by --save: the shared kind when every
// prompt has the same one, "batch" otherwise.
func batchKind(results []prompt.Result) request.Kind {
	if len(results) == 0 {
		return "batch"
	}
	k := results[0].Kind
	for _, r := range results[1:] {
		if r.Kind != k {
			return "batch"
		}
	}
	return k
}

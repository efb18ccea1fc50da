package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/solreport/internal/setkey"
	"github.com/roach88/solreport/internal/tabular"
)

// SubsetsOptions holds flags for the subsets command.
type SubsetsOptions struct {
	*RootOptions
	K        int
	RowsFile string
}

// SubsetsResult lists the enumerated canonical keys.
type SubsetsResult struct {
	K     int      `json:"k"`
	Sets  int      `json:"sets"`
	Count int      `json:"count"`
	Keys  []string `json:"keys"`
}

// WriteText prints one key per line.
func (r *SubsetsResult) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, k := range r.Keys {
		b.WriteString(k)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// NewSubsetsCommand creates the subsets command.
func NewSubsetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SubsetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "subsets -k K [member...]",
		Short: "Enumerate k-element subsets as canonical keys",
		Long: `Enumerate every k-element subset of an integer set and print each as a
canonical key, in lexicographic order of positions.

With --rows, every line of an integer-row file is enumerated in file order
and repeated keys are dropped, keeping the first occurrence.

Example:
  solreport subsets -k 2 4 1 3 2
  solreport subsets -k 3 --rows sets.txt
  solreport subsets -k 2 -- -4 0 7   # "--" before negative members`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubsets(opts, args, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.K, "k", "k", 2, "subset size")
	cmd.Flags().StringVar(&opts.RowsFile, "rows", "", "enumerate every row of this integer-row file")

	return cmd
}

func runSubsets(opts *SubsetsOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	if opts.K < 0 {
		return invalidArgs(formatter, fmt.Sprintf("k must be non-negative, got %d", opts.K))
	}

	var sets [][]int
	switch {
	case opts.RowsFile != "" && len(args) > 0:
		return invalidArgs(formatter, "give either --rows or members, not both")
	case opts.RowsFile != "":
		rows, err := tabular.LoadIntegerRows(opts.RowsFile)
		if err != nil {
			return fail(formatter, "load rows", err)
		}
		sets = rows
	default:
		set, err := parseMembers(args)
		if err != nil {
			return invalidArgs(formatter, err.Error())
		}
		sets = [][]int{set}
	}

	var keys []string
	for _, set := range sets {
		keys = append(keys, setkey.Enumerate(set, opts.K)...)
	}
	keys = setkey.Dedupe(keys)

	return formatter.Success(&SubsetsResult{
		K:     opts.K,
		Sets:  len(sets),
		Count: len(keys),
		Keys:  keys,
	})
}

// parseMembers parses integer arguments and sorts them ascending.
func parseMembers(args []string) ([]int, error) {
	set := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("member %q is not an integer", a)
		}
		set[i] = v
	}
	slices.Sort(set)
	return set, nil
}

func invalidArgs(formatter *OutputFormatter, message string) error {
	_ = formatter.Error(&CLIError{Code: ErrCodeInvalidArgs, Message: message})
	return NewExitError(ExitCommandError, message)
}

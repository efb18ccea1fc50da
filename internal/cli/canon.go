package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/solreport/internal/setkey"
)

// CanonResult holds a canonical key and the sorted members it encodes.
type CanonResult struct {
	Key     string `json:"key"`
	Members []int  `json:"members"`
}

// WriteText prints the key alone.
func (r *CanonResult) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, r.Key+"\n")
	return err
}

// NewCanonCommand creates the canon command.
func NewCanonCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "canon [member...]",
		Short: "Print the canonical key of an integer set",
		Long: `Sort the given integers ascending and print their canonical key. Any
permutation of the same members yields the same key.

Example:
  solreport canon 3 1 2   # 1-2-3-`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format: rootOpts.Format,
				Writer: cmd.OutOrStdout(),
			}
			set, err := parseMembers(args)
			if err != nil {
				return invalidArgs(formatter, err.Error())
			}
			return formatter.Success(&CanonResult{
				Key:     setkey.CanonicalKey(set),
				Members: set,
			})
		},
	}
}

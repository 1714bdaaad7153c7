package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExceptionsCommand creates the exceptions command.
func NewExceptionsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exceptions [prefix]",
		Short: "List whole-word exceptions",
		Long: `List the whole-word exceptions of the dictionary, one per line
as <word> <tab> <replacement>. With a prefix only words starting with
it are listed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := loadConverter(rootOpts)
			if err != nil {
				return err
			}
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			dict := conv.Dictionary()
			out := cmd.OutOrStdout()
			for _, word := range dict.ExceptionsWithPrefix(prefix) {
				replacement, _ := dict.Exception(word)
				fmt.Fprintf(out, "%s\t%s\n", word, replacement)
			}
			return nil
		},
	}
	return cmd
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Show dictionary statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := loadConverter(rootOpts)
			if err != nil {
				return err
			}
			dict := conv.Dictionary()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dictionary:   %s\n", dict.Identifier)
			fmt.Fprintf(out, "patterns:     %d (max token length %d)\n", dict.Len(), dict.MaxTokenLength())
			fmt.Fprintf(out, "exceptions:   %d\n", dict.ExceptionCount())
			backend, used, total, keys, fill := dict.PatternTrieStats()
			fmt.Fprintf(out, "pattern trie: %s, %d keys, %d/%d slots (%.2f)\n", backend, keys, used, total, fill)
			if codec := conv.Codec(); codec != nil {
				table := codec.Table()
				fmt.Fprintf(out, "bijoy:        %d mappings, %d collisions\n", table.Len(), len(table.Collisions()))
			} else {
				fmt.Fprintln(out, "bijoy:        none")
			}
			return nil
		},
	}
	return cmd
}

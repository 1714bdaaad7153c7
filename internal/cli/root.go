package cli

import (
	"fmt"
	"os"

	"github.com/npillmayer/avro/avrodict"
	"github.com/npillmayer/avro/converter"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Dict string // alternative definition file, empty for the builtin one
}

// NewRootCommand creates the root command for the avro CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "avro",
		Short: "avro - Avro Phonetic transliteration",
		Long: `Transliterate Roman phonetic text to Bengali script and back,
and convert between Bengali Unicode and the Bijoy legacy encoding.`,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Dict, "dict", "", "dictionary definition file (YAML)")

	// Add subcommands
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewReverseCommand(opts))
	cmd.AddCommand(NewToBijoyCommand(opts))
	cmd.AddCommand(NewToUnicodeCommand(opts))
	cmd.AddCommand(NewExceptionsCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// loadConverter returns the converter selected by the global flags.
func loadConverter(opts *RootOptions) (*converter.Converter, error) {
	if opts.Dict == "" {
		return converter.Default()
	}
	f, err := os.Open(opts.Dict)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	dict, table, err := avrodict.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", opts.Dict, err)
	}
	return converter.New(dict, table, converter.Options{CacheSize: 0}), nil
}

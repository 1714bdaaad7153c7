package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avro/bijoy"
	"github.com/npillmayer/avro/converter"
	"github.com/spf13/cobra"
)

// ErrNoText is returned when neither arguments nor stdin carry any text.
var ErrNoText = errors.New("no text provided")

// noChanges is printed to stderr when a conversion leaves its input as is.
const noChanges = "No changes in output."

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	Bijoy       bool
	IgnoreRemap bool
	Raw         bool
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse Roman phonetic text to Bengali",
		Long: `Parse Roman phonetic text to Bengali script.

Text is taken from the arguments, or from stdin if there are none.
With --bijoy the result is converted to the Bijoy legacy encoding.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, opts, cmd, args)
		},
	}
	cmd.Flags().BoolVarP(&opts.Bijoy, "bijoy", "b", false, "produce Bijoy legacy output")
	cmd.Flags().BoolVarP(&opts.IgnoreRemap, "ignore-remap", "i", false, "ignore remapping of predefined words")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "write Bijoy output as Windows-1252 bytes")
	return cmd
}

func runParse(rootOpts *RootOptions, opts *ParseOptions, cmd *cobra.Command, args []string) error {
	conv, err := loadConverter(rootOpts)
	if err != nil {
		return err
	}
	text, err := readText(cmd, args, false)
	if err != nil {
		return err
	}
	output := conv.Parse(text, converter.ParseOptions{Bijoy: opts.Bijoy, RemapWords: !opts.IgnoreRemap})
	return writeResult(cmd, text, output, opts.Raw && opts.Bijoy)
}

// ReverseOptions holds flags for the reverse command.
type ReverseOptions struct {
	FromBijoy   bool
	IgnoreRemap bool
}

// NewReverseCommand creates the reverse command.
func NewReverseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReverseOptions{}
	cmd := &cobra.Command{
		Use:           "reverse [text...]",
		Short:         "Reverse Bengali text to Roman phonetic text",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := loadConverter(rootOpts)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args, false)
			if err != nil {
				return err
			}
			output := conv.Reverse(text, converter.ReverseOptions{
				FromBijoy:  opts.FromBijoy,
				RemapWords: !opts.IgnoreRemap,
			})
			return writeResult(cmd, text, output, false)
		},
	}
	cmd.Flags().BoolVar(&opts.FromBijoy, "from-bijoy", false, "input is Bijoy legacy text")
	cmd.Flags().BoolVarP(&opts.IgnoreRemap, "ignore-remap", "i", false, "ignore remapping of predefined words")
	return cmd
}

// NewToBijoyCommand creates the to-bijoy command.
func NewToBijoyCommand(rootOpts *RootOptions) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:           "to-bijoy [text...]",
		Short:         "Convert Bengali Unicode text to Bijoy",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := loadConverter(rootOpts)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args, false)
			if err != nil {
				return err
			}
			return writeResult(cmd, text, conv.ToLegacy(text), raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write output as Windows-1252 bytes")
	return cmd
}

// NewToUnicodeCommand creates the to-unicode command.
func NewToUnicodeCommand(rootOpts *RootOptions) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:           "to-unicode [text...]",
		Short:         "Convert Bijoy text to Bengali Unicode",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := loadConverter(rootOpts)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args, raw)
			if err != nil {
				return err
			}
			return writeResult(cmd, text, conv.ToUnicode(text), false)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "read stdin as Windows-1252 bytes")
	return cmd
}

// readText joins args, or reads stdin if args is empty. With raw set, stdin
// holds Windows-1252 bytes.
func readText(cmd *cobra.Command, args []string, raw bool) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if raw {
			if text, err = bijoy.DecodeBytes(b); err != nil {
				return "", err
			}
		} else {
			text = string(b)
		}
		text = strings.TrimRight(text, "\r\n")
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func writeResult(cmd *cobra.Command, input, output string, raw bool) error {
	if output == input {
		fmt.Fprintln(cmd.ErrOrStderr(), noChanges)
		return nil
	}
	if !raw {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), output)
		return err
	}
	b, err := bijoy.EncodeBytes(output)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(b, '\n'))
	return err
}

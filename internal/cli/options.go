// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"locusfind/internal/output"
	"locusfind/internal/version"
)

// ErrPrintedAndExitOK is returned by ParseArgs after help or version
// text was printed. Apps should catch this and exit 0.
var ErrPrintedAndExitOK = errors.New("help or version printed")

// Annotation formats as named on the command line.
const (
	FormatGFF     = "gff"
	FormatGenBank = "gb"
)

// Options holds all CLI flags. It is built once by ParseArgs and passed
// down explicitly.
type Options struct {
	// Input
	Format        string // FormatGFF | FormatGenBank
	Input         string
	Position      string // newline-separated coordinates
	PositionsFile string

	// Run
	Threads int // 0 = all CPUs

	// Output
	Output string
	Header bool

	// Misc
	Config   string
	Quiet    bool
	Verbose  bool
	Warnings []string // non-fatal notes gathered while parsing
}

const long = `locusfind: report the annotated feature containing each coordinate.

With --gff, coordinates are matched against gene and pseudogene lines of a
tab-delimited feature file and reported by their Name= attribute; the
feature's start and end are excluded. With --gb, coordinates are matched
against CDS features of a GenBank file and reported by locus_tag; both
ends are included.

The annotation file is read again for every coordinate.`

const examples = `  locusfind --gff -i genome.gff3 -p "$(printf '150\n-5\n100')"
  locusfind --gb -i genome.gbk.gz -P hits.txt --output jsonl
  locusfind -c locusfind.toml -p 4521`

// NewCommand builds the root command. Flag values land in o; run is
// called only when parsing succeeded and no help/version was requested.
func NewCommand(o *Options, run func(cmd *cobra.Command) error) *cobra.Command {
	var gb, gff bool
	cmd := &cobra.Command{
		Use:           "locusfind (--gff | --gb) -i FILE (-p POSITIONS | -P FILE) [flags]",
		Short:         "Map genomic coordinates to annotated genes and CDS features",
		Long:          long,
		Example:       examples,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case gff:
				o.Format = FormatGFF
			case gb:
				o.Format = FormatGenBank
			}
			return run(cmd)
		},
	}
	cmd.SetVersionTemplate("locusfind version {{.Version}}\n")

	fs := cmd.Flags()
	fs.SortFlags = false

	// Input
	fs.BoolVar(&gff, "gff", false, "annotation is a tab-delimited feature file (GFF)")
	fs.BoolVar(&gb, "gb", false, "annotation is a GenBank flat file")
	fs.StringVarP(&o.Input, "input", "i", "", "annotation file ('-' for stdin, gzip detected)")
	fs.StringVarP(&o.Position, "position", "p", "", "coordinates, one per line")
	fs.StringVarP(&o.PositionsFile, "positions-file", "P", "", "file of coordinates, one per line ('-' for stdin)")
	cmd.MarkFlagsMutuallyExclusive("gb", "gff")

	// Run
	fs.IntVarP(&o.Threads, "threads", "t", 1, "coordinates resolved in parallel (0 = all CPUs)")

	// Output
	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output: text | json | jsonl | gff")
	fs.BoolVar(&o.Header, "header", false, "print a header line (text) or version line (gff)")

	// Misc
	fs.StringVarP(&o.Config, "config", "c", "", "TOML file with default settings")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVar(&o.Verbose, "verbose", false, "print progress details to stderr")

	return cmd
}

// ParseArgs parses argv into Options. Help and version text go to out.
func ParseArgs(argv []string, out io.Writer) (Options, error) {
	var o Options
	ran := false
	cmd := NewCommand(&o, func(cmd *cobra.Command) error {
		ran = true
		if o.Config != "" {
			conf, unknown, err := LoadConfigFile(o.Config)
			if err != nil {
				return err
			}
			for _, k := range unknown {
				o.Warnings = append(o.Warnings, fmt.Sprintf("config %s: unknown key %q", o.Config, k))
			}
			conf.Merge(&o, cmd.Flags())
		}
		return Validate(&o)
	})
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err != nil {
		return o, err
	}
	if !ran {
		return o, ErrPrintedAndExitOK
	}
	return o, nil
}

// Validate applies the invariants shared by every run.
func Validate(o *Options) error {
	switch o.Format {
	case FormatGFF, FormatGenBank:
	case "":
		return errors.New("one of --gff or --gb is required")
	default:
		return fmt.Errorf("invalid annotation format %q (want gff or gb)", o.Format)
	}
	if o.Input == "" {
		return errors.New("--input is required")
	}
	if o.Position == "" && o.PositionsFile == "" {
		return errors.New("provide --position or --positions-file")
	}
	if o.Input == "-" && o.PositionsFile == "-" {
		return errors.New("--input and --positions-file cannot both read stdin")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if !slices.Contains(output.Formats, o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}

// Usage renders the help text, for printing after a usage error.
func Usage(out io.Writer) {
	cmd := NewCommand(&Options{}, func(*cobra.Command) error { return nil })
	cmd.SetOut(out)
	_ = cmd.Usage()
}

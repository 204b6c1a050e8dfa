// internal/cli/config.go
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Config is the optional TOML file given with --config. Every key is a
// default that an explicitly set flag overrides.
//
//	format  = "gff"        # or "gb"
//	input   = "genome.gff3"
//	output  = "text"       # text | json | jsonl | gff
//	header  = false
//	threads = 4
//	quiet   = false
type Config struct {
	Format  string `toml:"format"`
	Input   string `toml:"input"`
	Output  string `toml:"output"`
	Header  bool   `toml:"header"`
	Threads *int   `toml:"threads"` // nil when absent; 0 means all CPUs
	Quiet   bool   `toml:"quiet"`
}

// LoadConfig decodes r. Keys the Config does not know are returned so
// the caller can warn about them.
func LoadConfig(r io.Reader) (Config, []string, error) {
	var conf Config
	md, err := toml.NewDecoder(r).Decode(&conf)
	if err != nil {
		return Config{}, nil, err
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return conf, unknown, nil
}

// LoadConfigFile is LoadConfig over a path.
func LoadConfigFile(path string) (Config, []string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Config{}, nil, err
	}
	defer fh.Close()
	conf, unknown, err := LoadConfig(fh)
	if err != nil {
		return Config{}, nil, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, unknown, nil
}

// Merge copies file values into o for every setting whose flag was not
// given on the command line.
func (c Config) Merge(o *Options, flags *pflag.FlagSet) {
	set := map[string]bool{}
	flags.Visit(func(f *pflag.Flag) { set[f.Name] = true })

	if !set["gb"] && !set["gff"] && c.Format != "" {
		o.Format = c.Format
	}
	if !set["input"] && c.Input != "" {
		o.Input = c.Input
	}
	if !set["output"] && c.Output != "" {
		o.Output = c.Output
	}
	if !set["header"] {
		o.Header = o.Header || c.Header
	}
	if !set["threads"] && c.Threads != nil {
		o.Threads = *c.Threads
	}
	if !set["quiet"] {
		o.Quiet = o.Quiet || c.Quiet
	}
}

package cli

import (
	"flag"
	"fmt"
	"os"

	"typing-app/internal/style"
)

// Config holds the command-line options.
type Config struct {
	Print     bool
	KeyWidth  float64
	KeyHeight float64
}

// Style returns the style config with the command-line overrides applied.
func (c *Config) Style() style.Config {
	s := style.DefaultConfig()
	s.KeyWidth = float32(c.KeyWidth)
	s.KeyHeight = float32(c.KeyHeight)
	return s
}

// ParseFlags parses args (without the program name). It returns a default
// config when no arguments are given and nil when help was requested.
func ParseFlags(args []string) (*Config, error) {
	cfg := &Config{
		KeyWidth:  style.KeyWidth,
		KeyHeight: style.KeyHeight,
	}
	if len(args) == 0 {
		return cfg, nil
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		PrintUsage()
		return nil, nil
	}

	fs := flag.NewFlagSet("typing-app", flag.ContinueOnError)
	fs.Usage = PrintUsage

	fs.BoolVar(&cfg.Print, "print", false, "Print the keyboard as text and exit")
	fs.Float64Var(&cfg.KeyWidth, "key-width", cfg.KeyWidth, "Base key width")
	fs.Float64Var(&cfg.KeyHeight, "key-height", cfg.KeyHeight, "Key height")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if err := cfg.Style().Validate(); err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Typing app

Usage: typing-app [flags]
       typing-app help    (show this message)

Without flags the keyboard window is opened.

FLAGS:
  -print                   Print the keyboard as text and exit
  -key-width <units>       Base key width (default: %d)
  -key-height <units>      Key height (default: %d)

EXAMPLES:
  # Open the keyboard with larger keys
  typing-app -key-width 48 -key-height 48

  # Dump the layout to the terminal
  typing-app -print

`, style.KeyWidth, style.KeyHeight)
}

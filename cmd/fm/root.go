package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/fm"
)

var version = "0.1.0"

// errUsage reports that fm was run with nothing to evaluate and printed help
// instead. It carries no message of its own.
var errUsage = errors.New("usage")

const long = `fm is a terminal-based mathematical expression evaluator.

Expressions are evaluated strictly from left to right, with no operator
precedence: "10 - 2 * 3" is 24. Brackets must be separate tokens:
"( 1 + 2 ) * 4" is 12. A single argument may hold a whole expression.

Operators:
  +     addition
  -     subtraction
  *     multiplication
  /     division
  %     modulus
  ^     raise to power
  !     factorial
  nrt   root ("27 nrt 3" is the cube root of 27)
  log   logarithm ("8 log 2" is the base-2 logarithm of 8)

"fm help", "fm ?", and "fm -help" print this help. "fm version" and
"fm -version" print the version. Running fm with no expression prints
this help and exits with status 1.

Environment:
  FD_DEBUG    if set, print debug statements to stderr
  FD_WARN     if set, print warnings to stderr
  FM_CONFIG   config file path (TOML or YAML)`

// options holds the resolved settings for one run.
type options struct {
	config   string
	inname   string
	verb     string
	prec     uint
	maxDepth int
	debug    bool
	warn     bool
	strict   bool
	echo     bool
}

func newRootCmd(lookup func(string) (string, bool)) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "fm [flags] [--] EXPRESSION...",
		Short: "Evaluate arithmetic strictly from left to right",
		Long:  long,
		Example: `  fm 21 + 21 + 21
  FD_DEBUG=1 fm "234 ^ 89"
  fm -- -3 + 5`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.inname == "" && len(args) <= 1 {
				w := ""
				if len(args) == 1 {
					w = args[0]
				}
				switch w {
				case "":
					if err := cmd.Help(); err != nil {
						return err
					}
					return errUsage
				case "help", "?":
					return cmd.Help()
				case "version":
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "fm %s\n", version)
					return err
				}
			}
			if err := o.resolve(cmd, lookup); err != nil {
				return err
			}
			return o.run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	cmd.SetVersionTemplate("fm {{.Version}}\n")
	fl := cmd.Flags()
	// Stop at the first expression token so that e.g. "-" is not a flag.
	fl.SetInterspersed(false)
	fl.StringVar(&o.config, "config", "", "config file (default $FM_CONFIG or <user config dir>/fm/config.toml)")
	fl.StringVar(&o.inname, "in", "", `read expressions from a file, one per line ("-" for stdin)`)
	fl.StringVar(&o.verb, "fmt", "", "result formatting verb, e.g. %g (default plain decimal)")
	fl.UintVarP(&o.prec, "prec", "p", fm.DefaultPrec, "precision in bits of exponents, roots, and logarithms")
	fl.IntVar(&o.maxDepth, "max-depth", fm.DefaultMaxDepth, "maximum nesting of brackets")
	fl.BoolVar(&o.debug, "debug", false, "print classified tokens and evaluation steps")
	fl.BoolVar(&o.warn, "warn", false, "print warnings about ignored input")
	fl.BoolVar(&o.strict, "strict", false, "treat numbers with no operator as errors")
	fl.BoolVar(&o.echo, "echo", false, "print classified tokens before each result")
	return cmd
}

// legacyArgs rewrites the single-dash -help and -version spellings in the
// leading flags to the ones cobra understands.
func legacyArgs(args []string) []string {
	r := make([]string, len(args))
	copy(r, args)
	for i, a := range r {
		if a == "--" || !strings.HasPrefix(a, "-") || len(a) == 1 {
			break
		}
		switch a {
		case "-help":
			r[i] = "--help"
		case "-version":
			r[i] = "--version"
		}
	}
	return r
}

// resolve fills settings not given as flags from the environment and the
// config file.
func (o *options) resolve(cmd *cobra.Command, lookup func(string) (string, bool)) error {
	cfg, err := loadConfig(o.config, lookup)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if !fl.Changed("debug") {
		_, env := lookup("FD_DEBUG")
		o.debug = cfg.Debug || env
	}
	if !fl.Changed("warn") {
		_, env := lookup("FD_WARN")
		o.warn = cfg.Warn || env
	}
	if !fl.Changed("strict") {
		o.strict = cfg.Strict
	}
	if !fl.Changed("echo") {
		o.echo = cfg.Echo
	}
	if !fl.Changed("prec") && cfg.Prec != 0 {
		o.prec = cfg.Prec
	}
	if !fl.Changed("max-depth") && cfg.MaxDepth != 0 {
		o.maxDepth = cfg.MaxDepth
	}
	if !fl.Changed("fmt") {
		o.verb = cfg.Fmt
	}
	return nil
}

// context creates an evaluation context that logs to stderr.
func (o *options) context(stderr io.Writer) *fm.Context {
	opts := []fm.ContextOption{
		fm.Prec(o.prec),
		fm.MaxDepth(o.maxDepth),
		fm.Strict(o.strict),
	}
	if o.debug {
		opts = append(opts, fm.DebugLog(log.New(stderr, "DEBUG: ", 0)))
	}
	if o.warn {
		opts = append(opts, fm.WarnLog(log.New(stderr, "WARN: ", 0)))
	}
	return fm.NewContext(opts...)
}

// run evaluates expressions from the input file, then the one in args, and
// prints each result. It stops at the first error.
func (o *options) run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	var exprs [][]string
	if o.inname != "" {
		lines, err := readLines(o.inname, stdin)
		if err != nil {
			return err
		}
		for _, l := range lines {
			exprs = append(exprs, []string{l})
		}
	}
	if len(args) != 0 {
		exprs = append(exprs, args)
	}
	ctx := o.context(stderr)
	for _, e := range exprs {
		if err := o.calc(ctx, stdout, e); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) calc(ctx *fm.Context, w io.Writer, raw []string) error {
	var (
		r    float64
		echo string
		err  error
	)
	if o.echo {
		toks := fm.Normalize(raw)
		if len(toks) == 0 {
			return &fm.EmptyExpressionError{}
		}
		var ts []fm.Token
		if ts, err = ctx.Classify(toks); err != nil {
			return err
		}
		echo = fm.FormatTokens(ts) + " : "
		r, err = ctx.EvalTokens(ts)
	} else {
		r, err = ctx.Eval(raw)
	}
	if err != nil {
		return err
	}
	if o.verb == "" {
		_, err = fmt.Fprintln(w, echo+fm.FormatNumber(r))
		return err
	}
	_, err = fmt.Fprintf(w, "%s"+o.verb+"\n", echo, r)
	return err
}

// readLines reads the non-blank lines of a file. The name "-" means stdin.
func readLines(name string, stdin io.Reader) ([]string, error) {
	in := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var lines []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if l := scan.Text(); strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines, scan.Err()
}

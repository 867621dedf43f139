package main

import (
	"fmt"

	"github.com/napalu/argspec"
	"github.com/napalu/argspec/decl"
	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/i18n"
	"github.com/napalu/argspec/internal/logging"
	"github.com/napalu/argspec/tokenize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	exitResolution = 1
	exitConfig     = 2
)

// exitError carries the process exit code for an error already reported to the user
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

type options struct {
	verbosity int
	lang      string
	line      string
}

// NewRootCmd builds the argspec command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "argspec",
		Short: "Check argument declarations and resolve command lines against them",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "Language for error messages, e.g. de or en-GB")

	root.AddCommand(newLintCmd(opts), newCheckCmd(opts), newExplainCmd(opts))

	return root
}

func newLintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <specfile>",
		Short: "Compile a declaration file and report configuration errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd)
			reg, err := load(opts, args[0])
			if err != nil {
				out.failure(opts.format(err))
				return &exitError{code: exitConfig, err: err}
			}
			out.success(fmt.Sprintf("%d arguments, %d groups", len(reg.Args()), len(reg.Groups())))
			out.declarations(reg)
			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <specfile> [-- args...]",
		Short: "Tokenize and resolve a command line against a declaration file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd)
			reg, err := load(opts, args[0])
			if err != nil {
				out.failure(opts.format(err))
				return &exitError{code: exitConfig, err: err}
			}

			tok := tokenize.New(reg)
			var m *argspec.Matches
			if cmd.Flags().Changed("line") {
				m, err = tok.ParseString(opts.line)
			} else {
				m, err = tok.Parse(args[1:])
			}
			if err != nil {
				out.failure(opts.format(err))
				code := exitResolution
				if errs.IsConfigError(err) {
					code = exitConfig
				}
				return &exitError{code: code, err: err}
			}

			out.success("resolved")
			out.matches(reg, m)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.line, "line", "", "Shell-quoted command line to check instead of the arguments after --")

	return cmd
}

func newExplainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <usage-string>",
		Short: "Show the argument built from a usage string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd)
			a, err := argspec.ParseUsage(args[0])
			if err != nil {
				out.failure(opts.format(err))
				return &exitError{code: exitConfig, err: err}
			}
			out.explain(a)
			return nil
		},
	}
}

func load(opts *options, path string) (*argspec.Registry, error) {
	doc, err := decl.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return doc.Registry(
		argspec.WithLogger(logging.GetLogger("resolve")),
		argspec.WithMessageProvider(opts.provider()),
	)
}

func (o *options) provider() i18n.MessageProvider {
	bundle := i18n.Default()
	if o.lang == "" {
		return i18n.NewBundleMessageProvider(bundle, bundle.DefaultLanguage())
	}

	return i18n.NewBundleMessageProvider(bundle, bundle.Match(o.lang))
}

func (o *options) format(err error) string {
	return argspec.FormatError(err, o.provider())
}

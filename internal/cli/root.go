package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mordilloSan/go-filelog/logger"
)

const (
	defaultFileName = "filelog_%yyyy%-%MM%-%dd%.log"
	defaultFilePath = "logs"
)

type options struct {
	configPath      string
	fileName        string
	filePath        string
	profile         string
	timestampFormat string
	console         bool
	noColor         bool
	includeCaller   bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	isTerm := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	fs.StringVarP(&o.configPath, "config", "c", "", "config file (.yaml, .json5, .toml)")
	fs.StringVar(&o.fileName, "file-name", defaultFileName, "log file name, supports %dd% %MM% %yyyy% %hh% %m% %ss%")
	fs.StringVar(&o.filePath, "file-path", defaultFilePath, "log directory, created if missing")
	fs.StringVarP(&o.profile, "profile", "p", "", "level profile (DEFAULT, DEBUG, PRODUCTIVE, ERROR, CRITICAL, NONE)")
	fs.StringVar(&o.timestampFormat, "timestamp-format", logger.DefaultTimestampFormat, "Go time layout of the entry timestamp")
	fs.BoolVar(&o.console, "console", isTerm, "echo entries to stdout")
	fs.BoolVar(&o.noColor, "no-color", false, "disable console colors")
	fs.BoolVar(&o.includeCaller, "caller", false, "tag messages with the calling function")
}

// loggerConfig layers defaults, the config file and explicitly set flags, in
// that order.
func (o *options) loggerConfig(fs *pflag.FlagSet, stdout io.Writer) (logger.Config, logger.FileConfig, error) {
	cfg := logger.Config{
		FileName:        o.fileName,
		FilePath:        o.filePath,
		Profile:         o.profile,
		DisableConsole:  !o.console,
		TimestampFormat: o.timestampFormat,
		NoColor:         o.noColor,
		IncludeCaller:   o.includeCaller,
		Console:         stdout,
	}
	if o.configPath == "" {
		return cfg, logger.FileConfig{}, nil
	}

	fc, err := logger.LoadConfigFile(o.configPath)
	if err != nil {
		return logger.Config{}, logger.FileConfig{}, err
	}
	cfg = fc.Apply(cfg)

	if fs.Changed("file-name") {
		cfg.FileName = o.fileName
	}
	if fs.Changed("file-path") {
		cfg.FilePath = o.filePath
	}
	if fs.Changed("profile") {
		cfg.Profile = o.profile
	}
	if fs.Changed("timestamp-format") {
		cfg.TimestampFormat = o.timestampFormat
	}
	if fs.Changed("console") {
		cfg.DisableConsole = !o.console
	}
	if fs.Changed("no-color") {
		cfg.NoColor = o.noColor
	}
	if fs.Changed("caller") {
		cfg.IncludeCaller = o.includeCaller
	}
	return cfg, fc, nil
}

func (o *options) newLogger(cmd *cobra.Command) (*logger.Logger, logger.FileConfig, error) {
	cfg, fc, err := o.loggerConfig(cmd.Flags(), cmd.OutOrStdout())
	if err != nil {
		return nil, logger.FileConfig{}, err
	}
	l, err := logger.New(cfg)
	if err != nil {
		return nil, logger.FileConfig{}, err
	}
	return l, fc, nil
}

// NewRootCmd builds the filelog command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "filelog [flags] TYPE MESSAGE...",
		Short: "Append a typed entry to a log file",
		Long: `Append a typed, timestamped entry to a log file and echo it to the console.

TYPE is one of ERROR, INFO, WARNING, CRITICAL, DEBUG (or ERR, I, W, C, D, ...).
Any other TYPE is a custom type and is always written.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := o.newLogger(cmd)
			if err != nil {
				return err
			}
			l.Entry(logger.EntryType(args[0]), strings.Join(args[1:], " "))
			return nil
		},
	}
	o.bind(root.PersistentFlags())

	root.AddCommand(newSweepCmd(o), newProfilesCmd())
	return root
}

// Execute runs the filelog command and exits 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "filelog:", err)
		os.Exit(1)
	}
}

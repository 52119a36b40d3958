package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"coursehub/internal/client"
	"coursehub/internal/config"
	"coursehub/internal/logging"
)

// cli is the state shared by the subcommands of one invocation.
type cli struct {
	out io.Writer

	baseURL  string
	timeout  time.Duration
	logLevel string

	api *client.Client
}

// Execute runs the CLI with os.Args, writing results to stdout.
func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}

// NewRootCommand builds the command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:           "coursectl",
		Short:         "Command-line client for the course recommendation backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&c.baseURL, "base-url", "", "backend base URL including /api (default from config)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "per-request timeout, 0 for none (default from config)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		c.recommendCmd(), c.clickCmd(), c.evaluateCmd(),
		c.coursesCmd(), c.courseTypesCmd(),
		c.registerCmd(), c.loginCmd(), c.profileCmd(),
		c.questionsCmd(),
		c.plansCmd(),
		c.wrongCmd(),
		c.adminCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Client.BaseURL = c.baseURL
	}
	if flags.Changed("timeout") {
		cfg.Client.Timeout = c.timeout
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = c.logLevel
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	api, err := client.NewFromConfig(cfg.Client)
	if err != nil {
		return err
	}
	c.api = api
	return nil
}

// print writes v as indented JSON.
func (c *cli) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(b))
	return err
}

// printResult prints v unless err is set.
func (c *cli) printResult(v any, err error) error {
	if err != nil {
		return err
	}
	return c.print(v)
}

package cli

import (
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/client/client"
	"github.com/dmitrijs2005/passkeeper/internal/client/config"
	"github.com/spf13/cobra"
)

type clientFactory func(addr, token string) (client.Client, error)

type App struct {
	config    *config.Config
	newClient clientFactory
	lookupEnv func(string) (string, bool)

	configPath string
	server     string
	token      string
	timeout    string
}

func NewApp() *App {
	return &App{
		newClient: func(addr, token string) (client.Client, error) {
			return client.NewPassKeeperClient(addr, token)
		},
		lookupEnv: os.LookupEnv,
	}
}

// Run executes the command line in args and returns the first error.
func (a *App) Run(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "passkeeper",
		Short:        "Command-line client for the passkeeper vault",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a JSON config file")
	pf.StringVarP(&a.server, "server", "a", "", "address:port of the gRPC endpoint")
	pf.StringVar(&a.token, "token", "", "session token (defaults to $"+config.EnvToken+")")
	pf.StringVar(&a.timeout, "timeout", "", "per-request timeout, e.g. 10s")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.verifyCommand(),
		a.listCommand(),
		a.addCommand(),
	)
	return root
}

func (a *App) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath, a.lookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerEndpointAddr = a.server
	}
	if flags.Changed("token") {
		cfg.Token = a.token
	}
	if flags.Changed("timeout") {
		d, err := parseTimeout(a.timeout)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = d
	}

	a.config = cfg
	return nil
}

// withClient opens a connection, runs fn under the request timeout and
// closes the connection.
func (a *App) withClient(ctx context.Context, fn func(ctx context.Context, c client.Client) error) error {
	c, err := a.newClient(a.config.ServerEndpointAddr, a.config.Token)
	if err != nil {
		return err
	}
	defer c.Close()

	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}
	return fn(ctx, c)
}

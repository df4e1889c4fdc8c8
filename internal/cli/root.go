// Package cli implements hobbyctl, a terminal front end for the users & hobbies API.
package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yukikurage/user-hobbies-api/internal/client"
)

const envPrefix = "HOBBYCTL"

// app is the state shared by every subcommand once flags are resolved.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	apiURL  string
	timeout time.Duration
	yes     bool
	noColor bool

	api     *client.Client
	queries *client.Queries
}

// NewRootCommand builds the hobbyctl command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rc := &cobra.Command{
		Use:   "hobbyctl",
		Short: "Manage users and their hobbies from the terminal.",
		Long: `hobbyctl lists, creates and deletes users and hobbies through the REST API.

Every flag can also be set through the environment as HOBBYCTL_<FLAG>, for
example HOBBYCTL_API_URL=http://localhost:3002/api.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := setAllConfig(viper.New(), cmd.Flags()); err != nil {
				return err
			}
			a.connect()
			return nil
		},
	}

	flags := rc.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", "http://localhost:3002/api", "Base URL of the API, including the /api prefix.")
	flags.DurationVar(&a.timeout, "timeout", 15*time.Second, "HTTP timeout per request.")
	flags.BoolVarP(&a.yes, "yes", "y", false, "Skip confirmation of destructive actions.")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable coloured output.")

	rc.AddCommand(newUsersCommand(a))
	rc.AddCommand(newHobbiesCommand(a))
	rc.AddCommand(newTableCommand(a))

	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

func (a *app) connect() {
	if a.noColor {
		color.NoColor = true
	}
	a.api = client.New(a.apiURL, client.WithHTTPClient(&http.Client{Timeout: a.timeout}))
	a.queries = client.NewQueries(a.api, client.NewCache(), &notifier{out: a.stderr})
}

// setAllConfig fills every flag not given on the command line from the
// HOBBYCTL_* environment.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil {
			flagErr = fmt.Errorf("invalid value for %s: %w", f.Name, err)
		}
	})
	return flagErr
}

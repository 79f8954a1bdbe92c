package cli

import (
	"fmt"

	"logistic/cmd"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

func newServeCommand(root *cmd.CompositionRoot) *cobra.Command {
	var port string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and the scheduled notification batch",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			out := cobraCmd.OutOrStdout()

			server, err := root.CreateHTTPServer(out)
			if err != nil {
				return err
			}

			jobManager, err := root.CreateJobManager(out)
			if err != nil {
				return err
			}

			if err := jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			e := echo.New()
			e.HideBanner = true
			server.RegisterRoutes(e)

			if port == "" {
				port = root.HTTPPort()
			}
			return e.Start(fmt.Sprintf("0.0.0.0:%s", port))
		},
	}

	serveCmd.Flags().StringVar(&port, "port", "", "HTTP port, overrides HTTP_PORT")
	return serveCmd
}

// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrpath/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve shortest-path queries over HTTP",
		Example: `  csrpath serve --dataset karate --addr :8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if cmd.Flags().Changed("addr") {
				c.cfg.Server.Addr = addr
			}
			r, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer r.Cache.Close()

			s := server.New(r,
				server.WithLogger(loggerFromContext(ctx)),
				server.WithQueryTimeout(c.cfg.Server.QueryTimeout),
			)

			return s.ListenAndServe(ctx, c.cfg.Server.Addr, c.cfg.Server.ShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")

	return cmd
}

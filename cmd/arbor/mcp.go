package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the topics to agents over MCP",
	Long: `Serves the list_topics, play and describe_topic tools and the
arbor://topics resource over the Model Context Protocol.

Transports:
  stdio  JSON-RPC on stdin/stdout, for agents that spawn arbor themselves
  sse    Server-Sent Events on --port`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		_, logger, engine, closeFn, err := setup(sc, cmd, true)
		if err != nil {
			return err
		}
		defer closeFn()

		srv := mcp.NewServer(engine, mcp.WithLogger(logger))

		switch transport {
		case "stdio":
			// stdout carries JSON-RPC.
			log.SetOutput(os.Stderr)
			logger.Info("starting arbor MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("starting arbor MCP server (SSE)", "port", port)
			if err := srv.ServeSSE(sc, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("mcp server stopped")
			return nil
		default:
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "stdio or sse")
	mcpCmd.Flags().Int("port", 8080, "SSE listen port")
}

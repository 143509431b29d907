package main

import (
	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/storage/sqlite"
	"github.com/sandevgo/studykb/internal/transport/mcpserver"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the knowledge base over MCP on stdio",
	Long:  `Exposes the Q&A knowledge base as MCP tools (add, search, categories, stats) for MCP-capable clients. Communicates over stdin/stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Logs go to stderr, stdout belongs to the MCP protocol
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		return mcpserver.NewServer(sqlite.NewQARepo(db)).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

package main

import (
	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/service/seed"
	"github.com/sandevgo/studykb/internal/storage/sqlite"
	"github.com/sandevgo/studykb/pkg/log"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the knowledge base with sample study content",
	Long:  `Fills an empty knowledge base with sample English and Korean Q&A pairs across all study categories. Does nothing if the database already has content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		added, err := seed.Populate(ctx, sqlite.NewQARepo(db))
		if err != nil {
			return err
		}

		if added == 0 {
			logger.Info().Msg("knowledge base already has content, nothing to do")
			return nil
		}
		logger.Info().Int("added", added).Msg("knowledge base seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

package cmd

import (
	"mgd/internal/buildinfo"
	"mgd/internal/config"
	"mgd/internal/domain"
	"mgd/internal/download"
	"mgd/internal/files"
	"mgd/internal/logger"
	"mgd/internal/mangadex"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter <id or url>",
	Short: "Download a single chapter",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// read config
		cfg := config.New(configPath, buildinfo.Version)

		// init new logger
		log := logger.New(cfg.Config)

		if !cmd.Flags().Changed("path") && cfg.Config.DownloadLocation != "" {
			downloadPath = cfg.Config.DownloadLocation
		}
		dataSaver := cfg.Config.DataSaver
		if cmd.Flags().Changed("raw") {
			dataSaver = !raw
		}

		chapterID, err := mangadex.ResolveChapter(args[0])
		if err != nil {
			log.Fatal().Err(err).Msgf("error resolving chapter reference")
		}

		if _, err := uuid.Parse(chapterID); err != nil {
			log.Warn().Msgf("%q doesn't look like a chapter id", chapterID)
		}

		if err := files.IsValidLocation(downloadPath); err != nil {
			log.Fatal().Err(err).Msgf("invalid download location")
		}

		req := domain.NewChapterRequest(chapterID)
		req.DataSaver = dataSaver
		req.Path = downloadPath

		downloader := download.NewChapterDownloader(mangadex.NewClient())

		if err := downloader.Ready(ctx); err != nil {
			log.Fatal().Err(err).Msgf("error waiting for download slot")
		}

		log.Info().Msgf("downloading chapter %s", chapterID)
		if err := downloader.Download(ctx, req); err != nil {
			log.Fatal().Err(err).Msgf("error downloading chapter")
		}
		log.Info().Msgf("finished downloading chapter %s", chapterID)
	},
}

package cmd

import (
	"path/filepath"
	"time"

	"mgd/internal/buildinfo"
	"mgd/internal/config"
	"mgd/internal/domain"
	"mgd/internal/download"
	"mgd/internal/files"
	"mgd/internal/logger"
	"mgd/internal/mangadex"
	"mgd/internal/parse"
	"mgd/internal/sanitize"
	"mgd/internal/templater"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var mangaCmd = &cobra.Command{
	Use:   "manga <id or url>",
	Short: "Download chapters of a manga",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// read config
		cfg := config.New(configPath, buildinfo.Version)

		// init new logger
		log := logger.New(cfg.Config)

		if err := cfg.UpdateConfig(); err != nil {
			log.Error().Err(err).Msgf("error updating config")
		}

		// init dynamic config
		cfg.DynamicReload(log)

		// flags beat config values, config values beat built-in defaults
		if !cmd.Flags().Changed("language") && cfg.Config.Language != "" {
			language = cfg.Config.Language
		}
		if !cmd.Flags().Changed("naming") && cfg.Config.NamingTemplate != "" {
			naming = cfg.Config.NamingTemplate
		}
		if !cmd.Flags().Changed("path") && cfg.Config.DownloadLocation != "" {
			downloadPath = cfg.Config.DownloadLocation
		}
		dataSaver := cfg.Config.DataSaver
		if cmd.Flags().Changed("raw") {
			dataSaver = !raw
		}

		mangaID, err := mangadex.ResolveManga(args[0])
		if err != nil {
			log.Fatal().Err(err).Msgf("error resolving manga reference")
		}

		if _, err := uuid.Parse(mangaID); err != nil {
			log.Warn().Msgf("%q doesn't look like a manga id", mangaID)
		}
		for _, group := range groups {
			if _, err := uuid.Parse(group); err != nil {
				log.Warn().Msgf("%q doesn't look like a group id", group)
			}
		}

		if err := files.IsValidLocation(downloadPath); err != nil {
			log.Fatal().Err(err).Msgf("invalid download location")
		}

		client := mangadex.NewClient()

		volumes, err := client.Aggregate(ctx, mangadex.AggregateQuery{
			MangaID:   mangaID,
			Groups:    groups,
			Languages: []string{language},
		})
		if err != nil {
			log.Fatal().Err(err).Msgf("error fetching volumes for manga %s", mangaID)
		}

		criteria := parse.Criteria{
			Volumes:  volumeNumbers,
			Chapters: chapterNumbers,
		}
		if cmd.Flags().Changed("min-chapter") {
			criteria.ChapterRange.Min = &minChapter
		}
		if cmd.Flags().Changed("max-chapter") {
			criteria.ChapterRange.Max = &maxChapter
		}
		if cmd.Flags().Changed("min-volume") {
			criteria.VolumeRange.Min = &minVolume
		}
		if cmd.Flags().Changed("max-volume") {
			criteria.VolumeRange.Max = &maxVolume
		}

		chapters := parse.SelectChapters(volumes, criteria)
		if len(chapters) == 0 {
			log.Warn().Msgf("no chapters matching the given filters for manga %s", mangaID)
			return
		}

		var downloader domain.Downloader = download.NewChapterDownloader(client)
		downloader = download.NewThrottle(downloader, cfg.Config.RateBurst, time.Duration(cfg.Config.RateEvery)*time.Second)

		width := parse.PadWidth(chapters)

		var chapterDirs []string
		for _, chapter := range chapters {
			t := templater.New(chapter, width)
			chapterName := sanitize.Filename(t.ExecTemplate(naming))

			req := domain.NewChapterRequest(chapter.ID)
			req.DataSaver = dataSaver
			req.Path = filepath.Join(downloadPath, chapterName)

			cLog := log.With().Str("chapter", chapterName).Logger()

			if err := downloader.Ready(ctx); err != nil {
				cLog.Error().Err(err).Msg("error waiting for download slot")
				continue
			}

			cLog.Info().Msgf("downloading %q", chapterName)
			if err := downloader.Download(ctx, req); err != nil {
				cLog.Error().Err(err).Msg("error downloading chapter")
				continue
			}

			chapterDirs = append(chapterDirs, req.Path)
		}

		if makeCbz {
			log.Info().Msg("packing chapters into manga.cbz")
			if err := files.CreateCbzArchive(chapterDirs); err != nil {
				log.Fatal().Err(err).Msgf("error creating cbz archive")
			}
		}

		if makePdf {
			log.Info().Msg("rendering chapters into manga.pdf")
			if err := files.CreatePDF(chapterDirs); err != nil {
				log.Fatal().Err(err).Msgf("error creating pdf")
			}
		}
	},
}

package cmd

var (
	configPath string

	language       string
	groups         []string
	chapterNumbers []float32
	volumeNumbers  []float32
	minChapter     float32
	maxChapter     float32
	minVolume      float32
	maxVolume      float32
	naming         string
	downloadPath   string
	raw            bool
	makeCbz        bool
	makePdf        bool
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config file",
	)
}

func initMangaFlags() {
	mangaCmd.Flags().StringVarP(
		&language,
		"language",
		"l",
		"en",
		"specifies the translated language you want to download",
	)
	mangaCmd.Flags().StringSliceVarP(
		&groups,
		"groups",
		"g",
		nil,
		"specifies the scanlation groups you want to download from",
	)

	mangaCmd.Flags().Float32SliceVarP(
		&chapterNumbers,
		"chapters",
		"C",
		nil,
		"specifies the chapter numbers you want to download",
	)
	mangaCmd.Flags().Float32SliceVarP(
		&volumeNumbers,
		"volumes",
		"v",
		nil,
		"specifies the volume numbers you want to download",
	)
	mangaCmd.Flags().Float32Var(
		&minChapter,
		"min-chapter",
		0,
		"lowest chapter number you want to download",
	)
	mangaCmd.Flags().Float32Var(
		&maxChapter,
		"max-chapter",
		0,
		"highest chapter number you want to download",
	)
	mangaCmd.Flags().Float32Var(
		&minVolume,
		"min-volume",
		0,
		"lowest volume number you want to download",
	)
	mangaCmd.Flags().Float32Var(
		&maxVolume,
		"max-volume",
		0,
		"highest volume number you want to download",
	)

	mangaCmd.Flags().StringVarP(
		&naming,
		"naming",
		"n",
		"chapter_{num:auto}",
		"specifies the naming template you want to use for chapter folders",
	)
	mangaCmd.Flags().StringVarP(
		&downloadPath,
		"path",
		"p",
		".",
		"specifies the directory where you want to save your downloads",
	)
	mangaCmd.Flags().BoolVarP(
		&raw,
		"raw",
		"r",
		false,
		"download the original quality pages",
	)
	mangaCmd.Flags().BoolVar(
		&makeCbz,
		"make-cbz",
		false,
		"pack the downloaded chapters into a cbz file",
	)
	mangaCmd.Flags().BoolVar(
		&makePdf,
		"make-pdf",
		false,
		"render the downloaded chapters into a pdf file",
	)

	// only one way of picking chapters can be active, except for the
	// two bounds of the same range
	mangaCmd.MarkFlagsMutuallyExclusive("volumes", "chapters", "min-chapter", "min-volume")
	mangaCmd.MarkFlagsMutuallyExclusive("volumes", "chapters", "min-chapter", "max-volume")
	mangaCmd.MarkFlagsMutuallyExclusive("volumes", "chapters", "max-chapter", "min-volume")
	mangaCmd.MarkFlagsMutuallyExclusive("volumes", "chapters", "max-chapter", "max-volume")

	mangaCmd.MarkFlagsMutuallyExclusive("make-cbz", "make-pdf")
}

func initChapterFlags() {
	chapterCmd.Flags().StringVarP(
		&downloadPath,
		"path",
		"p",
		".",
		"specifies the directory where you want to save your downloads",
	)
	chapterCmd.Flags().BoolVarP(
		&raw,
		"raw",
		"r",
		false,
		"download the original quality pages",
	)
}

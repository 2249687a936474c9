package domain

type Config struct {
	Version          string
	ConfigPath       string
	DownloadLocation string `yaml:"downloadLocation"`
	NamingTemplate   string `yaml:"namingTemplate"`
	Language         string `yaml:"language"`
	RateEvery        int    `yaml:"rateEvery"` // in seconds
	RateBurst        int    `yaml:"rateBurst"`
	DataSaver        bool   `yaml:"dataSaver"`
	LogPath          string `yaml:"logPath"`
	LogLevel         string `yaml:"LogLevel"`
	LogMaxSize       int    `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups    int    `yaml:"logMaxBackups"`
}

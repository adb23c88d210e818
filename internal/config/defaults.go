package config

const (
	defaultLogDir               = "~/.local/share/weft/logs"
	defaultCacheDir             = "~/.local/share/weft/cache"
	defaultLogLevel             = "info"
	defaultLogFormat            = "console"
	defaultDownloadSlots        = 5
	defaultUploadSlots          = 3
	defaultWearablesTimeout     = 10
	defaultWearableFetchTimeout = 10
	defaultCacheResponseTimeout = 10
	defaultTextureFetchTimeout  = 30
	defaultUploadTimeout        = 30
	defaultAssetCacheMaxMiB     = 256
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			CacheDir: defaultCacheDir,
		},
		Logging: Logging{
			LogLevel:  defaultLogLevel,
			LogFormat: defaultLogFormat,
		},
		Pipeline: Pipeline{
			DownloadSlots:        defaultDownloadSlots,
			UploadSlots:          defaultUploadSlots,
			WearablesTimeout:     defaultWearablesTimeout,
			WearableFetchTimeout: defaultWearableFetchTimeout,
			CacheResponseTimeout: defaultCacheResponseTimeout,
			TextureFetchTimeout:  defaultTextureFetchTimeout,
			UploadTimeout:        defaultUploadTimeout,
		},
		AssetCache: AssetCache{
			Enabled: true,
			MaxMiB:  defaultAssetCacheMaxMiB,
		},
		Loopback: Loopback{
			Enabled:   false,
			CacheHits: true,
		},
	}
}

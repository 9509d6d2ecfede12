package config

const (
	defaultLogDir        = "~/.local/share/seasonbrake/logs"
	defaultPrefix        = "s01e"
	defaultStartEpisode  = 1
	defaultExtension     = ".mkv"
	defaultBinary        = "HandBrakeCLI"
	defaultMinDuration   = 2520 // 42 minutes, a sensible cutoff for hour-long broadcast episodes
	defaultNotifyTimeout = 10
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Season: Season{
			Prefix:       defaultPrefix,
			StartEpisode: defaultStartEpisode,
			Extension:    defaultExtension,
		},
		HandBrake: HandBrake{
			Binary:      defaultBinary,
			MinDuration: defaultMinDuration,
		},
		Notifications: Notifications{
			Bell:           true,
			RequestTimeout: defaultNotifyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{Host: "0.0.0.0", Port: 3000},
		Cache: Cache{
			RenderedTTLMinutes: 5,
			ThumbTTLMinutes:    60,
		},
		Vimeo: Vimeo{
			BaseURL:        "http://vimeo.com",
			TimeoutSeconds: 5,
		},
		Video: Video{IframeWidth: 640, IframeHeight: 360},
		Links: Links{
			SiteBase:      "https://twitter.com",
			HashtagSearch: "https://twitter.com/search?src=hash&q=",
		},
		RateLimit: RateLimit{PerMinute: 30},
		Logging:   Logging{Level: "info"},
		Source:    Source{File: "testdata/timeline.json"},
	}
}

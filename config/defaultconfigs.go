package config

var DefaultConfig Config
var DefaultColors BrowserColors

func init() {
	DefaultColors = BrowserColors{
		Border:    60,
		Title:     255,
		Label:     250,
		Hint:      245,
		Selected:  109,
		Window:    160,
		Path:      208,
		Highlight: 226,
	}

	DefaultConfig = Config{
		Render: RenderConfig{
			GridWidth:      8,
			GridHeight:     8,
			HighlightColor: 43,
		},
		Server: ServerConfig{
			Port:        3001,
			Addr:        "",
			MaxUploadMB: 32,
		},
		Browser: DefaultColors,
	}
}

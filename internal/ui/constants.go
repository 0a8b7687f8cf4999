package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// DoneMarker is appended to a URL line once its item has been processed
const DoneMarker = " ✔"

// Layout sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 460
	LogoMaxSize  float32 = 128
)

// URLEntryRows is the visible height of the URL input
const URLEntryRows = 8

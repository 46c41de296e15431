package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck  = "" // check
	IconX      = "" // x
	IconConfig = "" // config
	IconFolder = "" // folder
)

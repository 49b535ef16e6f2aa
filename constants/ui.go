package constants

// Glyphs
const (
	// SaucerGlyph is the saucer sprite; the leading space erases the vacated column
	SaucerGlyph = " <--->"

	// ShotGlyph is the rising rocket
	ShotGlyph = '^'

	// LaunchSiteGlyph is the launch pad; the shot leaves from its centre cell
	LaunchSiteGlyph = " | "

	// LaunchSiteWidth is the number of columns the launch pad covers
	LaunchSiteWidth = 3
)

// Status line and end screen text
const (
	StatusFormat = " score: %d, rockets remaining: %d, escaped saucers: %d/%d        "

	EndHeadlineAmmo   = "YOU RAN OUT OF ROCKETS :("
	EndHeadlineEscape = "TOO MANY SAUCERS ESCAPED :("
	EndHeadlineQuit   = "GAME OVER"
	EndThanks         = "Thanks for playing!"
	EndPrompt         = "(Press 'Q' to exit)"

	PauseText   = "PAUSED"
	PausePrompt = "(press 'p' to resume)"
)

// Keys
const (
	KeyQuit   = 'Q'
	KeyFire   = ' '
	KeyLeft   = ','
	KeyRight  = '.'
	KeyPause  = 'p'
	KeyColour = 'c'
)

package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconWarning = "\uf071" // warning
	IconTrash   = "\uf1f8" // trash
	IconLock    = "\uf023" // lock
	IconSearch  = "\uf002" // search

	// History
	IconClipboard = "\uf0ea" // clipboard
	IconClock     = "\uf017" // clock
	IconStar      = "\uf005" // favorite
)

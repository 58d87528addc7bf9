package port

// Paths resolves where pastor keeps its files.
type Paths interface {
	ConfigFile() (string, error)
	DataDir() (string, error)
	LogDir() (string, error)
	// HistoryFile is the encrypted history of the current build profile.
	HistoryFile() (string, error)
}

package printer

const (
	// DefaultDebugPrefix is appended to the prefix of debug prints.
	DefaultDebugPrefix = "[Debug]"
	// DefaultPrinterID identifies printers that were not given an ID.
	DefaultPrinterID = "loggedprint-default"
)

// Config holds every switch of a printer. It is a plain value: specialize a
// printer by building a different Config, then hand it to New or SetConfig.
type Config struct {
	// Prefix is printed before every line.
	Prefix string
	// DebugPrefix follows Prefix, separated by a space, on debug prints.
	DebugPrefix string
	// PrinterID tags stored entries so several printers can share a store.
	PrinterID string

	// Enabled turns the printer off completely when false.
	Enabled bool
	// AllowsLogging controls whether prints are recorded in the store.
	AllowsLogging bool
	// PrintDebugLines controls console output of debug prints.
	PrintDebugLines bool
	// LogsDebugLines controls whether debug prints are recorded.
	LogsDebugLines bool
	// ShowPrefixesIntoLoggedLines stores the prefixed line instead of the raw message.
	ShowPrefixesIntoLoggedLines bool
	// PutPrefixOnAllLines repeats the prefix on every line of a message.
	PutPrefixOnAllLines bool
	// TrackPrintTime attaches the emit time to stored entries.
	TrackPrintTime bool
	// DisplayPrintTime puts the emit time in front of the prefix.
	DisplayPrintTime bool

	// ReadLoggedDebugLines includes debug entries in read results.
	ReadLoggedDebugLines bool
	// ReadLoggedLinesFromAllPrinters includes entries of other printers in read results.
	ReadLoggedLinesFromAllPrinters bool
	// ZeroUnreadAfterReadAll makes ReadAllLog reset the unread counter.
	ZeroUnreadAfterReadAll bool
}

// DefaultConfig returns the configuration new printers start with.
func DefaultConfig() Config {
	return Config{
		DebugPrefix:                    DefaultDebugPrefix,
		PrinterID:                      DefaultPrinterID,
		Enabled:                        true,
		AllowsLogging:                  true,
		PrintDebugLines:                true,
		LogsDebugLines:                 true,
		ShowPrefixesIntoLoggedLines:    true,
		PutPrefixOnAllLines:            true,
		ReadLoggedLinesFromAllPrinters: true,
	}
}

// logs reports whether a print with the given debug flag is recorded.
func (c Config) logs(isDebug bool) bool {
	return c.AllowsLogging && (!isDebug || c.LogsDebugLines)
}

// prints reports whether a print with the given debug flag reaches the console.
func (c Config) prints(isDebug bool) bool {
	return !isDebug || c.PrintDebugLines
}

// stamps reports whether an emit needs to read the clock.
func (c Config) stamps() bool {
	return c.TrackPrintTime || c.DisplayPrintTime
}

package commands

// Output formats for exec.
const (
	FormatHTML = "html"
	FormatText = "text"
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrUnknownFormat            = "unknown format %q (want html or text)"
	ErrKeyRequired              = "--key is required"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgResetNeedsConfirm  = "This deletes every stored record, contacts included. Re-run with --confirm to proceed."
	MsgNoContacts         = "No contact submissions yet."
)

// annotationNoContainer marks commands that run without building the container.
const annotationNoContainer = "termfolio/no-container"

// SkipsContainer reports whether annotations opt a command out of container
// construction.
func SkipsContainer(annotations map[string]string) bool {
	return annotations[annotationNoContainer] == "true"
}

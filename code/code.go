package code

// Code is a machine-readable identifier for a user-reportable error class.
// Codes are selected by value, never by message text; the set of valid codes
// is closed once the registry is sealed.
type Code string

// String returns the code identifier.
func (c Code) String() string { return string(c) }

// General is the reserved code for failures the caller chose not to
// classify. Unclassified errors reaching the boundary handler are reported
// under this code.
const General Code = "GENERAL"

// Built-in codes covering the common failure classes.
const (
	// BadConfig indicates invalid or unreadable configuration.
	BadConfig Code = "BAD_CONFIG"
	// NotFound indicates the requested resource was not found.
	NotFound Code = "NOT_FOUND"
	// AlreadyExists indicates the resource already exists.
	AlreadyExists Code = "ALREADY_EXISTS"
	// InvalidInput indicates the input failed validation.
	InvalidInput Code = "INVALID_INPUT"
	// Timeout indicates an operation exceeded its deadline.
	Timeout Code = "TIMEOUT"
	// Unavailable indicates a dependency is temporarily unavailable.
	Unavailable Code = "UNAVAILABLE"
	// PermissionDenied indicates the caller lacks permission.
	PermissionDenied Code = "PERMISSION_DENIED"
)

// builtin lists the codes every registry starts with.
func builtin() []Code {
	return []Code{
		General,
		BadConfig,
		NotFound,
		AlreadyExists,
		InvalidInput,
		Timeout,
		Unavailable,
		PermissionDenied,
	}
}

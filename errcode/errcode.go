package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
// The value of each code is the exact token sent on the wire after "ERR=".
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	// Protocol errors. All are recoverable; the offending line is echoed
	// back in the VAL field and the loop continues.
	BadRGB     Code = "BAD_RGB"
	BadGoto    Code = "BAD_GOTO"
	UnknownCmd Code = "UNKNOWN_CMD"
	CmdTooLong Code = "CMD_TOO_LONG"

	// Startup codes. Any sensor init failure is fatal: the device reports
	// and halts, it does not retry.
	IMUInit    Code = "IMU_INIT"
	EnvInit    Code = "ENV_INIT"
	InitFailed Code = "INIT_FAILED"
)

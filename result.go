package wandbox

import "fmt"

// CompilationResult holds everything wandbox reports back about a single
// compilation job. Fields the service omitted are left as their zero value.
// A result is never mutated once parsed.
type CompilationResult struct {
	// Status is the exit code of the program as a string, "0" on success.
	Status string `json:"status"`
	// Signal is set when the program was killed by a signal.
	Signal string `json:"signal"`

	CompilerStdout string `json:"compiler_output"`
	CompilerStderr string `json:"compiler_error"`
	// CompilerAll interleaves compiler stdout and stderr in arrival order.
	CompilerAll string `json:"compiler_message"`

	ProgramStdout string `json:"program_output"`
	ProgramStderr string `json:"program_error"`
	// ProgramAll interleaves program stdout and stderr in arrival order.
	ProgramAll string `json:"program_message"`

	// Permlink and URL are only present when the request asked wandbox to
	// save the compilation.
	Permlink string `json:"permlink"`
	URL      string `json:"url"`
}

// Success reports whether the program ran and exited cleanly.
func (r *CompilationResult) Success() bool {
	return r.Status == "0" && r.Signal == ""
}

func (r *CompilationResult) String() string {
	return fmt.Sprintf("[%s %s] %s: %s", r.Status, r.Signal, r.CompilerAll, r.ProgramAll)
}

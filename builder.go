package wandbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/Headline/wandbox-go/internal/validation"
)

// SourceFile is an additional file submitted alongside the main source, e.g.
// a header included by it. Wandbox places these next to the main file.
type SourceFile struct {
	Name    string `json:"file"`
	Content string `json:"code"`
}

// compileRequest is the wire shape of the compile endpoint's request body.
// The option list travels newline-joined in compiler-option-raw.
type compileRequest struct {
	Compiler string `json:"compiler" validate:"required"`
	Code     string `json:"code" validate:"required"`

	Stdin             string       `json:"stdin,omitempty"`
	CompilerOptionRaw string       `json:"compiler-option-raw,omitempty"`
	Codes             []SourceFile `json:"codes,omitempty"`
	Save              bool         `json:"save,omitempty"`
}

// CompilationBuilder accumulates the configuration of one compilation job.
// Set a target and code, optionally resolve the target through a catalog via
// Build, then hand the builder to Client.Compile. A builder describes exactly
// one job and is not reused after dispatch.
type CompilationBuilder struct {
	target   string
	language string
	compiler string

	code    string
	stdin   string
	options []string
	files   []SourceFile
	save    bool
}

func NewCompilationBuilder() *CompilationBuilder {
	return &CompilationBuilder{}
}

// Target sets what to compile with. This can be a compiler name ("gcc-head")
// or, when the builder is later resolved through a catalog, a language
// ("c++") whose default compiler will be used.
func (b *CompilationBuilder) Target(target string) {
	b.target = strings.TrimSpace(target)
}

// Code sets the source code of the main file.
func (b *CompilationBuilder) Code(code string) {
	b.code = strings.TrimSpace(code)
}

// Stdin sets the standard input handed to the program once it runs.
func (b *CompilationBuilder) Stdin(stdin string) {
	b.stdin = strings.TrimSpace(stdin)
}

// Options sets the compiler option list, e.g. "-Wall", "-Werror". The list
// replaces any previously configured options and keeps its order on the wire.
func (b *CompilationBuilder) Options(options ...string) {
	b.options = options
}

// Save asks wandbox to persist the compilation and reply with a permalink.
func (b *CompilationBuilder) Save(save bool) {
	b.save = save
}

// AddFile attaches an additional named file to the job.
func (b *CompilationBuilder) AddFile(name string, content string) {
	b.files = append(b.files, SourceFile{Name: name, Content: content})
}

// Build resolves the configured target against a catalog. A language target
// resolves to that language's default compiler, a compiler target to its
// owning language. An unknown target fails with a ValidationError. Build is
// optional: without it the target is sent as the compiler name verbatim.
func (b *CompilationBuilder) Build(catalog *Catalog) error {
	switch {
	case catalog.IsLanguage(b.target):
		compiler, ok := catalog.DefaultCompiler(b.target)

		if !ok {
			return &ValidationError{Messages: []string{
				fmt.Sprintf("no default compiler known for language %q", b.target),
			}}
		}

		b.compiler = compiler
		b.language = strings.ToLower(b.target)

	case catalog.IsCompiler(b.target):
		language, ok := catalog.LanguageOf(b.target)

		if !ok {
			return &ValidationError{Messages: []string{
				fmt.Sprintf("no language known for compiler %q", b.target),
			}}
		}

		b.compiler = b.target
		b.language = language

	default:
		return &ValidationError{Messages: []string{
			fmt.Sprintf("target %q is neither a known compiler nor a known language", b.target),
		}}
	}

	return nil
}

// Dispatch sends the job through the given client. Equivalent to calling
// Client.Compile with this builder.
func (b *CompilationBuilder) Dispatch(ctx context.Context, client *Client) (*CompilationResult, error) {
	return client.Compile(ctx, b)
}

// Language returns the language resolved by Build, empty before resolution.
func (b *CompilationBuilder) Language() string { return b.language }

// Compiler returns the compiler the job will be sent to: the resolved
// compiler after Build, the raw target otherwise.
func (b *CompilationBuilder) Compiler() string {
	if b.compiler != "" {
		return b.compiler
	}

	return b.target
}

func (b *CompilationBuilder) payload() (*compileRequest, error) {
	request := &compileRequest{
		Compiler:          b.Compiler(),
		Code:              b.code,
		Stdin:             b.stdin,
		CompilerOptionRaw: strings.Join(b.options, "\n"),
		Codes:             b.files,
		Save:              b.save,
	}

	validate, translator := validation.Validator()

	if err := validate.Struct(request); err != nil {
		return nil, &ValidationError{Messages: validation.TranslateError(err, translator)}
	}

	return request, nil
}

package wandbox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderResolvesLanguageTarget(t *testing.T) {
	catalog := NewCatalog(testListing())

	builder := NewCompilationBuilder()
	builder.Target("c++")
	builder.Code("int main(){}")

	require.NoError(t, builder.Build(catalog))

	assert.Equal(t, "gcc-head", builder.Compiler())
	assert.Equal(t, "c++", builder.Language())
}

func TestBuilderResolvesCompilerTarget(t *testing.T) {
	catalog := NewCatalog(testListing())

	builder := NewCompilationBuilder()
	builder.Target("pypy-head")
	builder.Code("print('test')")

	require.NoError(t, builder.Build(catalog))

	assert.Equal(t, "pypy-head", builder.Compiler())
	assert.Equal(t, "python", builder.Language())
}

func TestBuilderUnknownTarget(t *testing.T) {
	catalog := NewCatalog(testListing())

	builder := NewCompilationBuilder()
	builder.Target("gcc")
	builder.Code("int main(){}")

	err := builder.Build(catalog)

	validationErr := &ValidationError{}
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Error(), "gcc")
}

func TestBuilderTargetUsedVerbatimWithoutBuild(t *testing.T) {
	builder := NewCompilationBuilder()
	builder.Target("gcc-6.3.0")

	assert.Equal(t, "gcc-6.3.0", builder.Compiler())
	assert.Empty(t, builder.Language())
}

func TestBuilderPayload(t *testing.T) {
	builder := NewCompilationBuilder()
	builder.Target("  gcc-head ")
	builder.Code("\nint main(){}\n")
	builder.Stdin(" input ")
	builder.Options("-Wall", "-Werror", "-O2")
	builder.Save(true)
	builder.AddFile("util.h", "#pragma once")

	payload, err := builder.payload()

	require.NoError(t, err)
	assert.Equal(t, "gcc-head", payload.Compiler)
	assert.Equal(t, "int main(){}", payload.Code)
	assert.Equal(t, "input", payload.Stdin)
	assert.Equal(t, "-Wall\n-Werror\n-O2", payload.CompilerOptionRaw)
	assert.True(t, payload.Save)
	require.Len(t, payload.Codes, 1)
	assert.Equal(t, "util.h", payload.Codes[0].Name)
}

func TestBuilderPayloadValidation(t *testing.T) {
	tests := []struct {
		name      string
		configure func(builder *CompilationBuilder)
	}{{
		name:      "missing code",
		configure: func(builder *CompilationBuilder) { builder.Target("gcc-head") },
	}, {
		name:      "missing target",
		configure: func(builder *CompilationBuilder) { builder.Code("int main(){}") },
	}, {
		name:      "whitespace only code",
		configure: func(builder *CompilationBuilder) { builder.Target("gcc-head"); builder.Code("   \n ") },
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewCompilationBuilder()
			tt.configure(builder)

			payload, err := builder.payload()

			assert.Nil(t, payload)

			validationErr := &ValidationError{}
			require.True(t, errors.As(err, &validationErr))
			assert.NotEmpty(t, validationErr.Messages)
		})
	}
}

func TestBuilderEmptyOptionsOmitted(t *testing.T) {
	builder := NewCompilationBuilder()
	builder.Target("gcc-head")
	builder.Code("int main(){}")

	payload, err := builder.payload()

	require.NoError(t, err)
	assert.Empty(t, payload.CompilerOptionRaw)
	assert.Empty(t, payload.Codes)
}

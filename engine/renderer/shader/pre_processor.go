// pre_processor.go normalizes GLSL source text before it reaches the driver. It removes the
// blank line that source embedded in string literals usually starts with, optionally rewrites the
// #version directive so WebGL2 style "300 es" sources compile on a desktop core profile, and
// injects #define lines directly after the directive.
package shader

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	leadingBlankLine = regexp.MustCompile(`^[ \t]*\n`)
	versionDirective = regexp.MustCompile(`(?m)^[ \t]*#version[^\n]*$`)
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	version string
	defines map[string]string
}

// PreProcessor rewrites shader source text ahead of compilation.
type PreProcessor interface {
	// Process strips a single leading whitespace-only line, then applies the configured
	// version rewrite and define injection.
	//
	// Parameters:
	//   - source: the raw shader source
	//
	// Returns:
	//   - string: the source handed to the driver
	Process(source string) string
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor. With no options it only strips the leading blank line.
//
// Parameters:
//   - options: functional options (version rewrite, defines)
//
// Returns:
//   - PreProcessor: the configured pre-processor
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	p := &preProcessor{
		defines: make(map[string]string),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *preProcessor) Process(source string) string {
	source = leadingBlankLine.ReplaceAllString(source, "")
	if p.version == "" && len(p.defines) == 0 {
		return source
	}

	header := ""
	body := source
	if loc := versionDirective.FindStringIndex(source); loc != nil {
		header = strings.TrimSpace(source[loc[0]:loc[1]])
		body = source[:loc[0]] + strings.TrimPrefix(source[loc[1]:], "\n")
	}
	if p.version != "" {
		header = "#version " + p.version
	}

	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteByte('\n')
	}
	names := make([]string, 0, len(p.defines))
	for name := range p.defines {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(&b, "#define %s %s\n", name, p.defines[name])
	}
	b.WriteString(body)
	return b.String()
}

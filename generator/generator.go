// Package generator walks a parsed Program in pre-order and serializes
// it to HTML enriched with utility-class styling. Every emitted fragment
// is a fixed template; this package's job is to produce those exact
// bytes, not to decide what they should be. Text is inserted unescaped
// -- a known, intentional limitation.
package generator

import (
	"fmt"
	"io"

	"github.com/inkmarrow/bloggc/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bloggc.generator'.
func tracer() tracing.Trace {
	return tracing.Select("bloggc.generator")
}

// Generate writes prog's HTML to w in article declaration order. A
// section reference that does not resolve in prog.Sections is fatal
// (UnknownSectionError); any write failure on w is wrapped as IOError.
func Generate(w io.Writer, prog *ast.Program) error {
	for _, article := range prog.Articles {
		for _, ref := range article.SectionRefs {
			sec, ok := prog.Sections[ref]
			if !ok {
				return &UnknownSectionError{Name: ref}
			}
			if err := generateSection(w, sec); err != nil {
				return err
			}
		}
	}
	return nil
}

func generateSection(w io.Writer, sec *ast.SectionDeclaration) error {
	for _, para := range sec.Paragraphs {
		if err := generateParagraph(w, para); err != nil {
			return err
		}
	}
	return nil
}

func generateParagraph(w io.Writer, para *ast.Paragraph) error {
	if err := write(w, "<br/>"); err != nil {
		return err
	}
	for _, stmt := range para.Statements {
		if err := generateStatement(w, stmt); err != nil {
			return err
		}
	}
	return nil
}

func generateStatement(w io.Writer, stmt ast.Statement) error {
	switch stmt.Kind {
	case ast.StatementHeading:
		tracer().Debugf("generator: heading level=%d", stmt.Level)
		return write(w, fmt.Sprintf("<h%d className='text-3xl'>'%s'</h%d>", stmt.Level, stmt.Text, stmt.Level))
	case ast.StatementTextBlock:
		return write(w, fmt.Sprintf("<p>%s</p>", stmt.Text))
	case ast.StatementCodeBlock:
		return write(w, fmt.Sprintf("<pre className='w-full overflow-x-auto'><code>{{'%s'}}</code></pre>", stmt.Text))
	case ast.StatementAside:
		return write(w, fmt.Sprintf("<div className='p-8 bg-opacity-10 bg-black italic'><p>%s</p></div>", stmt.Text))
	case ast.StatementList:
		return generateList(w, stmt.Items)
	}
	return nil
}

func generateList(w io.Writer, items []string) error {
	if err := write(w, "<ul>"); err != nil {
		return err
	}
	for _, item := range items {
		if err := write(w, fmt.Sprintf("<li>%s</li>", item)); err != nil {
			return err
		}
	}
	return write(w, "</ul>")
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return &IOError{Cause: err}
	}
	return nil
}

// Command bloggc is the compiler's CLI front end. Subcommands mirror
// the pipeline's own stages (lex, parse, compile) plus two diagnostic
// modes (query, repl), with a readline-backed REPL and pterm/schuko
// tracing for status output.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/inkmarrow/bloggc"
	"github.com/inkmarrow/bloggc/core/diag"
	"github.com/inkmarrow/bloggc/fs"
	"github.com/inkmarrow/bloggc/style"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

func tracer() tracing.Trace {
	return tracing.Select("bloggc.cli")
}

func main() {
	initDisplay()

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	setupTracing(*tlevel)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "lex":
		err = runLex(args[1:])
	case "parse":
		err = runParse(args[1:])
	case "compile":
		err = runCompile(args[1:])
	case "query":
		err = runQuery(args[1:])
	case "repl":
		err = runRepl(args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{Text: " !  ", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: " Error", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
}

func setupTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.bloggc":    level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func usage() {
	pterm.Info.Println("usage: bloggc [-trace Level] <lex|parse|compile|query|repl> [args]")
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		var sb strings.Builder
		buf := make([]byte, 4096)
		for {
			n, err := os.Stdin.Read(buf)
			sb.Write(buf[:n])
			if err != nil {
				break
			}
		}
		return sb.String(), nil
	}
	return fs.ReadSource(path)
}

func runLex(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: bloggc lex <file>")
	}
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	return lexAndPrint(src)
}

func runParse(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: bloggc parse <file>")
	}
	src, err := readSource(args[0])
	if err != nil {
		return renderDiag(err, "")
	}
	return parseAndPrint(src)
}

func runCompile(args []string) error {
	fset := flag.NewFlagSet("compile", flag.ExitOnError)
	out := fset.String("o", "", "output file, default stdout")
	audit := fset.Bool("audit", false, "audit generated classNames against the base stylesheet")
	fset.Parse(args)
	if fset.NArg() < 1 {
		return fmt.Errorf("usage: bloggc compile [-o out] [-audit] <file>")
	}
	src, err := readSource(fset.Arg(0))
	if err != nil {
		return err
	}
	html, err := bloggc.Compile(src)
	if err != nil {
		return renderDiag(err, src)
	}
	if *audit {
		unknown, aerr := style.Audit(html)
		if aerr != nil {
			return aerr
		}
		for _, cls := range unknown {
			pterm.Warning.Printfln("unknown utility class: %s", cls)
		}
	}
	if *out == "" {
		fmt.Println(html)
		return nil
	}
	return fs.WriteOutput(*out, html)
}

func runQuery(args []string) error {
	fset := flag.NewFlagSet("query", flag.ExitOnError)
	xp := fset.String("xpath", "", "XPath expression to evaluate instead of a CSS selector")
	fset.Parse(args)
	if fset.NArg() < 2 {
		return fmt.Errorf("usage: bloggc query [-xpath expr] <file> <selector>")
	}
	src, err := readSource(fset.Arg(0))
	if err != nil {
		return err
	}
	html, err := bloggc.Compile(src)
	if err != nil {
		return renderDiag(err, src)
	}
	var results []string
	if *xp != "" {
		results, err = style.Eval(html, *xp)
	} else {
		results, err = style.Query(html, fset.Arg(1))
	}
	if err != nil {
		return err
	}
	for _, r := range results {
		pterm.Println(r)
	}
	return nil
}

func runRepl(_ []string) error {
	repl, err := readline.New("bloggc > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("bloggc interactive mode. Enter a program on one line; quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		html, err := bloggc.Compile(line)
		if err != nil {
			renderDiag(err, line)
			continue
		}
		pterm.Println(html)
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func lexAndPrint(src string) error {
	toks, err := lexTokens(src)
	if err != nil {
		return renderDiag(err, src)
	}
	for _, tok := range toks {
		pterm.Printfln("%-12s %q  (line %d, col %d)", tok.Kind, tok.Lexeme, tok.Pos.Line, tok.Pos.Column)
	}
	return nil
}

func parseAndPrint(src string) error {
	prog, err := parseProgram(src)
	if err != nil {
		return renderDiag(err, src)
	}
	pterm.Printfln("%d section(s), %d article(s)", len(prog.Sections), len(prog.Articles))
	for _, a := range prog.Articles {
		pterm.Printfln("article %q -> %v", a.Name, a.SectionRefs)
	}
	return nil
}

func renderDiag(err error, src string) error {
	if src != "" {
		if p, ok := errorPosition(err); ok {
			tracer().Errorf("%s\n%s", err.Error(), diag.Snippet(src, p))
			return err
		}
	}
	tracer().Errorf(err.Error())
	return err
}

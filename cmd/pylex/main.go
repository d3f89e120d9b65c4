// Command pylex tokenizes Python-family source files and dumps the token
// stream, one item per line. It is a thin wrapper over internal/lexer: all
// lexical behavior lives in the core; the CLI only formats.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/pylex/internal/config"
	"github.com/funvibe/pylex/internal/lexer"
	"github.com/funvibe/pylex/internal/token"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
)

// record is the serialized form of one stream item for ndjson/yaml output.
type record struct {
	Line  int    `json:"line" yaml:"line"`
	Kind  string `json:"kind" yaml:"kind"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Bytes []byte `json:"bytes,omitempty" yaml:"bytes,omitempty,flow"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func main() {
	var (
		formatFlag   = flag.String("format", "", "output format: text, ndjson, or yaml")
		colorFlag    = flag.String("color", "", "color text output: auto, always, or never")
		configFlag   = flag.String("config", "", "path to a pylex.yaml config file")
		failFastFlag = flag.Bool("fail-fast", false, "stop at the first error item")
		noJoinFlag   = flag.Bool("no-join", false, "skip the literal-joining stages")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg := loadConfig(*configFlag)
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if *colorFlag != "" {
		cfg.Color = *colorFlag
	}
	if *failFastFlag {
		cfg.FailFast = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pylex: %s\n", err)
		os.Exit(2)
	}

	source, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pylex: %s\n", err)
		os.Exit(2)
	}

	var stream lexer.Stream
	if *noJoinFlag {
		stream = lexer.NewScanner(source)
	} else {
		stream = lexer.New(source)
	}

	hadError, err := dump(os.Stdout, stream, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pylex: %s\n", err)
		os.Exit(2)
	}
	if hadError {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pylex [flags] <file%s>  (use - for stdin)\n", config.SourceFileExt)
	flag.PrintDefaults()
}

func loadConfig(path string) config.Config {
	if path == "" {
		if _, err := os.Stat("pylex.yaml"); err != nil {
			return config.Default()
		}
		path = "pylex.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pylex: %s\n", err)
		os.Exit(2)
	}
	return cfg
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// dump drains the stream into w in the configured format, reporting whether
// any error item was produced.
func dump(w io.Writer, stream lexer.Stream, cfg config.Config) (bool, error) {
	out := bufio.NewWriter(w)
	defer out.Flush()

	useColor := cfg.Color == "always" ||
		(cfg.Color == "auto" && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())))

	var enc interface{ Encode(v any) error }
	switch cfg.Format {
	case "ndjson":
		enc = json.NewEncoder(out)
	case "yaml":
		enc = yaml.NewEncoder(out)
	}

	hadError := false
	for {
		it, ok := stream.Next()
		if !ok {
			break
		}
		if it.Err != nil {
			hadError = true
		}
		if enc != nil {
			if err := enc.Encode(toRecord(it)); err != nil {
				return hadError, err
			}
		} else {
			fmt.Fprintln(out, formatText(it, useColor))
		}
		if hadError && cfg.FailFast {
			break
		}
	}
	if closer, ok := enc.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return hadError, err
		}
	}
	return hadError, nil
}

func toRecord(it lexer.Item) record {
	if it.Err != nil {
		return record{Line: it.Line, Kind: it.Err.Kind.String(), Error: it.Err.Error()}
	}
	return record{
		Line:  it.Line,
		Kind:  string(it.Tok.Type),
		Text:  it.Tok.Literal,
		Bytes: it.Tok.Bytes,
	}
}

func formatText(it lexer.Item, useColor bool) string {
	paint := func(color, s string) string {
		if !useColor {
			return s
		}
		return color + s + colorReset
	}
	if it.Err != nil {
		return fmt.Sprintf("%4d  %s", it.Line,
			paint(colorRed, fmt.Sprintf("error[%s]: %s", it.Err.Kind, it.Err.Error())))
	}
	tok := it.Tok
	switch tok.Type {
	case token.NEWLINE, token.INDENT, token.DEDENT:
		return fmt.Sprintf("%4d  %s", it.Line, paint(colorCyan, string(tok.Type)))
	case token.STRING:
		return fmt.Sprintf("%4d  STRING %s", it.Line, paint(colorGreen, fmt.Sprintf("%q", tok.Literal)))
	case token.BYTES:
		return fmt.Sprintf("%4d  BYTES %s", it.Line, paint(colorGreen, fmt.Sprintf("%q", tok.Bytes)))
	case token.IDENT:
		return fmt.Sprintf("%4d  IDENT %s", it.Line, tok.Literal)
	case token.DEC_INT, token.BIN_INT, token.OCT_INT, token.HEX_INT, token.FLOAT, token.IMAGINARY:
		return fmt.Sprintf("%4d  %s %s", it.Line, tok.Type, paint(colorYellow, tok.Literal))
	default:
		if token.IsKeyword(tok.Literal) {
			return fmt.Sprintf("%4d  %s", it.Line, paint(colorMagenta, tok.Literal))
		}
		return fmt.Sprintf("%4d  %s", it.Line, paint(colorCyan, tok.Literal))
	}
}

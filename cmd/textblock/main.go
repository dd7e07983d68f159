// Command textblock renders text or YAML layout documents as fixed-width
// blocks sized to the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ryanlewis/textblock"
	"github.com/ryanlewis/textblock/internal/debug"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		docPath     string
		width       int
		height      int
		fitHeight   bool
		noTruncate  bool
		align       string
		padding     string
		padLeft     int
		padRight    int
		padTop      int
		padBottom   int
		demo        bool
		showVersion bool
		showHelp    bool
		debugMode   bool
		debugFile   string
		debugPretty bool
	)

	pflag.StringVarP(&docPath, "file", "f", "", "Render a YAML layout document instead of text")
	pflag.IntVarP(&width, "width", "w", 0, "Available width in columns (0 = terminal width)")
	pflag.IntVarP(&height, "height", "H", -1, "Maximum height in rows (-1 = no limit)")
	pflag.BoolVar(&fitHeight, "fit-height", false, "Limit the height to the terminal rows")
	pflag.BoolVar(&noTruncate, "no-truncate", false, "Fail instead of dropping rows beyond the height limit")
	pflag.StringVarP(&align, "align", "a", "left", "Text alignment: left or right")
	pflag.StringVarP(&padding, "padding", "p", "", "Padding shorthand: ALL, VERT,HORIZ or TOP,RIGHT,BOTTOM,LEFT")
	pflag.IntVar(&padLeft, "padding-left", 0, "Blank columns left of the text")
	pflag.IntVar(&padRight, "padding-right", 0, "Blank columns right of the text")
	pflag.IntVar(&padTop, "padding-top", 0, "Blank rows above the text")
	pflag.IntVar(&padBottom, "padding-bottom", 0, "Blank rows below the text")
	pflag.BoolVar(&demo, "demo", false, "Render the built-in demo layouts")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.BoolVar(&debugMode, "debug", false, "Enable debug tracing (outputs to stderr)")
	pflag.StringVar(&debugFile, "debug-file", "", "Write debug trace to file instead of stderr")
	pflag.BoolVar(&debugPretty, "debug-pretty", false, "Use pretty format for debug trace (default: JSON)")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}

	if showVersion {
		fmt.Printf("textblock version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	debugEnabled := debugMode || debugFile != "" || os.Getenv("TEXTBLOCK_DEBUG") == "1"
	level := log.InfoLevel
	if debugEnabled {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	termWidth, termHeight := terminalSize(os.Stdout.Fd())
	if width <= 0 {
		width = termWidth
	}
	if fitHeight && (height < 0 || height > termHeight) {
		height = termHeight
	}
	logger.Debug("resolved dimensions", "width", width, "height", height, "terminal", fmt.Sprintf("%dx%d", termWidth, termHeight))

	// Build what to render
	var targets []textblock.Renderable
	switch {
	case demo:
		blocks, err := demoBlocks()
		if err != nil {
			logger.Error("failed to build demo", "err", err)
			return 1
		}
		targets = blocks
	case docPath != "":
		doc, err := textblock.LoadDocumentCached(docPath)
		if err != nil {
			logger.Error("failed to load document", "path", docPath, "err", err)
			return 1
		}
		for _, w := range doc.Warnings {
			logger.Warn(w, "document", doc.Name)
		}
		targets = append(targets, doc.Root)
	default:
		text, err := readText(pflag.Args(), os.Stdin, stdinIsTerminal())
		if err != nil {
			logger.Error("no text to render", "err", err)
			printHelp()
			return 1
		}

		pad := textblock.Padding{Left: padLeft, Right: padRight, Top: padTop, Bottom: padBottom}
		if padding != "" {
			pad, err = parsePadding(padding)
			if err != nil {
				logger.Error("invalid padding", "value", padding, "err", err)
				return 1
			}
		}
		a, err := textblock.ParseAlign(align)
		if err != nil {
			logger.Error("invalid alignment", "value", align, "err", err)
			return 1
		}
		b, err := textblock.NewBlock(text, textblock.WithPadding(pad), textblock.WithAlign(a))
		if err != nil {
			logger.Error("invalid block", "err", err)
			return 1
		}
		targets = append(targets, b)
	}

	// Setup debug tracing if enabled
	var session *debug.Session
	if debugEnabled {
		debug.SetEnabled(true)
		debug.InitFromEnv()

		var output io.Writer = os.Stderr
		if debugFile != "" {
			file, err := os.Create(debugFile)
			if err != nil {
				logger.Error("failed to create debug file", "path", debugFile, "err", err)
				return 1
			}
			defer file.Close()
			output = file
		}

		var sink debug.Sink
		if debugPretty || os.Getenv("TEXTBLOCK_DEBUG_PRETTY") == "1" {
			sink = debug.NewPrettySink(output)
		} else {
			sink = debug.NewJSONSink(output)
		}

		session = debug.NewSession(sink)
		if session != nil {
			defer session.Close()
		}
	}

	renderOpts := []textblock.RenderOption{
		textblock.WithAvailableHeight(height),
		textblock.WithTruncate(!noTruncate),
	}
	if session != nil {
		renderOpts = append(renderOpts, textblock.WithTracer(session))
	}

	for i, target := range targets {
		if err := textblock.RenderTo(os.Stdout, target, width, renderOpts...); err != nil {
			if errors.Is(err, textblock.ErrOverflow) {
				logger.Error("content does not fit", "height", height, "err", err)
			} else {
				logger.Error("failed to render", "target", i, "err", err)
			}
			return 1
		}
	}
	return 0
}

// readText returns the text to render: the joined arguments, or standard
// input when no arguments are given and it is not a terminal.
func readText(args []string, stdin io.Reader, stdinIsTTY bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdinIsTTY || stdin == nil {
		return "", errors.New("no text provided")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("standard input is empty")
	}
	return string(data), nil
}

// parsePadding parses the --padding shorthand. It accepts one value for all
// sides, two values for vertical and horizontal, or four values in the
// order top, right, bottom, left.
func parsePadding(s string) (textblock.Padding, error) {
	parts := strings.Split(s, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return textblock.Padding{}, fmt.Errorf("invalid padding value %q", part)
		}
		if n < 0 {
			return textblock.Padding{}, fmt.Errorf("padding must not be negative: %d", n)
		}
		values[i] = n
	}

	switch len(values) {
	case 1:
		v := values[0]
		return textblock.Padding{Top: v, Right: v, Bottom: v, Left: v}, nil
	case 2:
		return textblock.Padding{Top: values[0], Bottom: values[0], Left: values[1], Right: values[1]}, nil
	case 4:
		return textblock.Padding{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	default:
		return textblock.Padding{}, fmt.Errorf("padding needs 1, 2 or 4 values, got %d", len(values))
	}
}

func printHelp() {
	fmt.Println("textblock - render text as fixed-width terminal blocks")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  textblock [flags] <text>")
	fmt.Println("  echo text | textblock [flags]")
	fmt.Println("  textblock -f layout.yaml")
	fmt.Println("  textblock --demo")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
	fmt.Println()
	fmt.Println("Layout documents:")
	fmt.Println("  marginX: 2")
	fmt.Println("  blocks:")
	fmt.Println("    - width: 30")
	fmt.Println("      textAlign: right")
	fmt.Println("      content: fixed column")
	fmt.Println("    - content: fluid column")
}

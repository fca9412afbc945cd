// Rank the most frequent words in log files
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/gopheracademy/logwords/internal/cliflag"
	"github.com/gopheracademy/logwords/internal/report"
	"github.com/gopheracademy/logwords/internal/server"
	"github.com/gopheracademy/logwords/internal/source"
	"github.com/gopheracademy/logwords/rank"
)

var config = struct {
	k    uint
	port int
	host string
}{
	k:    10,
	port: 8080,
	host: "localhost",
}

const (
	usage = `usage: %s top|serve

Rank the most frequent words in log files.
`
	topUsage = `usage: %s top [options] FILE [K]

Print the K most frequent words in FILE ("-" reads stdin).

Options:
`
	serveUsage = `usage: %s serve [options]
Run HTTP server

Options:
`
)

func main() {
	log.SetPrefix("logwords: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := loadEnv(); err != nil {
		log.Fatalf("error: %s", err)
	}

	if len(os.Args) < 2 {
		log.Fatalf("error: wrong number of arguments")
	}

	switch os.Args[1] {
	case "top":
		if err := runTop(os.Args[2:], os.Stdin, os.Stdout); err != nil {
			log.Fatalf("error: %s", err)
		}
	case "serve":
		runServe(os.Args[2:])
	default:
		log.Fatalf("error: unknown command - %s", os.Args[1])
	}
}

func runTop(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		k        = config.k
		format   string
		match    string
		plotFile string
		progress bool
		colorOut bool
	)

	fs := flag.NewFlagSet("top", flag.ExitOnError)
	fs.Var(cliflag.KVar(&k), "k", "number of top words to show")
	fs.StringVar(&format, "format", "text", fmt.Sprintf("output format %v", report.Names()))
	fs.StringVar(&match, "match", "", "only count lines matching this regular expression")
	fs.StringVar(&plotFile, "plot", "", "also save a bar chart to this file")
	fs.BoolVar(&progress, "progress", false, "show a progress bar while reading FILE")
	fs.BoolVar(&colorOut, "color", isTerminal(stdout), "highlight words in text output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), topUsage, os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() < 1 || fs.NArg() > 2 {
		return errors.New("wrong number of arguments")
	}
	if fs.NArg() == 2 {
		if err := cliflag.KVar(&k).Set(fs.Arg(1)); err != nil {
			return err
		}
	}

	write, err := report.Lookup(format)
	if err != nil {
		return err
	}
	if format == "text" {
		write = report.TextColor(colorOut)
	}

	opts := source.Options{}
	if match != "" {
		if opts.Match, err = regexp.Compile(match); err != nil {
			return errors.Wrap(err, "bad -match")
		}
	}
	if progress {
		opts.Progress = os.Stderr
	}

	var lines []string
	if path := fs.Arg(0); path == "-" {
		lines, err = source.Read(stdin, opts)
	} else {
		lines, err = source.File(path, opts)
	}
	if err != nil {
		return err
	}

	top := rank.TopKWords(lines, k)
	if plotFile != "" {
		if err := report.Plot(top, plotFile); err != nil {
			return err
		}
	}
	return write(stdout, top)
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.Var(cliflag.PortVar(&config.port), "port", "port to listen on")
	fs.StringVar(&config.host, "host", config.host, "host to listen on")
	fs.Var(cliflag.KVar(&config.k), "k", "default number of top words")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), serveUsage, os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(args)

	addr := fmt.Sprintf("%s:%d", config.host, config.port)
	log.Printf("server ready on %s", addr)
	if err := http.ListenAndServe(addr, server.New(config.k)); err != nil {
		log.Fatalf("error: %s", err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// loadEnv overrides the config defaults from LOGWORDS_* variables.
func loadEnv() error {
	if err := cliflag.FromEnv(cliflag.KVar(&config.k), "LOGWORDS_K"); err != nil {
		return err
	}
	if err := cliflag.FromEnv(cliflag.PortVar(&config.port), "LOGWORDS_PORT"); err != nil {
		return err
	}
	if h := os.Getenv("LOGWORDS_HOST"); h != "" {
		config.host = h
	}
	return nil
}

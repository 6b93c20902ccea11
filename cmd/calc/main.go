package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/calc"
)

func main() {
	flags := pflag.NewFlagSet("calc", pflag.ExitOnError)
	flags.String("in", "", "input file (default stdin if no args given)")
	flags.String("fmt", "%g", "result formatting string")
	flags.BoolP("lines", "n", false, "parse separate input lines as separate expressions")
	flags.Bool("group", false, "allow parenthesized subexpressions")
	flags.BoolP("verbose", "v", false, "log each evaluation")
	flags.String("config", "", "configuration file")
	flags.Parse(os.Args[1:])

	cfg, err := loadConfig(viper.New(), flags)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var ins []io.Reader
	f, err := infile(cfg.In, flags.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		ins = append(ins, f)
	}
	for _, arg := range flags.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	failed, err := run(cfg, ins, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run evaluates every expression from ins and writes each result or error to
// out. It returns the number of expressions that failed to evaluate. The
// error is non-nil only if reading or writing fails.
func run(cfg config, ins []io.Reader, out io.Writer) (int, error) {
	var opts []calc.EvalOption
	if cfg.Group {
		opts = append(opts, calc.AllowGrouping())
	}
	verb := cfg.Fmt + "\n"
	failed := 0
	for _, in := range ins {
		exprs, err := split(in, cfg.Lines)
		if err != nil {
			return failed, err
		}
		for _, src := range exprs {
			r, err := calc.Calculate(src, opts...)
			if err != nil {
				failed++
				log.WithFields(log.Fields{
					"expr":  src,
					"error": err,
				}).Debug("Evaluation failed")
				_, err = fmt.Fprintln(out, err)
			} else {
				log.WithFields(log.Fields{
					"expr":   src,
					"result": r,
				}).Debug("Evaluated")
				_, err = fmt.Fprintf(out, verb, r)
			}
			if err != nil {
				return failed, err
			}
		}
	}
	return failed, nil
}

// split reads all expressions from in. With lines, each non-blank line is a
// separate expression; otherwise the whole input is one.
func split(in io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var r []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		r = append(r, scan.Text())
	}
	return r, scan.Err()
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

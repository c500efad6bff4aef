// Command regexcli exercises the engine interactively in three modes:
//
//	regexcli            read a pattern, then match input lines against it
//	regexcli -debug     like the default mode, but dump tokens, NFA and DFA
//	regexcli -classify  read N patterns, then print the ids matching each line
//
// An empty input line or EOF ends the session with exit code 0; a compile
// error prints a one-line diagnostic on stderr and exits non-zero.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	regexengine "github.com/CitrusSin/regex-engine"
	"github.com/CitrusSin/regex-engine/codegen"
)

func main() {
	debug := flag.Bool("debug", false, "dump tokens, NFA and DFA after compiling")
	classify := flag.Bool("classify", false, "multi-pattern classifier mode")
	emit := flag.String("emit", "", "write generated Go source for the DFA to this file")
	emitFunc := flag.String("func", "Match", "function name for -emit")
	emitPkg := flag.String("package", "main", "package name for -emit")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)
	if *classify {
		os.Exit(runClassify(in))
	}
	os.Exit(runSingle(in, *debug, *emit, *emitPkg, *emitFunc))
}

func runSingle(in *bufio.Scanner, debug bool, emit, emitPkg, emitFunc string) int {
	fmt.Print("pattern: ")
	if !in.Scan() {
		return 0
	}
	re, err := regexengine.Compile(in.Text())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if debug {
		fmt.Println("tokens:")
		for _, tk := range re.Tokens() {
			fmt.Println("  " + tk)
		}
		fmt.Println("\nNFA:")
		fmt.Print(re.NFA().Dump())
		fmt.Println("\nDFA:")
		fmt.Print(re.DFA().Dump())
	}

	if emit != "" {
		src, err := codegen.Generate(re.DFA(), codegen.Config{
			Package: emitPkg,
			Func:    emitFunc,
			Pattern: re.String(),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := os.WriteFile(emit, src, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("wrote %s\n", emit)
	}

	for {
		fmt.Print("input: ")
		if !in.Scan() || in.Text() == "" {
			return 0
		}
		if re.MatchString(in.Text()) {
			fmt.Println("match")
		} else {
			fmt.Println("no match")
		}
	}
}

func runClassify(in *bufio.Scanner) int {
	fmt.Print("number of patterns: ")
	if !in.Scan() {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil || n < 0 {
		fmt.Fprintf(os.Stderr, "invalid pattern count %q\n", in.Text())
		return 1
	}

	patterns := make([]regexengine.Pattern, 0, n)
	for i := 0; i < n; i++ {
		fmt.Printf("pattern %d: ", i)
		if !in.Scan() {
			return 0
		}
		patterns = append(patterns, regexengine.Pattern{ID: i, Expr: in.Text()})
	}

	mr, err := regexengine.CompileSet(patterns)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for {
		fmt.Print("input: ")
		if !in.Scan() || in.Text() == "" {
			return 0
		}
		fmt.Println(formatIDs(mr.Classify(in.Text())))
	}
}

func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ffitk is an interactive inspector for the boundary protocol: construct
// envelopes, dereference them the way a foreign caller would, release them,
// and watch the allocator accounting. Handy when debugging bindings by hand.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	ffitoolkit "github.com/viniciusmorgado/ffi-toolkit"
	"github.com/viniciusmorgado/ffi-toolkit/internal/cmem"
)

const (
	appName     = "ffitk"
	historyFile = ".ffitk_history"
	prompt      = "ffi> "
)

var banner = fmt.Sprintf("%s (ffi-toolkit %s)\nCtrl+D exits. Type help for commands.", appName, ffitoolkit.Version)

const helpText = `commands:
  ok <int>          success envelope carrying an int64 payload
  empty             success envelope with no value
  err <kind> <msg>  failure envelope (kind: Other, ValidationError, ...)
  uuid <text>       parse a uuid through the protocol
  stats             allocator accounting (allocs / frees / live)
  help              this text
  quit              exit
`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if !dispatch(line) {
			return
		}
	}
}

// dispatch runs one command line; false means quit.
func dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", ":quit", "exit":
		return false
	case "help":
		fmt.Print(helpText)
	case "stats":
		printStats()
	case "ok":
		cmdOk(args)
	case "empty":
		cmdEmpty()
	case "err":
		cmdErr(args)
	case "uuid":
		cmdUUID(args)
	default:
		fmt.Fprintln(os.Stderr, red(appName+": unknown command; type help"))
	}
	return true
}

func printStats() {
	allocs, frees, live := cmem.Stats()
	fmt.Printf("allocs=%d frees=%d live=%d\n", allocs, frees, live)
}

func describe(r *ffitoolkit.ExternResult) {
	fmt.Printf("envelope %p  ok=%p  err=%p\n", r, r.Ok, r.Err)
	if r.Err != nil {
		fmt.Printf("  kind=%s message=%q\n", r.Err.Kind, ffitoolkit.GoStringFrom(r.Err.Message))
	}
}

func cmdOk(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, red("usage: ok <int>"))
		return
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return
	}
	r := ffitoolkit.OkValue(n)
	describe(r)
	fmt.Printf("  payload (as int64) = %d\n", *(*int64)(r.Ok))
	ffitoolkit.Release((*int64)(r.Ok))
	ffitoolkit.DestroyResult(r)
	fmt.Println(green("released payload + envelope"))
}

func cmdEmpty() {
	r := ffitoolkit.OkEmpty()
	describe(r)
	ffitoolkit.DestroyResult(r)
	fmt.Println(green("released envelope"))
}

func cmdErr(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, red("usage: err <kind> <msg>"))
		return
	}
	kind := ffitoolkit.KindFromName(args[0])
	r := ffitoolkit.Err(kind, strings.Join(args[1:], " "))
	describe(r)
	ffitoolkit.DestroyError(r.Err)
	ffitoolkit.DestroyResult(r)
	fmt.Println(green("released error + envelope"))
}

func cmdUUID(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, red("usage: uuid <text>"))
		return
	}
	id, err := uuid.Parse(args[0])
	var r *ffitoolkit.ExternResult
	if err != nil {
		r = ffitoolkit.Err(ffitoolkit.KindValidation, err.Error())
	} else {
		r = ffitoolkit.OkHandle(ffitoolkit.NewUUIDHandle(id))
	}
	describe(r)
	if r.Ok != nil {
		fmt.Printf("  payload (as uuid) = %s\n", ffitoolkit.UUIDFromHandle(r.Ok))
		ffitoolkit.DestroyUUID(r.Ok)
	}
	ffitoolkit.DestroyError(r.Err)
	ffitoolkit.DestroyResult(r)
	fmt.Println(green("released"))
}

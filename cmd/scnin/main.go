// Command scnin is a thin demo front-end over the scn library's
// standard-input entry points: "input" and "prompt" (§1's "thin CLI
// entry point" external collaborator). It exists to exercise Input/
// Prompt/GetLine end to end, not as a library surface itself.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/nilsson-scn/scn"
)

var (
	app = kingpin.New("scnin", "Formatted-input scanning demo over standard input.")

	inputCmd    = app.Command("input", "Scan one value from standard input using a format string.")
	inputFormat = inputCmd.Arg("format", "scn format string, e.g. \"{}\" or \"{:x}\".").Required().String()

	promptCmd = app.Command("prompt", "Write a prompt, then scan one integer from standard input.")
	promptMsg = promptCmd.Arg("message", "Text written before reading input.").Required().String()

	lineCmd = app.Command("line", "Read one line from standard input, stripping the trailing newline.")
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case inputCmd.FullCommand():
		runInput(*inputFormat)
	case promptCmd.FullCommand():
		runPrompt(*promptMsg)
	case lineCmd.FullCommand():
		runLine()
	}
}

func runInput(format string) {
	var v string
	res := scn.Input(format, &v)
	if !res.OK() {
		fmt.Fprintln(os.Stderr, "scnin: scan failed:", res.Err())
		os.Exit(1)
	}
	fmt.Println(v)
}

func runPrompt(msg string) {
	var n int
	res := scn.Prompt(msg+" ", "{}", &n)
	if !res.OK() {
		fmt.Fprintln(os.Stderr, "scnin: scan failed:", res.Err())
		os.Exit(1)
	}
	fmt.Println(n)
}

func runLine() {
	var line string
	res := scn.GetLine(os.Stdin, &line)
	if !res.OK() {
		fmt.Fprintln(os.Stderr, "scnin: read failed:", res.Err())
		os.Exit(1)
	}
	fmt.Println(line)
}

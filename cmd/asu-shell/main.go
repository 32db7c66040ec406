// Command asu-shell is an interactive shell for checking Patterson groups and
// asymmetric unit indices.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/lexlapax/xmerge/pkg/log"
)

// historyFile is the file where command history is stored
const historyFile = ".asu_shell_history"

func main() {
	spaceGroup := flag.String("group", "P 1", "Initial space group")
	stdinMode := flag.Bool("s", false, "Read from stdin and exit when complete")
	flag.Parse()

	log.Setup(log.Config{
		Level:  log.WarnLevel,
		Format: log.TextFormat,
	})

	sh, err := newShell(os.Stdout, *spaceGroup)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *stdinMode {
		runStdin(sh, os.Stdin)
		return
	}
	runInteractive(sh)
}

func runStdin(sh *shell, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		// Skip comments for stdin-based testing
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		fmt.Fprint(sh.out, sh.prompt(), input, "\n")
		if !sh.execute(input) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(sh.out, "Error reading stdin: %v\n", err)
	}
}

func runInteractive(sh *shell) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) (c []string) {
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, input) {
				c = append(c, cmd)
			}
		}
		return
	})

	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(sh.out, "=== ASU shell ===")
	fmt.Fprintln(sh.out, "Type !help for available commands.")

	for {
		input, err := line.Prompt(sh.prompt())
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Fprintln(sh.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(sh.out, "Error reading input: %v\n", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if !sh.execute(input) {
			return
		}
	}
}

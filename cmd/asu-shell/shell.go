package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lexlapax/xmerge/pkg/miller"
	"github.com/lexlapax/xmerge/pkg/symmetry"
)

// Constants for the command-line interface
const (
	cmdHelp      = "!help"
	cmdQuit      = "!quit"
	cmdGroup     = "!group"
	cmdAnomalous = "!anomalous"
	cmdPatterson = "!patterson"
	cmdMap       = "!map"
	cmdCentric   = "!centric"
	cmdOrbit     = "!orbit"
)

var commands = []string{cmdHelp, cmdQuit, cmdGroup, cmdAnomalous, cmdPatterson, cmdMap, cmdCentric, cmdOrbit}

// Command-line help text
const helpText = `
ASU Shell - Command Reference:
------------------------------
!help                 - Show this help message
!group <symbol>       - Set the current space group
!anomalous on|off     - Keep Friedel mates apart (on) or merge them (off)
!patterson [symbol]   - Show the Patterson group of a space group
!map <h,k,l>          - Map an index to the asymmetric unit
!centric <h,k,l>      - Report whether a reflection is centric
!orbit <h,k,l>        - List the symmetry equivalents of an index
!quit                 - Exit the application

Notes:
- Plain input such as "1 2 3" is treated as !map`

type shell struct {
	out       io.Writer
	group     symmetry.SpaceGroup
	asu       *miller.ASU
	anomalous bool
}

func newShell(out io.Writer, symbol string) (*shell, error) {
	sh := &shell{out: out}
	if err := sh.setGroup(symbol); err != nil {
		return nil, err
	}
	return sh, nil
}

func (sh *shell) setGroup(symbol string) error {
	sg, err := symmetry.LookupSpaceGroup(symbol)
	if err != nil {
		return err
	}
	sh.group = sg
	sh.asu = miller.NewASU(sg.Type())
	return nil
}

func (sh *shell) prompt() string {
	mode := "merged"
	if sh.anomalous {
		mode = "anomalous"
	}
	return fmt.Sprintf("asu::%s[%s]> ", strings.ReplaceAll(sh.group.Symbol(), " ", ""), mode)
}

// execute runs one command and returns false if the shell should exit.
func (sh *shell) execute(input string) bool {
	if !strings.HasPrefix(input, "!") {
		sh.mapIndex(input)
		return true
	}

	parts := strings.SplitN(input, " ", 2)
	cmd := parts[0]
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case cmdHelp:
		fmt.Fprintln(sh.out, helpText)

	case cmdQuit:
		fmt.Fprintln(sh.out, "Goodbye!")
		return false

	case cmdGroup:
		if arg == "" {
			fmt.Fprintf(sh.out, "Current space group: %s\n", sh.group.Info().SymbolAndNumber())
			return true
		}
		if err := sh.setGroup(arg); err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
			return true
		}
		fmt.Fprintf(sh.out, "Space group set to: %s\n", sh.group.Info().SymbolAndNumber())

	case cmdAnomalous:
		switch strings.ToLower(arg) {
		case "on", "true", "yes":
			sh.anomalous = true
		case "off", "false", "no":
			sh.anomalous = false
		case "":
		default:
			fmt.Fprintf(sh.out, "Error: expected on or off, got %q\n", arg)
			return true
		}
		fmt.Fprintf(sh.out, "Anomalous: %v\n", sh.anomalous)

	case cmdPatterson:
		sg := sh.group
		if arg != "" {
			var err error
			if sg, err = symmetry.LookupSpaceGroup(arg); err != nil {
				fmt.Fprintf(sh.out, "Error: %v\n", err)
				return true
			}
		}
		fmt.Fprintf(sh.out, "%s -> %s\n", sg.Info().SymbolAndNumber(),
			sg.BuildDerivedPattersonGroup().Info().SymbolAndNumber())

	case cmdMap:
		sh.mapIndex(arg)

	case cmdCentric:
		h, err := miller.ParseIndex(arg)
		if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
			return true
		}
		fmt.Fprintf(sh.out, "%s centric: %v\n", h, sh.asu.IsCentric(h))

	case cmdOrbit:
		h, err := miller.ParseIndex(arg)
		if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
			return true
		}
		seen := map[miller.Index]bool{}
		var orbit []string
		for _, op := range sh.group.PointGroup().Ops() {
			e := miller.Index(op.TransformIndex(h))
			if !seen[e] {
				seen[e] = true
				orbit = append(orbit, e.String())
			}
		}
		fmt.Fprintf(sh.out, "%s\n", strings.Join(orbit, " "))

	default:
		fmt.Fprintf(sh.out, "Unknown command: %s\nType !help for available commands.\n", cmd)
	}
	return true
}

func (sh *shell) mapIndex(arg string) {
	h, err := miller.ParseIndex(arg)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "%s -> %s\n", h, sh.asu.Map(h, sh.anomalous))
}

package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// health is how a status line reads at a glance.
type health int

const (
	healthNeutral health = iota
	healthGood
	healthAttention
)

const (
	colorReset = "\x1b[0m"
	colorGreen = "\x1b[32m"
	colorAmber = "\x1b[33m"
	colorDim   = "\x1b[2m"
)

type statusLine struct {
	label  string
	health health
	value  string
}

// renderStatus lays the lines out as an aligned "label  value" block. The
// label column is as wide as the longest label.
func renderStatus(lines []statusLine, colorize bool) string {
	width := 0
	for _, line := range lines {
		width = max(width, len(line.label))
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.label)
		b.WriteString(strings.Repeat(" ", width-len(line.label)+2))
		value := line.value
		if value == "" {
			value = missingValue
		}
		if colorize {
			value = healthColor(line.health) + value + colorReset
		}
		b.WriteString(value)
		b.WriteByte('\n')
	}
	return b.String()
}

func healthColor(h health) string {
	switch h {
	case healthGood:
		return colorGreen
	case healthAttention:
		return colorAmber
	default:
		return colorDim
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

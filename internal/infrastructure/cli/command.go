package cli

import (
	"strconv"
	"strings"
)

// Command is one entry of the main menu.
type Command int

const (
	CommandInvalid Command = iota
	CommandCreate
	CommandMark
	CommandSummary
	CommandSaveExit
)

// menuOrder is the display order; the number shown is the index plus one.
var menuOrder = []Command{CommandCreate, CommandMark, CommandSummary, CommandSaveExit}

// ParseCommand maps a typed menu choice to its command.
func ParseCommand(input string) Command {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(menuOrder) {
		return CommandInvalid
	}
	return menuOrder[n-1]
}

// Label is the menu text for the command.
func (c Command) Label() string {
	switch c {
	case CommandCreate:
		return "Create New Habit"
	case CommandMark:
		return "Mark Habit Completion"
	case CommandSummary:
		return "View Habit Summary"
	case CommandSaveExit:
		return "Save & Exit"
	default:
		return "Invalid"
	}
}

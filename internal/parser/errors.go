package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax marks input the grammar could not read.
var ErrSyntax = errors.New("I wasn't able to understand your command")

var usages = map[string]string{
	"create":  "create <amount> [to: <creature>]",
	"chip":    "chip <amount> [to: <creature>]",
	"heal":    "heal <amount> [to: <creature>]",
	"fortify": "fortify <amount> [to: <creature>]",
	"add":     "add <status>[ <n>] [to: <creature>]",
	"remove":  "remove <status>[ <n>] [to: <creature>]",
	"drain":   "drain [to: <creature>]",
	"break":   "break [to: <creature>]",
	"mend":    "mend [to: <creature>]",
	"shatter": "shatter [to: <creature>]",
	"spawn":   "spawn <creature> [as: <template>]",
	"despawn": "despawn <creature>",
	"roll":    "roll <dice> [by: <creature>]",
	"show":    "show [<creature>]",
	"check":   "check \"<expression>\" [to: <creature>]",
	"help":    "help [<keyword>]",
}

// keywordOrder lists keywords the way help prints them.
var keywordOrder = []string{
	"spawn", "despawn", "create", "chip", "heal", "fortify", "add", "remove",
	"drain", "break", "mend", "shatter", "roll", "show", "check", "help",
}

// Keywords returns every command keyword in help order.
func Keywords() []string {
	return append([]string(nil), keywordOrder...)
}

// Usage returns the usage line for a keyword.
func Usage(keyword string) (string, bool) {
	u, ok := usages[strings.ToLower(keyword)]
	return u, ok
}

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return ErrSyntax
	}

	cmd := strings.ToLower(strings.Fields(input)[0])
	if usage, ok := usages[cmd]; ok {
		return fmt.Errorf("%w: the command %s must be: %s", ErrSyntax, cmd, usage)
	}

	if guess := Suggest(cmd, keywordOrder); guess != "" {
		return fmt.Errorf("%w: unknown command %q, did you mean %s?", ErrSyntax, cmd, guess)
	}

	return ErrSyntax
}

package command

import (
	"math"
	"strconv"
	"strings"
)

const (
	NamePush = "push"
	NamePop  = "pop"

	FlagBackwards = "--backwards"
)

// Command is the parsed intent of a single input line.
type Command interface {
	isCommand()
}

type Push struct {
	Value int32
}

func (Push) isCommand() {}

// PushUsage is a push with no argument.
type PushUsage struct{}

func (PushUsage) isCommand() {}

// InvalidNumber is a push whose argument is not an integer.
type InvalidNumber struct {
	Token string
}

func (InvalidNumber) isCommand() {}

type Pop struct {
	Count      int
	FromBottom bool
}

func (Pop) isCommand() {}

type Empty struct{}

func (Empty) isCommand() {}

// Unknown holds the trimmed input of an unrecognized command.
type Unknown struct {
	Raw string
}

func (Unknown) isCommand() {}

// Parse turns one line of input into a Command. It never fails; malformed
// arguments come back as PushUsage or InvalidNumber.
func Parse(line string) Command {
	input := strings.TrimSpace(line)
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return Empty{}
	}
	name, args := tokens[0], tokens[1:]
	switch name {
	case NamePush:
		return parsePush(args)
	case NamePop:
		return parsePop(args)
	default:
		return Unknown{Raw: input}
	}
}

func parsePush(args []string) Command {
	if len(args) == 0 {
		return PushUsage{}
	}
	n, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return InvalidNumber{Token: args[0]}
	}
	return Push{Value: int32(n)}
}

// parsePop takes the first non-flag token that is a valid count; anything
// else is ignored.
func parsePop(args []string) Command {
	p := Pop{Count: 1}
	found := false
	for _, tok := range args {
		if tok == FlagBackwards {
			p.FromBottom = true
			continue
		}
		if found {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64)
		if err != nil {
			continue
		}
		// Both pop paths stop at empty, so any count past MaxInt behaves
		// the same as MaxInt.
		p.Count = int(min(n, math.MaxInt))
		found = true
	}
	return p
}

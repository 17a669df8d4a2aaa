package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/philip-peterson/groupls/pkg/accounts/query"
)

// parseArgs parses flags anywhere on the command line up to a "--"
// terminator and returns the positional arguments in order. Arguments after
// "--" are positional even if they look like flags.
func parseArgs(flagSet *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flagSet.Parse(args); err != nil {
			return nil, err
		}
		rest := flagSet.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if stoppedAtTerminator(flagSet, args, len(args)-len(rest)) {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// stoppedAtTerminator reports whether the last consumed argument was a "--"
// terminator rather than the value of a flag such as -groupFile.
func stoppedAtTerminator(flagSet *flag.FlagSet, args []string,
	consumed int) bool {
	if consumed < 1 || args[consumed-1] != "--" {
		return false
	}
	return consumed < 2 || !takesValue(flagSet, args[consumed-2])
}

func takesValue(flagSet *flag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" {
		return false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if strings.Contains(name, "=") {
		return false
	}
	f := flagSet.Lookup(name)
	if f == nil {
		return false
	}
	if boolFlag, ok := f.Value.(interface{ IsBoolFlag() bool }); ok {
		return !boolFlag.IsBoolFlag()
	}
	return true
}

func processArgs(isUser, isGroup bool, args []string) (query.Request, error) {
	if len(args) > 1 {
		return query.Request{},
			errors.New("too many positional arguments (expected at most 1)")
	}
	if isUser && isGroup {
		return query.Request{},
			errors.New("-u and -g are mutually exclusive")
	}
	var object string
	if len(args) == 1 {
		object = args[0]
	}
	if isUser || isGroup {
		if object == "" {
			return query.Request{},
				errors.New("missing required argument OBJECT")
		}
		if isUser {
			return query.UserRequest(object), nil
		}
		return query.GroupRequest(object), nil
	}
	if len(args) == 1 {
		return query.Request{}, fmt.Errorf(
			"cannot list object of name `%s`; not specified as user or group. Use the -u or -g flag to specify",
			object)
	}
	return query.GroupsRequest(), nil
}

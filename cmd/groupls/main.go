package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Cloud-Foundations/Dominator/lib/flags/loadflags"
	"github.com/Cloud-Foundations/Dominator/lib/log/cmdlogger"
	"github.com/philip-peterson/groupls/pkg/accounts/query"
)

var (
	configFile = flag.String("configFile", "",
		"Name of YAML (.yml) or JSON file containing file locations")
	groupFile = flag.String("groupFile", "",
		"Name of group file (default: /etc/group)")
	jsonOutput = flag.Bool("json", false,
		"If true, write the result as JSON")
	listGroup   bool
	listUser    bool
	metricsFile = flag.String("metricsFile", "",
		"If specified, write Prometheus metrics to this file after the query")
	passwdFile = flag.String("passwdFile", "",
		"Name of passwd file (default: /etc/passwd)")
)

func init() {
	flag.BoolVar(&listGroup, "g", false, "OBJECT is the name of a group")
	flag.BoolVar(&listGroup, "group", false, "OBJECT is the name of a group")
	flag.BoolVar(&listUser, "u", false, "OBJECT is the name of a user")
	flag.BoolVar(&listUser, "user", false, "OBJECT is the name of a user")
}

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: groupls [flags...] [-u | -g] [--] [OBJECT]")
	fmt.Fprintln(w, "Invocation forms:")
	fmt.Fprintln(w, "  groupls           list all groups")
	fmt.Fprintln(w, "  groupls -u alice  list the groups user alice belongs to")
	fmt.Fprintln(w, "  groupls -g admin  list the users belonging to group admin")
	fmt.Fprintln(w, "Use -- before untrusted OBJECT values: groupls -u -- \"$USER\"")
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintf(w, "  %3d  success\n", 0)
	for _, code := range exitCodes {
		fmt.Fprintf(w, "  %3d  %s\n", int(code), code)
	}
	fmt.Fprintln(w, "Flags:")
	flag.PrintDefaults()
}

var exitCodes = []query.ErrorCode{
	query.UsageError,
	query.ReadGroupsError,
	query.ReadUsersError,
	query.GroupNotFound,
	query.UserNotFound,
}

func usageError(err error) int {
	fmt.Fprintf(os.Stderr,
		"Usage error: %s.\n\nFor usage help, try: groupls -help\n", err)
	return int(query.UsageError)
}

func doMain() int {
	if err := loadflags.LoadForCli("groupls"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(query.UsageError)
	}
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	flag.Usage = printUsage
	args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return int(query.UsageError)
	}
	request, err := processArgs(listUser, listGroup, args)
	if err != nil {
		return usageError(err)
	}
	config, err := loadConfig()
	if err != nil {
		return usageError(err)
	}
	logger := cmdlogger.New()
	exitCode := groupls(request, config, logger, os.Stdout, os.Stderr,
		*jsonOutput)
	if *metricsFile != "" {
		if err := writeMetrics(*metricsFile); err != nil {
			logger.Printf("error writing metrics: %s\n", err)
		}
	}
	return exitCode
}

func main() {
	os.Exit(doMain())
}

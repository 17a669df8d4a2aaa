package main

import (
	"fmt"
	"io"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/philip-peterson/groupls/pkg/accounts/loader"
	"github.com/philip-peterson/groupls/pkg/accounts/query"
)

func groupls(request query.Request, config loader.Config,
	logger log.DebugLogger, stdout, stderr io.Writer, jsonOutput bool) int {
	source := loader.New(config, loader.Params{Logger: logger})
	logger.Debugf(1, "resolving %s query using: %s and %s\n",
		request.Kind, source.GroupFile(), source.PasswdFile())
	result := query.Resolve(request, source)
	if err := writeResult(stdout, stderr, result, jsonOutput); err != nil {
		fmt.Fprintf(stderr, "Error writing result: %s\n", err)
	}
	return result.ExitCode()
}

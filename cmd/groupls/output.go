package main

import (
	"fmt"
	"io"

	"github.com/Cloud-Foundations/Dominator/lib/json"
	"github.com/philip-peterson/groupls/pkg/accounts/query"
)

const apiVersion = "1.0"

type groupOverviewResponse struct {
	ApiVersion string        `json:"apiVersion"`
	Groups     []query.Entry `json:"groups"`
}

type userGroupsResponse struct {
	ApiVersion string `json:"apiVersion"`
	User       struct {
		UserName string        `json:"userName"`
		Groups   []query.Entry `json:"groups"`
	} `json:"user"`
}

type groupUsersResponse struct {
	ApiVersion string `json:"apiVersion"`
	Group      struct {
		GroupName string        `json:"groupName"`
		Users     []query.Entry `json:"users"`
	} `json:"group"`
}

type failureResponse struct {
	ApiVersion string `json:"apiVersion"`
	ExitCode   int    `json:"exitCode"`
	Error      string `json:"error"`
}

// writeResult renders the result. Text output lists one name per line on
// stdout; failures go to stderr. JSON output always goes to stdout.
func writeResult(stdout, stderr io.Writer, result query.Result,
	jsonOutput bool) error {
	if jsonOutput {
		return json.WriteWithIndent(stdout, "    ", makeResponse(result))
	}
	if failure, ok := result.(*query.Failure); ok {
		_, err := fmt.Fprintf(stderr, "Fatal: %s\n", failure.Message)
		return err
	}
	for _, name := range result.Names() {
		if _, err := fmt.Fprintln(stdout, name); err != nil {
			return err
		}
	}
	return nil
}

func makeResponse(result query.Result) interface{} {
	switch result := result.(type) {
	case *query.GroupOverview:
		return groupOverviewResponse{
			ApiVersion: apiVersion,
			Groups:     result.Groups,
		}
	case *query.UserGroups:
		response := userGroupsResponse{ApiVersion: apiVersion}
		response.User.UserName = result.UserName
		response.User.Groups = result.Groups
		return response
	case *query.GroupUsers:
		response := groupUsersResponse{ApiVersion: apiVersion}
		response.Group.GroupName = result.GroupName
		response.Group.Users = result.Users
		return response
	case *query.Failure:
		return failureResponse{
			ApiVersion: apiVersion,
			ExitCode:   result.ExitCode(),
			Error:      result.Message,
		}
	}
	panic(fmt.Sprintf("unsupported result type: %T", result))
}

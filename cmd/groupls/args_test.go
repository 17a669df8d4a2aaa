package main

import (
	"flag"
	"io"
	"testing"

	"github.com/philip-peterson/groupls/pkg/accounts/query"
	"github.com/stretchr/testify/assert"
)

func TestProcessArgs(t *testing.T) {
	tests := []struct {
		isUser  bool
		isGroup bool
		args    []string
		request query.Request
	}{
		{false, false, nil, query.GroupsRequest()},
		{true, false, []string{"alice"}, query.UserRequest("alice")},
		{false, true, []string{"admin"}, query.GroupRequest("admin")},
		{true, false, []string{"--help"}, query.UserRequest("--help")},
	}
	for _, test := range tests {
		request, err := processArgs(test.isUser, test.isGroup, test.args)
		if assert.NoError(t, err, "args: %v", test.args) {
			assert.Equal(t, test.request, request)
		}
	}
}

func TestProcessArgsErrors(t *testing.T) {
	tests := []struct {
		isUser  bool
		isGroup bool
		args    []string
	}{
		{true, false, nil},
		{false, true, nil},
		{true, false, []string{""}},
		{false, false, []string{"alice"}},
		{true, false, []string{"alice", "bob"}},
		{true, true, []string{"alice"}},
	}
	for _, test := range tests {
		_, err := processArgs(test.isUser, test.isGroup, test.args)
		assert.Error(t, err, "user: %t, group: %t, args: %v",
			test.isUser, test.isGroup, test.args)
	}
}

type testFlags struct {
	groupFile string
	json      bool
	user      bool
}

func newTestFlagSet() (*flag.FlagSet, *testFlags) {
	flags := &testFlags{}
	flagSet := flag.NewFlagSet("groupls", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&flags.groupFile, "groupFile", "", "")
	flagSet.BoolVar(&flags.json, "json", false, "")
	flagSet.BoolVar(&flags.user, "u", false, "")
	return flagSet, flags
}

func TestParseArgsFlagsAfterObject(t *testing.T) {
	flagSet, flags := newTestFlagSet()
	args, err := parseArgs(flagSet, []string{"-u", "alice", "-json"})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"alice"}, args)
		assert.True(t, flags.user)
		assert.True(t, flags.json)
	}
}

func TestParseArgsTerminator(t *testing.T) {
	flagSet, flags := newTestFlagSet()
	args, err := parseArgs(flagSet, []string{"-u", "--", "-json"})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"-json"}, args)
		assert.True(t, flags.user)
		assert.False(t, flags.json)
	}
	flagSet, flags = newTestFlagSet()
	args, err = parseArgs(flagSet, []string{"-u", "--", "alice", "-json"})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"alice", "-json"}, args)
		assert.False(t, flags.json)
	}
}

func TestParseArgsFlagValueLooksLikeTerminator(t *testing.T) {
	flagSet, flags := newTestFlagSet()
	args, err := parseArgs(flagSet,
		[]string{"-groupFile", "--", "alice", "-json"})
	if assert.NoError(t, err) {
		assert.Equal(t, "--", flags.groupFile)
		assert.Equal(t, []string{"alice"}, args)
		assert.True(t, flags.json)
	}
}

func TestParseArgsMixed(t *testing.T) {
	flagSet, flags := newTestFlagSet()
	args, err := parseArgs(flagSet,
		[]string{"alice", "-groupFile", "testdata/group", "bob"})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"alice", "bob"}, args)
		assert.Equal(t, "testdata/group", flags.groupFile)
	}
}

func TestParseArgsErrors(t *testing.T) {
	flagSet, _ := newTestFlagSet()
	_, err := parseArgs(flagSet, []string{"-u", "alice", "-nosuchflag"})
	assert.Error(t, err)
	flagSet, _ = newTestFlagSet()
	_, err = parseArgs(flagSet, []string{"-help"})
	assert.Equal(t, flag.ErrHelp, err)
}

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/Cloud-Foundations/Dominator/lib/log/testlogger"
	"github.com/philip-peterson/groupls/pkg/accounts/loader"
	"github.com/philip-peterson/groupls/pkg/accounts/query"
	"github.com/stretchr/testify/assert"
)

var testConfig = loader.Config{
	GroupFile:  "testdata/group",
	PasswdFile: "testdata/passwd",
}

func runGroupls(t *testing.T, request query.Request, config loader.Config,
	jsonOutput bool) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := groupls(request, config, testlogger.New(t), stdout, stderr,
		jsonOutput)
	return exitCode, stdout.String(), stderr.String()
}

func TestListAllGroups(t *testing.T) {
	exitCode, stdout, _ := runGroupls(t, query.GroupsRequest(), testConfig,
		false)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "root\nadmin\ndev\n", stdout)
}

func TestListGroupsWithUnreadablePasswd(t *testing.T) {
	config := testConfig
	config.PasswdFile = "testdata/missing"
	exitCode, stdout, _ := runGroupls(t, query.GroupsRequest(), config, false)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "root\nadmin\ndev\n", stdout)
}

func TestListUserGroups(t *testing.T) {
	exitCode, stdout, _ := runGroupls(t, query.UserRequest("alice"),
		testConfig, false)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "admin\ndev\n", stdout)
}

func TestListGroupUsersJSON(t *testing.T) {
	exitCode, stdout, _ := runGroupls(t, query.GroupRequest("dev"),
		testConfig, true)
	assert.Equal(t, 0, exitCode)
	assert.JSONEq(t, `{"apiVersion": "1.0", "group": {"groupName": "dev",
		"users": [{"name": "alice", "id": 1000}]}}`, stdout)
}

func TestUnreadableGroupFile(t *testing.T) {
	config := testConfig
	config.GroupFile = "testdata/missing"
	exitCode, stdout, stderr := runGroupls(t, query.UserRequest("alice"),
		config, false)
	assert.Equal(t, int(query.ReadGroupsError), exitCode)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Fatal: Could not read groups: ")
}

func TestUnreadablePasswdFile(t *testing.T) {
	config := testConfig
	config.PasswdFile = "testdata/missing"
	exitCode, _, stderr := runGroupls(t, query.GroupRequest("dev"), config,
		false)
	assert.Equal(t, int(query.ReadUsersError), exitCode)
	assert.Contains(t, stderr, "Fatal: Could not read users: ")
}

func TestGroupNotFoundExitCode(t *testing.T) {
	exitCode, _, stderr := runGroupls(t, query.GroupRequest("nogroup"),
		testConfig, false)
	assert.Equal(t, 100, exitCode)
	assert.Equal(t, "Fatal: Could not find group: nogroup\n", stderr)
}

func TestLoadConfigFile(t *testing.T) {
	*configFile = "testdata/config.yml"
	*groupFile = ""
	*passwdFile = "/etc/passwd.override"
	defer func() {
		*configFile = ""
		*passwdFile = ""
	}()
	config, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "testdata/group", config.GroupFile)
	assert.Equal(t, "/etc/passwd.override", config.PasswdFile)
}

func TestDoMainFlagsAfterObject(t *testing.T) {
	savedArgs := os.Args
	defer func() {
		os.Args = savedArgs
		*groupFile = ""
		*jsonOutput = false
		*passwdFile = ""
		listUser = false
	}()
	os.Args = []string{"groupls", "-groupFile", "testdata/group",
		"-passwdFile", "testdata/passwd", "-u", "alice", "-json"}
	assert.Equal(t, 0, doMain())
	assert.True(t, *jsonOutput)
	assert.True(t, listUser)
}

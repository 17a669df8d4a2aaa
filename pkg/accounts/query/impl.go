package query

import (
	"fmt"
	"strconv"
	"time"

	"github.com/philip-peterson/groupls/pkg/accounts/records"
)

func (*GroupOverview) isResult() {}
func (*UserGroups) isResult()    {}
func (*GroupUsers) isResult()    {}
func (*Failure) isResult()       {}

func (*GroupOverview) ExitCode() int { return 0 }
func (*UserGroups) ExitCode() int    { return 0 }
func (*GroupUsers) ExitCode() int    { return 0 }
func (f *Failure) ExitCode() int     { return int(f.Code) }

func (r *GroupOverview) Names() []string { return entryNames(r.Groups) }
func (r *UserGroups) Names() []string    { return entryNames(r.Groups) }
func (r *GroupUsers) Names() []string    { return entryNames(r.Users) }
func (*Failure) Names() []string         { return nil }

func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

func resolve(request Request, source RecordSource) Result {
	startTime := time.Now()
	defer func() {
		queryDuration.WithLabelValues(request.Kind.String()).Observe(
			time.Since(startTime).Seconds())
	}()
	switch request.Kind {
	case ListGroups:
	case ByUser, ByGroup:
		if request.Name == "" {
			panic(fmt.Sprintf("%s request without a name", request.Kind))
		}
	default:
		panic("unknown request kind: " + request.Kind.String())
	}
	groups, err := source.LoadGroups()
	if err != nil {
		return &Failure{
			Code:    ReadGroupsError,
			Message: "Could not read groups: " + err.Error(),
		}
	}
	if request.Kind == ListGroups {
		return listGroups(groups)
	}
	users, err := source.LoadUsers()
	if err != nil {
		return &Failure{
			Code:    ReadUsersError,
			Message: "Could not read users: " + err.Error(),
		}
	}
	if request.Kind == ByUser {
		return getUserGroups(request.Name, groups, users)
	}
	return getUsersInGroup(request.Name, groups, users)
}

func listGroups(groups []records.Group) *GroupOverview {
	entries := make([]Entry, 0, len(groups))
	for _, group := range groups {
		entries = append(entries, Entry{Name: group.Name, Id: group.GroupId})
	}
	return &GroupOverview{Groups: entries}
}

// indexByName maps each name to the position of its first occurrence.
func indexByName[T any](entries []T, getName func(T) string) map[string]int {
	index := make(map[string]int, len(entries))
	for position, entry := range entries {
		name := getName(entry)
		if _, ok := index[name]; !ok {
			index[name] = position
		}
	}
	return index
}

func getUserGroups(username string, groups []records.Group,
	users []records.User) Result {
	userIndex := indexByName(users,
		func(user records.User) string { return user.Name })
	position, ok := userIndex[username]
	if !ok {
		return &Failure{
			Code:    UserNotFound,
			Message: "Could not find user: " + username,
		}
	}
	user := users[position]
	entries := make([]Entry, 0)
	for _, group := range groups {
		if group.GroupId == user.PrimaryGroupId ||
			hasMember(group.Members, username) {
			entries = append(entries,
				Entry{Name: group.Name, Id: group.GroupId})
		}
	}
	return &UserGroups{UserName: username, Groups: entries}
}

func getUsersInGroup(groupname string, groups []records.Group,
	users []records.User) Result {
	groupIndex := indexByName(groups,
		func(group records.Group) string { return group.Name })
	position, ok := groupIndex[groupname]
	if !ok {
		return &Failure{
			Code:    GroupNotFound,
			Message: "Could not find group: " + groupname,
		}
	}
	group := groups[position]
	members := make(map[string]struct{}, len(group.Members))
	for _, member := range group.Members {
		members[member] = struct{}{}
	}
	entries := make([]Entry, 0)
	for _, user := range users {
		_, isMember := members[user.Name]
		if isMember || user.PrimaryGroupId == group.GroupId {
			entries = append(entries, Entry{Name: user.Name, Id: user.UserId})
		}
	}
	return &GroupUsers{GroupName: groupname, Users: entries}
}

func hasMember(members []string, username string) bool {
	for _, member := range members {
		if member == username {
			return true
		}
	}
	return false
}

func (code ErrorCode) string() string {
	switch code {
	case UsageError:
		return "USAGE_ERROR"
	case ReadGroupsError:
		return "READ_GROUPS_ERROR"
	case ReadUsersError:
		return "READ_USERS_ERROR"
	case GroupNotFound:
		return "GROUP_NOT_FOUND"
	case UserNotFound:
		return "USER_NOT_FOUND"
	default:
		return "ErrorCode(" + strconv.Itoa(int(code)) + ")"
	}
}

func (kind RequestKind) string() string {
	switch kind {
	case ListGroups:
		return "groups"
	case ByUser:
		return "user"
	case ByGroup:
		return "group"
	default:
		return "RequestKind(" + strconv.FormatUint(uint64(kind), 10) + ")"
	}
}

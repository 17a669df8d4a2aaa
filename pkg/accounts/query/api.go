package query

import (
	"github.com/philip-peterson/groupls/pkg/accounts/records"
)

type RequestKind uint

const (
	ListGroups RequestKind = iota
	ByUser
	ByGroup
)

// Request selects one of the three query forms. Name is the target user or
// group; it is ignored for ListGroups.
type Request struct {
	Kind RequestKind
	Name string
}

// ErrorCode classifies a Failure. The values are used as process exit codes
// and must stay unique.
type ErrorCode int

const (
	UsageError      ErrorCode = 10
	ReadGroupsError ErrorCode = 30
	ReadUsersError  ErrorCode = 40
	GroupNotFound   ErrorCode = 100
	UserNotFound    ErrorCode = 101
)

// RecordSource supplies the account records. LoadUsers is called only when a
// query needs user data, and always after LoadGroups succeeded.
type RecordSource interface {
	LoadGroups() ([]records.Group, error)
	LoadUsers() ([]records.User, error)
}

// Entry is a name and numeric ID pair, for either a user or a group.
type Entry struct {
	Name string `json:"name"`
	Id   int64  `json:"id"`
}

// Result is one of *GroupOverview, *UserGroups, *GroupUsers or *Failure.
type Result interface {
	// ExitCode returns 0 for successful results.
	ExitCode() int
	// Names returns the names listed by the result, in order. Failures list
	// nothing.
	Names() []string
	isResult()
}

// GroupOverview lists every group, in group file order.
type GroupOverview struct {
	Groups []Entry
}

// UserGroups lists the groups a user belongs to by primary group or by
// supplementary membership.
type UserGroups struct {
	UserName string
	Groups   []Entry
}

// GroupUsers lists the users belonging to a group by primary group or by
// supplementary membership.
type GroupUsers struct {
	GroupName string
	Users     []Entry
}

// Failure reports why a query could not be answered.
type Failure struct {
	Code    ErrorCode
	Message string
}

// Resolve answers the request using the records from source. Groups are
// loaded first. Users are loaded only for ByUser and ByGroup requests.
// Lookups by name use the first matching record. Output lists follow file
// order and contain each record at most once.
func Resolve(request Request, source RecordSource) Result {
	return resolve(request, source)
}

// GroupsRequest returns a request listing all groups.
func GroupsRequest() Request {
	return Request{Kind: ListGroups}
}

// UserRequest returns a request listing the groups of username.
func UserRequest(username string) Request {
	return Request{Kind: ByUser, Name: username}
}

// GroupRequest returns a request listing the users in groupname.
func GroupRequest(groupname string) Request {
	return Request{Kind: ByGroup, Name: groupname}
}

func (code ErrorCode) String() string {
	return code.string()
}

func (kind RequestKind) String() string {
	return kind.string()
}

func (f *Failure) Error() string {
	return f.Message
}

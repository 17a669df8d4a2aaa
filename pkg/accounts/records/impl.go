package records

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fieldGroupId   = "group ID"
	fieldGroupName = "group name"
	fieldUserId    = "user ID"
	fieldUsername  = "username"
	fieldUsernames = "usernames"
)

func sanitizeLine(rawLine string) (string, bool) {
	if index := strings.IndexByte(rawLine, '#'); index >= 0 {
		rawLine = rawLine[:index]
	}
	line := strings.TrimSpace(rawLine)
	return line, line == ""
}

// fieldReader hands out colon-separated fields in order. The reserved
// second field of both formats is consumed without being checked, so a
// line that is short by one field reports the next required field.
type fieldReader struct {
	fields []string
	line   string
	next   int
}

func newFieldReader(line string) *fieldReader {
	return &fieldReader{fields: strings.Split(line, ":"), line: line}
}

func (fr *fieldReader) require(name string) (string, *LineError) {
	if fr.next >= len(fr.fields) {
		return "", &LineError{Kind: MissingField, Field: name, Line: fr.line}
	}
	field := fr.fields[fr.next]
	fr.next++
	return field, nil
}

func (fr *fieldReader) requireNumber(name string) (int64, *LineError) {
	field, lineErr := fr.require(name)
	if lineErr != nil {
		return 0, lineErr
	}
	value, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, &LineError{Kind: InvalidNumber, Field: name, Line: fr.line}
	}
	return value, nil
}

func (fr *fieldReader) skip() {
	fr.next++
}

func parseGroup(line string) (Group, *LineError) {
	fr := newFieldReader(line)
	name, lineErr := fr.require(fieldGroupName)
	if lineErr != nil {
		return Group{}, lineErr
	}
	fr.skip() // Password.
	groupId, lineErr := fr.requireNumber(fieldGroupId)
	if lineErr != nil {
		return Group{}, lineErr
	}
	memberList, lineErr := fr.require(fieldUsernames)
	if lineErr != nil {
		return Group{}, lineErr
	}
	return Group{
		Name:    strings.TrimSpace(name),
		GroupId: groupId,
		Members: splitMembers(memberList),
	}, nil
}

func parseUser(line string) (User, *LineError) {
	fr := newFieldReader(line)
	name, lineErr := fr.require(fieldUsername)
	if lineErr != nil {
		return User{}, lineErr
	}
	fr.skip() // Password or description.
	userId, lineErr := fr.requireNumber(fieldUserId)
	if lineErr != nil {
		return User{}, lineErr
	}
	primaryGroupId, lineErr := fr.requireNumber(fieldGroupId)
	if lineErr != nil {
		return User{}, lineErr
	}
	return User{
		Name:           strings.TrimSpace(name),
		UserId:         userId,
		PrimaryGroupId: primaryGroupId,
	}, nil
}

func splitMembers(memberList string) []string {
	members := make([]string, 0)
	for _, member := range strings.Split(memberList, ",") {
		if member = strings.TrimSpace(member); member != "" {
			members = append(members, member)
		}
	}
	return members
}

func (e *LineError) error() string {
	var text string
	switch e.Kind {
	case MissingField:
		text = fmt.Sprintf("Invalid line (missing field: %s)", e.Field)
	case InvalidNumber:
		text = fmt.Sprintf("Invalid line (invalid %s number)", e.Field)
	default:
		text = fmt.Sprintf("Invalid line (%s: %s)", e.Kind, e.Field)
	}
	if e.LineNumber > 0 {
		return fmt.Sprintf("line %d: %s", e.LineNumber, text)
	}
	return text
}

func (k ErrorKind) string() string {
	switch k {
	case MissingField:
		return "MissingField"
	case InvalidNumber:
		return "InvalidNumber"
	default:
		return "ErrorKind(" + strconv.FormatUint(uint64(k), 10) + ")"
	}
}

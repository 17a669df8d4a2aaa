package records

// User is an entry from a passwd-style file.
type User struct {
	Name           string
	UserId         int64
	PrimaryGroupId int64
}

// Group is an entry from a group-style file. Members is the supplementary
// membership list, in file order. Duplicates are kept.
type Group struct {
	Name    string
	GroupId int64
	Members []string
}

type ErrorKind uint

const (
	MissingField ErrorKind = iota
	InvalidNumber
)

// LineError describes a line which could not be converted into a record.
type LineError struct {
	Kind       ErrorKind
	Field      string // Name of the missing or invalid field.
	Line       string // Sanitized line content.
	LineNumber int    // 1-based. Zero if unknown.
}

// ParseGroup converts a sanitized, non-empty line of the form
// name:_:groupId:member,member,... into a Group. Fields after the fourth
// are ignored.
func ParseGroup(line string) (Group, *LineError) {
	return parseGroup(line)
}

// ParseUser converts a sanitized, non-empty line of the form
// name:_:userId:primaryGroupId into a User. Fields after the fourth are
// ignored.
func ParseUser(line string) (User, *LineError) {
	return parseUser(line)
}

// SanitizeLine removes everything from the first '#' onwards and trims
// surrounding whitespace. If nothing remains, skip is true.
func SanitizeLine(rawLine string) (line string, skip bool) {
	return sanitizeLine(rawLine)
}

func (e *LineError) Error() string {
	return e.error()
}

func (k ErrorKind) String() string {
	return k.string()
}

package loader

import (
	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/philip-peterson/groupls/pkg/accounts/records"
)

const (
	DefaultGroupFile  = "/etc/group"
	DefaultPasswdFile = "/etc/passwd"
)

// Config specifies the locations of the account files. Empty fields select
// the defaults.
type Config struct {
	GroupFile  string `yaml:"group_file"`
	PasswdFile string `yaml:"passwd_file"`
}

// Params specifies runtime parameters.
type Params struct {
	// Mandatory parameters.
	Logger log.DebugLogger
	// Optional parameters.
	ReadFile func(filename string) ([]byte, error) // Default: os.ReadFile.
}

// Loader reads and parses the account files. Each call re-reads the file;
// nothing is cached.
type Loader struct {
	config Config
	params Params
}

// LoadLines sanitizes and parses each line. Blank and comment-only lines are
// skipped. Valid records and line errors are returned separately, each in
// input order. LineNumber is set on each error.
func LoadLines[T any](lines []string,
	parse func(line string) (T, *records.LineError)) (
	[]T, []*records.LineError) {
	return loadLines(lines, parse)
}

// New will create a Loader. Empty file names in config select the defaults
// and a nil params.ReadFile selects os.ReadFile.
func New(config Config, params Params) *Loader {
	return newLoader(config, params)
}

// GroupFile returns the name of the group file which will be read.
func (l *Loader) GroupFile() string {
	return l.config.GroupFile
}

// LoadGroups reads the group file. Malformed lines are logged and skipped.
// An error is returned only if the file cannot be read.
func (l *Loader) LoadGroups() ([]records.Group, error) {
	return loadFile(l, l.config.GroupFile, "group", records.ParseGroup)
}

// LoadUsers reads the passwd file. Malformed lines are logged and skipped.
// An error is returned only if the file cannot be read.
func (l *Loader) LoadUsers() ([]records.User, error) {
	return loadFile(l, l.config.PasswdFile, "user", records.ParseUser)
}

// PasswdFile returns the name of the passwd file which will be read.
func (l *Loader) PasswdFile() string {
	return l.config.PasswdFile
}

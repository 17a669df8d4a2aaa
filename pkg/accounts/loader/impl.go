package loader

import (
	"os"
	"strings"

	"github.com/philip-peterson/groupls/pkg/accounts/records"
)

func newLoader(config Config, params Params) *Loader {
	if config.GroupFile == "" {
		config.GroupFile = DefaultGroupFile
	}
	if config.PasswdFile == "" {
		config.PasswdFile = DefaultPasswdFile
	}
	if params.ReadFile == nil {
		params.ReadFile = os.ReadFile
	}
	return &Loader{config: config, params: params}
}

func loadLines[T any](lines []string,
	parse func(line string) (T, *records.LineError)) (
	[]T, []*records.LineError) {
	entries := make([]T, 0, len(lines))
	var lineErrors []*records.LineError
	for index, rawLine := range lines {
		line, skip := records.SanitizeLine(rawLine)
		if skip {
			continue
		}
		if entry, lineErr := parse(line); lineErr != nil {
			lineErr.LineNumber = index + 1
			lineErrors = append(lineErrors, lineErr)
		} else {
			entries = append(entries, entry)
		}
	}
	return entries, lineErrors
}

func loadFile[T any](l *Loader, filename, kind string,
	parse func(line string) (T, *records.LineError)) ([]T, error) {
	data, err := l.params.ReadFile(filename)
	if err != nil {
		readFailures.WithLabelValues(kind).Inc()
		return nil, err
	}
	lines := splitLines(data)
	entries, lineErrors := loadLines(lines, parse)
	linesRead.WithLabelValues(kind).Add(float64(len(lines)))
	lineErrorsCount.WithLabelValues(kind).Add(float64(len(lineErrors)))
	for _, lineErr := range lineErrors {
		l.params.Logger.Printf("%s: %s\n", filename, lineErr)
		l.params.Logger.Printf("Unparseable %s entry encountered. Skipping...\n",
			kind)
	}
	l.params.Logger.Debugf(1, "%s: loaded %d %s entries, skipped %d lines\n",
		filename, len(entries), kind, len(lineErrors))
	return entries, nil
}

// splitLines splits on '\n' and strips a trailing '\r' from each line. There
// is no limit on line length.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for index, line := range lines {
		lines[index] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

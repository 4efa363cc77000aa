package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResolveFileName replaces the date and time tokens in name with the
// matching fields of t: %dd% day, %MM% month, %yyyy% year, %hh% hour (24h),
// %m% minute and %ss% second. All fields are zero padded.
func ResolveFileName(name string, t time.Time) string {
	r := strings.NewReplacer(
		"%dd%", t.Format("02"),
		"%MM%", t.Format("01"),
		"%yyyy%", t.Format("2006"),
		"%hh%", t.Format("15"),
		"%m%", t.Format("04"),
		"%ss%", t.Format("05"),
	)
	return r.Replace(name)
}

// prepareDir resolves dir to an absolute path and creates it when missing.
func prepareDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve log directory %q: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", fmt.Errorf("create log directory %q: %w", abs, err)
	}
	return abs, nil
}

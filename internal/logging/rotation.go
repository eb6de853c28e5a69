package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const logFilePrefix = "volfade_"

// rotate keeps at most maxFiles "volfade_*.log" files in dir, oldest removed first.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFile{path: filepath.Join(dir, name), modTime: info.ModTime()})
	}
	if len(logFiles) <= maxFiles {
		return nil
	}
	sort.Slice(logFiles, func(i, j int) bool {
		if logFiles[i].modTime.Equal(logFiles[j].modTime) {
			return logFiles[i].path < logFiles[j].path
		}
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})
	for _, f := range logFiles[:len(logFiles)-maxFiles] {
		os.Remove(f.path)
	}
	return nil
}

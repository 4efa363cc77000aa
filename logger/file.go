package logger

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// fileSink appends whole lines to the log file. The file is opened for every
// append, so a removed file or directory is recreated or reported on the next
// entry. mu serializes appends and guards the target location.
type fileSink struct {
	mu   sync.Mutex
	dir  string
	name string
}

// append writes line plus the platform line ending. It returns the file name
// it wrote to so failures can be reported against it.
func (f *fileSink) append(line string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fh, err := os.OpenFile(filepath.Join(f.dir, f.name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return f.name, err
	}
	_, werr := fh.WriteString(line + lineEnding)
	return f.name, errors.Join(werr, fh.Close())
}

func (f *fileSink) location() (dir, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dir, f.name
}

func (f *fileSink) setDir(dir string) {
	f.mu.Lock()
	f.dir = dir
	f.mu.Unlock()
}

func (f *fileSink) setName(name string) {
	f.mu.Lock()
	f.name = name
	f.mu.Unlock()
}

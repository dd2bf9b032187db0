package list_test

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"testing"
)

type LogFunc func(t *testing.T, data []byte)

var logFile string

func init() {
	flag.StringVar(&logFile, "logfile", "", "logfile to use")
}

func makeLogFunc(logFile string) LogFunc {
	if logFile == "" {
		return func(t *testing.T, data []byte) {
			t.Logf("%s\n", data)
		}
	}

	logout, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open: %w", err))
	}

	return func(t *testing.T, data []byte) {
		if _, err := logout.Write(append(data, '\n')); err != nil {
			panic(fmt.Errorf("write: %w", err))
		}
	}
}

func compareInts(a, b int) int {
	return cmp.Compare(a, b)
}

// entry is ordered by key only, seq tells equal entries apart.
type entry struct {
	key int
	seq int
}

func compareEntries(a, b entry) int {
	return cmp.Compare(a.key, b.key)
}

package memory_test

import (
	"testing"

	"github.com/pipewatch/pipewatch/pkg/repository/memory"
	"github.com/pipewatch/pipewatch/pkg/repository/testhelper"
)

func TestMemoryStore(t *testing.T) {
	store := memory.New()
	testhelper.TestAll(t, store)
}

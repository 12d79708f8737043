package process

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/xdg/vmctl/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.RunStubIfRequested()
	goleak.VerifyTestMain(m)
}

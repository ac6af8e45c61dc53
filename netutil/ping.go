package netutil

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"
)

// Ping shells out to the platform ping binary and reports whether the host
// answered, along with the command output. The process is killed if it
// outlives the expected run time for count echoes.
func Ping(ctx context.Context, host string, count int) (bool, string, error) {

	if count <= 0 {
		return false, "", fmt.Errorf("ping count must be positive, got %d", count)
	}

	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(count)*2*time.Second+5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", countFlag, strconv.Itoa(count), host)
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return false, string(output), fmt.Errorf("ping timed out: host did not respond")
	}
	if err != nil {
		// a non-zero exit means the host is unreachable, not that ping broke
		if _, ok := err.(*exec.ExitError); ok {
			return false, string(output), nil
		}
		return false, string(output), err
	}

	return true, string(output), nil
}

package netutil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"
)

// Traceroute shells out to traceroute (tracert on Windows) and returns its
// output. The process is killed if it outlives three seconds per hop.
func Traceroute(ctx context.Context, host string, maxHops int) (string, error) {

	if maxHops <= 0 {
		return "", fmt.Errorf("max hops must be positive, got %d", maxHops)
	}

	name, hopsFlag := "traceroute", "-m"
	if runtime.GOOS == "windows" {
		name, hopsFlag = "tracert", "-h"
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(maxHops)*3*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, hopsFlag, strconv.Itoa(maxHops), host)
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return string(output), fmt.Errorf("traceroute timed out")
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("'%s' not found on this system", name)
		}
		// non-zero exit still usually carries partial hop output
		if _, ok := err.(*exec.ExitError); ok {
			return string(output), nil
		}
		return string(output), err
	}

	return string(output), nil
}

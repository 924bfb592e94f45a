package sync

import (
	"fmt"
	"os/exec"
	"runtime"
)

// notify shows a desktop notification where a notifier is available.
// Failures are ignored; notifications are advisory.
func notify(title, body string) {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		_ = exec.Command("osascript", "-e", script).Run()
	case "linux":
		_ = exec.Command("notify-send", title, body).Run()
	}
}

package credential

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"mailscribe/internal/model"
)

// Resolve returns the IMAP password for an account. The inline password
// wins, then the output of password_cmd, then the system keyring. An
// account with none of the three is an error.
func Resolve(name string, acct model.Account) (string, error) {
	if acct.Password != "" {
		return acct.Password, nil
	}

	if acct.PasswordCmd != "" {
		out, err := exec.Command("sh", "-c", acct.PasswordCmd).Output()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return "", fmt.Errorf("password_cmd for %q failed: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
			}
			return "", fmt.Errorf("running password_cmd for %q: %w", name, err)
		}
		password := strings.TrimSpace(string(out))
		if password == "" {
			return "", fmt.Errorf("password_cmd for %q produced no output", name)
		}
		return password, nil
	}

	if password, err := Get(name); err == nil && password != "" {
		return password, nil
	}
	return "", fmt.Errorf("account %q has no password, password_cmd, or keyring entry", name)
}

package intent

import "strings"

// ParseCommand splits a "/name args" message into its command name and
// argument string. A "@botname" suffix on the command (group-chat
// addressing) is stripped. ok is false when text is not a slash command.
func ParseCommand(text string) (name, args string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	parts := strings.SplitN(strings.TrimPrefix(text, "/"), " ", 2)
	name = parts[0]
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return "", "", false
	}
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}
	return strings.ToLower(name), args, true
}

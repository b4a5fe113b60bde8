package progress

import (
	"os"
	"os/user"
	"strings"
)

// ResolveIdentity determines who is playing. QUIZDECK_USER wins, then
// the OS account name, then a fixed fallback for environments with no
// resolvable user.
func ResolveIdentity() Identity {
	if name := strings.TrimSpace(os.Getenv("QUIZDECK_USER")); name != "" {
		return Identity{ID: name, Name: name}
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		if u.Name != "" {
			name = u.Name
		}
		return Identity{ID: u.Username, Name: name}
	}

	return Identity{ID: "learner", Name: "Learner"}
}

package platform

import (
	"os"
	"runtime"
	"strings"
)

// EnvWithout returns a copy of environ with every KEY=VALUE entry whose key is
// listed in keys removed. Entries without '=' are kept as-is.
// Keys compare case-insensitively on Windows.
func EnvWithout(environ []string, keys ...string) []string {
	if len(keys) == 0 {
		return append([]string(nil), environ...)
	}
	strip := make(map[string]bool, len(keys))
	for _, k := range keys {
		strip[envKey(k)] = true
	}
	filtered := make([]string, 0, len(environ))
	for _, e := range environ {
		key, _, found := strings.Cut(e, "=")
		if found && strip[envKey(key)] {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// LookupEnv reports the value of the named variable and whether it is set,
// including set-but-empty.
func LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func envKey(k string) string {
	if runtime.GOOS == "windows" {
		return strings.ToUpper(k)
	}
	return k
}

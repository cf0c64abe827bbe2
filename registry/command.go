package registry

import "strings"

// ExtractCommandExe returns the executable file name from a shell open
// command string, e.g. `"C:\Program Files\App\app.exe" "%1"` yields
// "app.exe". It returns "" when no executable can be identified.
func ExtractCommandExe(command string) string {
	s := strings.TrimSpace(command)
	if s == "" {
		return ""
	}

	// Quoted executable path.
	if s[0] == '"' {
		if end := strings.Index(s[1:], `"`); end > 0 {
			if exe := strings.TrimSpace(s[1 : end+1]); exe != "" {
				return pathBase(exe)
			}
		}
	}

	// Unquoted first token; only a token with a file suffix is
	// trusted to be an executable path.
	token := strings.Fields(s)[0]
	base := pathBase(token)
	if strings.Contains(base, ".") && !strings.HasPrefix(base, ".") {
		return base
	}
	return ""
}

// pathBase returns the last element of a path using either separator.
// filepath.Base is not used because registry command strings always
// carry Windows separators, regardless of the build platform.
func pathBase(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return p
}

package gate

import "strings"

// RequiresAuth reports whether path must be authenticated.
//
// It returns true when path or excluded is empty. Entries are checked in
// order and the first match wins: an entry ending in "*" matches every path
// starting with the entry minus the "*"; any other entry matches path and
// path+"/". A matching entry makes the path public.
func RequiresAuth(path string, excluded []string) bool {
	if path == "" || len(excluded) == 0 {
		return true
	}

	for _, pattern := range excluded {
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(path, prefix) {
				return false
			}
			continue
		}
		if pattern == path || pattern == path+"/" {
			return false
		}
	}

	return true
}

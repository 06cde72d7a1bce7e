package rename

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎛️ Policy selects how an attachment's filename is rewritten when its
// extension metadata changes
type Policy string

const (
	// PolicyLeave keeps the filename string untouched
	PolicyLeave Policy = "leave"
	// PolicySmart replaces a recognizable trailing extension, otherwise appends
	PolicySmart Policy = "smart"
	// PolicyForce strips any trailing extension before appending the new one
	PolicyForce Policy = "force"
)

// extSuffix matches a trailing extension: a dot followed by one or more
// alphanumeric characters at the very end of the name. A compound suffix
// like ".tar.gz" is not treated as a unit; only the final ".gz" counts.
var extSuffix = regexp.MustCompile(`\.[A-Za-z0-9]+$`)

// 📝 ParsePolicy parses a policy name from configuration
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyLeave, PolicySmart, PolicyForce:
		return p, nil
	default:
		return "", errors.Errorf("unknown rename policy %q (want leave, smart or force)", s)
	}
}

// 🧹 NormalizeExtension strips at most one leading dot from a user-supplied
// extension. Empty input stays empty.
func NormalizeExtension(raw string) string {
	return strings.TrimPrefix(raw, ".")
}

// ✏️ Rewrite computes the new filename for an attachment whose extension is
// being updated to ext. ext must already be normalized: non-empty, no leading
// dot (see NormalizeExtension). The function is total and side-effect free;
// an unknown policy behaves like PolicyLeave.
func Rewrite(fileName, ext string, policy Policy) string {
	dotExt := "." + ext

	switch policy {
	case PolicySmart:
		if fileName == "" {
			return "file" + dotExt
		}
		if loc := extSuffix.FindStringIndex(fileName); loc != nil {
			return fileName[:loc[0]] + dotExt
		}
		return fileName + dotExt

	case PolicyForce:
		if fileName == "" {
			return "file" + dotExt
		}
		base := extSuffix.ReplaceAllString(fileName, "")
		// a name like "report." has no alnum suffix to strip, but the
		// dangling dot must not survive into "report..pdf"
		base = strings.TrimSuffix(base, ".")
		return base + dotExt

	default:
		return fileName
	}
}

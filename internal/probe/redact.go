package probe

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
)

const redactedUserinfo = "xxxxx:xxxxx"

var userinfoRe = regexp.MustCompile(`//[^/?#\s]*@`)

// Redact masks the user:pass@ segment of every URL in s.
func Redact(s string) string {
	return userinfoRe.ReplaceAllLiteralString(s, "//"+redactedUserinfo+"@")
}

// AggregationKey groups every emission for the same endpoint across cycles.
func AggregationKey(rawURL string) string {
	sum := md5.Sum([]byte(rawURL))
	return hex.EncodeToString(sum[:])
}

// formatSeconds renders 2 as "2.0" and 0.5 as "0.5".
func formatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

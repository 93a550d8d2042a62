package quotation

import (
	"regexp"
	"time"
)

// idPattern matches COT_<YYYYMMDD>_<HHMMSS>.
var idPattern = regexp.MustCompile(`^COT_\d{8}_\d{6}$`)

// NewID derives a quotation id from the given instant, format
// COT_<YYYYMMDD>_<HHMMSS>. Two quotations created within the same second
// produce the same id; the creation transaction surfaces that collision as
// an already-exists conflict rather than deduplicating.
func NewID(t time.Time) string {
	return "COT_" + t.Format("20060102") + "_" + t.Format("150405")
}

// ValidID reports whether s has the quotation id format
func ValidID(s string) bool {
	return idPattern.MatchString(s)
}

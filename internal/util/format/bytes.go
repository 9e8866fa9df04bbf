package format

import "strconv"

// prettyJump is where PrettySize switches from whole bytes to a scaled unit.
const prettyJump = 512

var prettyUnits = [...]string{"KB", "MB", "GB", "TB"}

// PrettySize renders a byte count without the parentheses used by Label,
// e.g. "100 bytes" or "1.50 KB". Values from 512 bytes up are already shown
// as a fraction of the next unit.
func PrettySize(size float64) string {
	if size == 0 {
		return "0 bytes"
	}
	if size < prettyJump {
		return strconv.FormatInt(int64(size), 10) + " bytes"
	}
	i := 0
	for size >= prettyJump && i < len(prettyUnits) {
		i++
		size /= 1024
	}
	return toFixed(size, 2) + " " + prettyUnits[i-1]
}

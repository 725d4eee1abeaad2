package glcore

import "strings"

// readDiagnosticLog runs the two-call log protocol shared by shaders and
// programs: probe the reported length, then fetch into a buffer of exactly
// that size.
func readDiagnosticLog(object uint32, probe func(uint32, Param) int32, fetch func(uint32, int32) []byte) string {
	n := probe(object, InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := fetch(object, n)
	if int32(len(buf)) > n {
		buf = buf[:n]
	}
	return strings.ToValidUTF8(strings.TrimRight(string(buf), "\x00"), "�")
}

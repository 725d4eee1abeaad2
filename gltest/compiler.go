package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-theft-auto/glcore"
)

// stageInterface lists the variables a stage exchanges with its neighbours.
type stageInterface struct {
	in  map[string]string // name -> type
	out map[string]string
}

var (
	versionRe = regexp.MustCompile(`^#version\s+\d+(\s+\w+)?$`)
	mainRe    = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
	varRe     = regexp.MustCompile(`^(?:layout\s*\([^)]*\)\s*)?(in|out)\s+(\w+)\s+(\w+)\s*;`)
)

// compile checks src the way a strict front end would for this package's
// purposes. It returns the stage interface and an empty log on success.
// Real compilers accept far more; the double only needs a clear split
// between good and bad sources plus a believable log.
func compile(stage glcore.Stage, src string) (stageInterface, string) {
	iface := stageInterface{in: map[string]string{}, out: map[string]string{}}

	lines := strings.Split(src, "\n")
	first := -1
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return iface, "0:0(0): error: empty shader source\n"
	}
	if !versionRe.MatchString(strings.TrimSpace(lines[first])) {
		return iface, fmt.Sprintf("0:%d(1): error: missing or malformed #version directive\n", first+1)
	}

	depth := 0
	for i, l := range lines {
		for _, r := range stripComment(l) {
			switch r {
			case '{', '(':
				depth++
			case '}', ')':
				depth--
			}
			if depth < 0 {
				return iface, fmt.Sprintf("0:%d(1): error: syntax error, unexpected '%c'\n", i+1, r)
			}
		}
		if m := varRe.FindStringSubmatch(strings.TrimSpace(l)); m != nil {
			if m[1] == "in" {
				iface.in[m[3]] = m[2]
			} else {
				iface.out[m[3]] = m[2]
			}
		}
	}
	if depth != 0 {
		return iface, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file\n", len(lines))
	}
	if !mainRe.MatchString(src) {
		return iface, fmt.Sprintf("0:%d(1): error: %s shader lacks `main'\n", len(lines), stage)
	}
	return iface, ""
}

// link checks that exactly one compiled vertex and fragment shader are
// attached and that every fragment input is written by the vertex stage.
func link(shaders []*shaderObject) string {
	var vert, frag *shaderObject
	for _, s := range shaders {
		if !s.compiled {
			return "error: linking with uncompiled/unspecialized shader\n"
		}
		switch s.stage {
		case glcore.VertexStage:
			if vert != nil {
				return "error: multiple vertex shaders attached\n"
			}
			vert = s
		case glcore.FragmentStage:
			if frag != nil {
				return "error: multiple fragment shaders attached\n"
			}
			frag = s
		}
	}
	if vert == nil {
		return "error: program lacks a vertex shader\n"
	}
	if frag == nil {
		return "error: program lacks a fragment shader\n"
	}

	var b strings.Builder
	for name, typ := range frag.iface.in {
		out, ok := vert.iface.out[name]
		switch {
		case !ok:
			fmt.Fprintf(&b, "error: fragment shader input `%s' has no matching output in the previous stage\n", name)
		case out != typ:
			fmt.Fprintf(&b, "error: `%s' declared as type `%s' but output from previous stage is `%s'\n", name, typ, out)
		}
	}
	return b.String()
}

func stripComment(l string) string {
	if i := strings.Index(l, "//"); i >= 0 {
		return l[:i]
	}
	return l
}

package catalog

import (
	"fmt"
	"strings"
)

// Interpolate substitutes positional placeholders {0}, {1}, ... in template
// with the rendered params. Params beyond the highest placeholder index are
// ignored. A placeholder with no corresponding param is left literal; that
// mismatch is a developer error which CheckArity surfaces in tests and
// startup validation.
func Interpolate(template string, params ...any) string {
	if !strings.ContainsRune(template, '{') {
		return template
	}
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		idx, width := placeholderAt(template, i)
		if width == 0 {
			b.WriteByte(template[i])
			i++
			continue
		}
		if idx < len(params) {
			b.WriteString(fmt.Sprint(params[idx]))
		} else {
			b.WriteString(template[i : i+width])
		}
		i += width
	}
	return b.String()
}

// CheckArity reports an error when template references a placeholder index
// that nparams cannot satisfy.
func CheckArity(template string, nparams int) error {
	max := MaxPlaceholder(template)
	if max >= nparams {
		return fmt.Errorf("template %q references {%d} but only %d params are supplied", template, max, nparams)
	}
	return nil
}

// MaxPlaceholder returns the highest placeholder index referenced by
// template, or -1 when it has none.
func MaxPlaceholder(template string) int {
	max := -1
	for i := 0; i < len(template); {
		idx, width := placeholderAt(template, i)
		if width == 0 {
			i++
			continue
		}
		if idx > max {
			max = idx
		}
		i += width
	}
	return max
}

// maxPlaceholderDigits bounds placeholder indexes to 4 digits. Longer digit
// runs are not placeholders; without the cap the index accumulation could
// overflow into a negative value.
const maxPlaceholderDigits = 4

// placeholderAt parses a {N} placeholder starting at offset i. It returns
// the placeholder index and its width in bytes, or width 0 when template[i]
// does not start a placeholder.
func placeholderAt(template string, i int) (idx, width int) {
	if template[i] != '{' {
		return 0, 0
	}
	j := i + 1
	for j < len(template) && template[j] >= '0' && template[j] <= '9' {
		idx = idx*10 + int(template[j]-'0')
		j++
	}
	digits := j - i - 1
	if digits == 0 || digits > maxPlaceholderDigits || j >= len(template) || template[j] != '}' {
		return 0, 0
	}
	return idx, j - i + 1
}

package function

import (
	"fmt"
	"strconv"
	"strings"
)

// Infix rendering, mirroring how trees are built. Every composite wraps
// itself in parentheses, so the output is unambiguous without precedence
// rules.

func (f variable) String() string { return fmt.Sprintf("x_%d", f.index) }

func (f constant) String() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

func (f add) String() string { return fmt.Sprintf("(%s + %s)", f.left, f.right) }
func (f sub) String() string { return fmt.Sprintf("(%s - %s)", f.left, f.right) }
func (f mul) String() string { return fmt.Sprintf("(%s*%s)", f.left, f.right) }
func (f div) String() string { return fmt.Sprintf("(%s/%s)", f.left, f.right) }

func (f neg) String() string { return fmt.Sprintf("(-%s)", f.op) }
func (f sin) String() string { return fmt.Sprintf("sin(%s)", f.op) }
func (f cos) String() string { return fmt.Sprintf("cos(%s)", f.op) }
func (f tan) String() string { return fmt.Sprintf("tan(%s)", f.op) }
func (f exp) String() string { return fmt.Sprintf("exp(%s)", f.op) }
func (f log) String() string { return fmt.Sprintf("log(%s)", f.op) }

func (f sum) String() string  { return joinList(f.fs, " + ") }
func (f prod) String() string { return joinList(f.fs, " * ") }

func (f powInt) String() string { return fmt.Sprintf("(%s^%d)", f.op, f.n) }

func (f polynomial) String() string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for k, c := range f.coeffs {
		if c == 0 {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		writeMonomial(&b, 0, k)
	}
	if first {
		b.WriteByte('0')
	}
	b.WriteByte(')')
	return b.String()
}

func (f polyFn) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for k, c := range f.coeffs {
		if k > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(c.String())
		writeMonomial(&b, f.index, k)
	}
	if len(f.coeffs) == 0 {
		b.WriteByte('0')
	}
	b.WriteByte(')')
	return b.String()
}

func joinList(fs []Function, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func writeMonomial(b *strings.Builder, index, k int) {
	switch k {
	case 0:
	case 1:
		fmt.Fprintf(b, "*x_%d", index)
	default:
		fmt.Fprintf(b, "*x_%d^%d", index, k)
	}
}

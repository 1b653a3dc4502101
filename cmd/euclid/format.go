package main

import (
	"math"
	"strconv"
	"strings"

	"euclid/internal/config"
	vm "euclid/vector_math"
)

func formatFloats(precision int, f ...float64) string {
	s := make([]string, len(f))
	for i, v := range f {
		// avoid printing -0
		if math.Abs(v) < math.Pow10(-precision)/2 {
			v = 0
		}
		s[i] = strconv.FormatFloat(v, 'f', precision, 64)
	}
	return "[" + strings.Join(s, " ") + "]"
}

func formatMatrix(m vm.Matrix4, precision int, layout string) string {
	if layout == config.LayoutColumnMajor {
		cm := m.ColumnMajor()
		return formatFloats(precision, cm[:]...)
	}
	rows := m.Rows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = formatFloats(precision, r[:]...)
	}
	return strings.Join(lines, "\n")
}

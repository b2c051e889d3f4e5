package charts

// Fixed color palette, indexed by category position. Color identity tracks
// the category, never the plotted metric, so toggling a chart between
// counts and word counts keeps every slice's color.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
	"#14B8A6", "#EAB308", "#DC2626", "#7C3AED", "#0EA5E9",
	"#DB2777",
}

// ColorAt returns the palette color for a category position.
func ColorAt(position int) string {
	if position < 0 {
		position = 0
	}
	return palette[position%len(palette)]
}

func colorsFor(positions []int) []string {
	colors := make([]string, len(positions))
	for i, p := range positions {
		colors[i] = ColorAt(p)
	}
	return colors
}

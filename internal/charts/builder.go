package charts

import (
	"api/internal/models"
	"api/internal/stats"
)

// Chart names served by the API.
const (
	ChartDocumentsByCategory   = "documents-by-category"
	ChartWordCountDistribution = "word-count-distribution"
	ChartWordsByCategory       = "words-by-category"
	ChartAverageWords          = "average-words-per-document"
	ChartActsByCategory        = "acts-by-category"
)

// ExcludedAverageCategory is left out of the average-words chart. The
// constitution row holds a single outsized document whose ratio flattens
// every other bar on a linear axis.
const ExcludedAverageCategory = models.CategoryConstitution

// DefaultActsLimit is the top-N cutoff for the acts-by-category chart.
const DefaultActsLimit = 15

// Names lists every chart the builder can produce, in display order.
func Names() []string {
	return []string{
		ChartDocumentsByCategory,
		ChartWordCountDistribution,
		ChartWordsByCategory,
		ChartAverageWords,
		ChartActsByCategory,
	}
}

// BuildDocumentsByCategory builds the doughnut of per-category volumes.
// The metric selects the plotted series; labels and colors are identical
// for both metrics so a frontend toggle only swaps the data array.
func BuildDocumentsByCategory(categories []models.CategoryStat, metric models.ChartMetric) models.ChartSpec {
	if metric == "" {
		metric = models.MetricCount
	}

	labels := make([]string, len(categories))
	data := make([]float64, len(categories))
	positions := make([]int, len(categories))
	for i, c := range categories {
		labels[i] = c.Label
		positions[i] = c.Position
		if metric == models.MetricWords {
			data[i] = float64(c.WordCount)
		} else {
			data[i] = float64(c.Count)
		}
	}

	datasetLabel := "Documents"
	if metric == models.MetricWords {
		datasetLabel = "Words"
	}

	return models.ChartSpec{
		Name:   ChartDocumentsByCategory,
		Kind:   models.ChartKindDoughnut,
		Title:  "Documents by category",
		Labels: labels,
		Datasets: []models.ChartDataset{{
			Label:  datasetLabel,
			Data:   data,
			Colors: colorsFor(positions),
		}},
		Options: models.ChartOptions{
			Axis:      models.AxisOptions{Scale: models.ScaleLinear},
			Legend:    models.LegendOptions{Display: true, Position: "right"},
			Tooltip:   models.TooltipOptions{Format: "grouped"},
			Animation: defaultAnimation,
		},
	}
}

// BuildWordCountDistribution builds the histogram over the fixed
// word-count ranges.
func BuildWordCountDistribution(buckets []models.WordCountBucket) models.ChartSpec {
	labels := make([]string, len(buckets))
	data := make([]float64, len(buckets))
	positions := make([]int, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Range
		data[i] = float64(b.NumFiles)
		positions[i] = b.Position
	}

	return models.ChartSpec{
		Name:   ChartWordCountDistribution,
		Kind:   models.ChartKindBar,
		Title:  "Word count distribution",
		Labels: labels,
		Datasets: []models.ChartDataset{{
			Label:  "Files",
			Data:   data,
			Colors: colorsFor(positions),
		}},
		Options: models.ChartOptions{
			Axis:      models.AxisOptions{Scale: models.ScaleLinear, BeginAtZero: true},
			Legend:    models.LegendOptions{Display: false},
			Tooltip:   models.TooltipOptions{Format: "grouped"},
			Animation: defaultAnimation,
		},
	}
}

// BuildWordsByCategory builds the horizontal word-count bars. Category
// volumes span five orders of magnitude, hence the logarithmic axis.
func BuildWordsByCategory(categories []models.CategoryStat) models.ChartSpec {
	labels := make([]string, len(categories))
	data := make([]float64, len(categories))
	positions := make([]int, len(categories))
	for i, c := range categories {
		labels[i] = c.Label
		data[i] = float64(c.WordCount)
		positions[i] = c.Position
	}

	return models.ChartSpec{
		Name:   ChartWordsByCategory,
		Kind:   models.ChartKindLogarithmicBar,
		Title:  "Total words by category",
		Labels: labels,
		Datasets: []models.ChartDataset{{
			Label:  "Words",
			Data:   data,
			Colors: colorsFor(positions),
		}},
		Options: models.ChartOptions{
			Axis:      models.AxisOptions{Scale: models.ScaleLogarithmic, Horizontal: true},
			Legend:    models.LegendOptions{Display: false},
			Tooltip:   models.TooltipOptions{Format: "compact"},
			Animation: defaultAnimation,
		},
	}
}

// BuildAverageWords builds the average words-per-document bars. The
// excluded category is dropped from labels, data and colors together so
// the three stay positionally aligned; zero-count categories are dropped
// for the same reason their averages are undefined.
func BuildAverageWords(categories []models.CategoryStat) models.ChartSpec {
	labels := make([]string, 0, len(categories))
	data := make([]float64, 0, len(categories))
	positions := make([]int, 0, len(categories))
	for _, c := range categories {
		if c.Key == ExcludedAverageCategory || c.Count == 0 {
			continue
		}
		labels = append(labels, c.Label)
		data = append(data, float64(c.WordCount)/float64(c.Count))
		positions = append(positions, c.Position)
	}

	return models.ChartSpec{
		Name:   ChartAverageWords,
		Kind:   models.ChartKindBar,
		Title:  "Average words per document",
		Labels: labels,
		Datasets: []models.ChartDataset{{
			Label:  "Average words",
			Data:   data,
			Colors: colorsFor(positions),
		}},
		Options: models.ChartOptions{
			Axis:      models.AxisOptions{Scale: models.ScaleLinear, BeginAtZero: true},
			Legend:    models.LegendOptions{Display: false},
			Tooltip:   models.TooltipOptions{Format: "grouped"},
			Animation: defaultAnimation,
		},
	}
}

// BuildActsByCategory builds the horizontal top-N acts bars with the tail
// collapsed into "Other".
func BuildActsByCategory(entries []models.ActCategoryCount, limit int) models.ChartSpec {
	if limit <= 0 {
		limit = DefaultActsLimit
	}
	top := stats.TopNWithOverflow(entries, limit)

	labels := make([]string, len(top))
	data := make([]float64, len(top))
	colors := make([]string, len(top))
	for i, e := range top {
		labels[i] = e.Category
		data[i] = float64(e.Count)
		colors[i] = ColorAt(i)
	}

	return models.ChartSpec{
		Name:   ChartActsByCategory,
		Kind:   models.ChartKindHorizontalBar,
		Title:  "Acts by category",
		Labels: labels,
		Datasets: []models.ChartDataset{{
			Label:  "Acts",
			Data:   data,
			Colors: colors,
		}},
		Options: models.ChartOptions{
			Axis:      models.AxisOptions{Scale: models.ScaleLinear, BeginAtZero: true, Horizontal: true},
			Legend:    models.LegendOptions{Display: false},
			Tooltip:   models.TooltipOptions{Format: "grouped"},
			Animation: defaultAnimation,
		},
	}
}

var defaultAnimation = models.AnimationOptions{
	StaggerDelayMs: 60,
	Easing:         "easeOutQuart",
}

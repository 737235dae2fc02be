package profiling

import (
	"math"

	"launchdash/domain/launch"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// PayloadSummary describes the payload mass distribution of a dataset.
type PayloadSummary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Outliers int     `json:"outliers"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	IsNormal bool    `json:"is_normal"`
	NormalP  float64 `json:"normal_p"`
}

// SiteSummary is the per-site launch tally shown beside the charts.
type SiteSummary struct {
	Site        string  `json:"site"`
	Launches    int     `json:"launches"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"success_rate"`
	MeanPayload float64 `json:"mean_payload"`
}

// SummarizePayloads computes summary statistics over every payload in ds.
func SummarizePayloads(ds *launch.Dataset) (PayloadSummary, error) {
	return AnalyzeDistribution(ds.Payloads())
}

// AnalyzeDistribution computes summary and shape statistics for data.
func AnalyzeDistribution(data []float64) (PayloadSummary, error) {
	summary := PayloadSummary{Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	// Quartiles for IQR-based outlier detection
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return summary, err
	}

	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	summary.Median = median
	summary.Q25 = q25
	summary.Q75 = q75
	summary.Outliers = detectOutliers(data, q25, q75)
	summary.Skewness = calculateSkewness(data, mean, stdDev)
	summary.Kurtosis = calculateKurtosis(data, mean, stdDev)
	summary.IsNormal, summary.NormalP = testNormality(summary.Skewness, summary.Kurtosis, len(data))

	return summary, nil
}

// SummarizeSites tallies launches per site in first-seen order.
func SummarizeSites(ds *launch.Dataset) []SiteSummary {
	index := make(map[string]int)
	var out []SiteSummary
	payloads := make(map[string][]float64)

	ds.Each(func(r launch.Record) {
		i, ok := index[r.LaunchSite]
		if !ok {
			i = len(out)
			index[r.LaunchSite] = i
			out = append(out, SiteSummary{Site: r.LaunchSite})
		}
		out[i].Launches++
		if r.Outcome.IsSuccess() {
			out[i].Successes++
		}
		payloads[r.LaunchSite] = append(payloads[r.LaunchSite], r.PayloadMassKg)
	})

	for i := range out {
		out[i].SuccessRate = float64(out[i].Successes) / float64(out[i].Launches)
		if mean, err := stats.Mean(payloads[out[i].Site]); err == nil {
			out[i].MeanPayload = mean
		}
	}
	return out
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// calculateKurtosis computes sample kurtosis (3 for a normal distribution)
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	return sumFourthDeviations / n
}

// testNormality is a Jarque-Bera style check on skewness and kurtosis.
// It is an approximation and only feeds the summary panel.
func testNormality(skewness, kurtosis float64, n int) (isNormal bool, pValue float64) {
	if n < 8 {
		return false, 1.0
	}

	jb := float64(n) / 6 * (skewness*skewness + (kurtosis-3)*(kurtosis-3)/4)
	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(jb)

	return pValue > 0.05, pValue
}

// detectOutliers identifies outliers using IQR method
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}

	return outlierCount
}

package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/fleetlens/fleetlens/schema"
)

// ============================================================================
// MESSAGES — Human-readable replies for degraded and fallback paths
// ============================================================================
// Missing columns, unparseable columns, and unrecognized questions are
// answered, not raised. Each kind gets a distinct message so callers can
// tell "feature absent" from "feature present but empty or garbage".
// ============================================================================

// ExampleQuestions are suggested to callers whose question matched no rule.
var ExampleQuestions = []string{
	"Which delivery person has the highest rating?",
	"Which delivery person is the fastest on average?",
	"What is the average delivery time per city?",
	"How does traffic density impact delivery time?",
}

// MissingColumnMessage names the role a query needed but the table lacks.
func MissingColumnMessage(role schema.Role) string {
	return fmt.Sprintf("%s column not found.", role.DisplayName())
}

// NoNumericDataMessage reports a column that parsed to zero numeric values.
func NoNumericDataMessage(role schema.Role) string {
	return fmt.Sprintf("No numeric %s data available.", strings.ToLower(role.DisplayName()))
}

// UnrecognizedMessage is the fallback reply, listing example questions.
func UnrecognizedMessage() string {
	quoted := make([]string, len(ExampleQuestions))
	for i, q := range ExampleQuestions {
		quoted[i] = "'" + q + "'"
	}
	return "I couldn't identify a direct match for that question. Try: " +
		strings.Join(quoted, ", ") + "."
}

const missingDistanceInputs = "Latitude/longitude or time data missing to compute distance/time correlation."

// formatCorr renders a correlation coefficient, using the NaN sentinel
// when the statistic is undefined.
func formatCorr(corr float64) string {
	if math.IsNaN(corr) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", RoundTo2(corr))
}

// formatCell renders a group value for table output.
func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

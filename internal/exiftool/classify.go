package exiftool

import "strings"

// Outcome is the classified result of a title write.
type Outcome int

const (
	Unexpected Outcome = iota
	Update
	NoChange
	Simulate
)

func (o Outcome) String() string {
	switch o {
	case Update:
		return "update"
	case NoChange:
		return "no_change"
	case Simulate:
		return "simulate"
	default:
		return "unexpected"
	}
}

// Classifier maps captured exiftool output to an Outcome.
type Classifier interface {
	Classify(output string) Outcome
}

// PatternClassifier matches fixed substrings of exiftool's summary lines.
// UpdatedSuffix is tested first and must end the output; UnchangedMarker
// may appear anywhere.
type PatternClassifier struct {
	UpdatedSuffix   string
	UnchangedMarker string
}

// DefaultClassifier matches exiftool's English summary for a single file.
func DefaultClassifier() PatternClassifier {
	return PatternClassifier{
		UpdatedSuffix:   "1 image files updated\n\n",
		UnchangedMarker: " 0 image files updated\n    1 image files unchanged",
	}
}

func (p PatternClassifier) Classify(output string) Outcome {
	if p.UpdatedSuffix != "" && strings.HasSuffix(output, p.UpdatedSuffix) {
		return Update
	}
	if p.UnchangedMarker != "" && strings.Contains(output, p.UnchangedMarker) {
		return NoChange
	}
	return Unexpected
}

// OneLine removes line breaks so raw output fits a single log field.
func OneLine(output string) string {
	return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(output)
}

package debug

// Height enforcement outcomes reported in HeightData.
const (
	OutcomeUncapped  = "uncapped"
	OutcomeFits      = "fits"
	OutcomeTruncated = "truncated"
	OutcomeOverflow  = "overflow"
)

// ClassifyHeight names the result of enforcing limit on rows rendered rows.
// A negative limit means the block has no height cap.
func ClassifyHeight(rows, limit int, truncate bool) string {
	switch {
	case limit < 0:
		return OutcomeUncapped
	case rows <= limit:
		return OutcomeFits
	case truncate:
		return OutcomeTruncated
	default:
		return OutcomeOverflow
	}
}

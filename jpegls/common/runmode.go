package common

// IncrementRunIndex steps the run index up, saturating at 31
func IncrementRunIndex(runIndex int) int {
	if runIndex < 31 {
		return runIndex + 1
	}
	return runIndex
}

// DecrementRunIndex steps the run index down, saturating at 0
func DecrementRunIndex(runIndex int) int {
	if runIndex > 0 {
		return runIndex - 1
	}
	return runIndex
}

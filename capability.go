package tagged

// RoundingRule selects how Round resolves a value to an integral value.
// The rules match IEEE 754's rounding-direction attributes.
type RoundingRule string

const (
	// RoundToNearestOrAwayFromZero rounds to the closest integral value;
	// ties go away from zero. This is the schoolbook rule.
	RoundToNearestOrAwayFromZero RoundingRule = "toNearestOrAwayFromZero"

	// RoundToNearestOrEven rounds to the closest integral value; ties go
	// to the even neighbor (banker's rounding).
	RoundToNearestOrEven RoundingRule = "toNearestOrEven"

	// RoundUp rounds toward positive infinity.
	RoundUp RoundingRule = "up"

	// RoundDown rounds toward negative infinity.
	RoundDown RoundingRule = "down"

	// RoundTowardZero truncates the fractional part.
	RoundTowardZero RoundingRule = "towardZero"

	// RoundAwayFromZero rounds to the integral value farther from zero.
	RoundAwayFromZero RoundingRule = "awayFromZero"
)

// validRoundingRules contains all valid rounding rules for validation.
var validRoundingRules = map[RoundingRule]bool{
	RoundToNearestOrAwayFromZero: true,
	RoundToNearestOrEven:         true,
	RoundUp:                      true,
	RoundDown:                    true,
	RoundTowardZero:              true,
	RoundAwayFromZero:            true,
}

// IsValidRoundingRule returns true if the rule is a known rounding rule.
func IsValidRoundingRule(rule RoundingRule) bool {
	return validRoundingRules[rule]
}

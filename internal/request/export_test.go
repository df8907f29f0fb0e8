package request

// Export internal functions for testing.

// MatchingRules exports matchingRules for testing.
var MatchingRules = matchingRules

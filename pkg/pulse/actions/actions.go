package actions

import (
	"strings"

	"github.com/cognicore/pulse/pkg/pulse/sentiment"
)

// Recommendation texts, in the order the rules are evaluated.
const (
	PerformanceFix = "Ship a performance fix: profile top 2 slow paths; publish before/after timings in release notes."
	BugBash        = "Create a bug-bash with clear owners; add a status board and daily updates until resolved."
	UXRewrite      = "Rewrite the onboarding/UX copy; run 5-user usability tests and track completion time."
	AmplifyPraise  = "Amplify the most-liked feature in onboarding and a short tutorial video."
	WeeklyDigest   = "Publish a weekly digest of top themes and commit one fix per sprint."
)

// Rule is one step of the recommendation cascade.
type Rule struct {
	Name   string
	Action string
	// Keywords fire the rule when any of them is a token of a theme.
	Keywords []string
	// Sentiment fires the rule on the tally alone.
	Sentiment func(sentiment.Tally) bool
}

// DefaultRules returns the built-in cascade. Order defines output order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "performance", Action: PerformanceFix, Keywords: []string{"slow", "lag", "delay"}},
		{Name: "bugs", Action: BugBash, Keywords: []string{"crash", "error", "failed", "failure", "bug"}},
		{Name: "ux", Action: UXRewrite, Keywords: []string{"confusing", "unclear", "difficult"}},
		{Name: "praise", Action: AmplifyPraise, Sentiment: func(t sentiment.Tally) bool { return t.Positive > t.Negative }},
	}
}

// Recommend runs the default cascade.
func Recommend(themes []string, tally sentiment.Tally) []string {
	return Evaluate(DefaultRules(), themes, tally)
}

// Evaluate appends the action of every rule that fires, in rule order. Theme
// phrases are split into tokens and matched exactly, so a keyword never
// fires on a substring of an unrelated word. When nothing fires the weekly
// digest is returned, so the result is never empty.
func Evaluate(rules []Rule, themes []string, tally sentiment.Tally) []string {
	tokens := make(map[string]struct{})
	for _, theme := range themes {
		for _, tok := range strings.Fields(theme) {
			tokens[tok] = struct{}{}
		}
	}

	var out []string
	for _, r := range rules {
		if r.fires(tokens, tally) {
			out = append(out, r.Action)
		}
	}
	if len(out) == 0 {
		out = append(out, WeeklyDigest)
	}
	return out
}

func (r Rule) fires(tokens map[string]struct{}, tally sentiment.Tally) bool {
	for _, kw := range r.Keywords {
		if _, ok := tokens[kw]; ok {
			return true
		}
	}
	return r.Sentiment != nil && r.Sentiment(tally)
}

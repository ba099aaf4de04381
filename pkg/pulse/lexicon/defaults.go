package lexicon

var defaultGroups = []Group{
	{Canonical: "crash", Variants: []string{"crashes", "crashed", "crashing", "error", "errors", "fail", "fails", "failed", "failing", "failure", "failures", "broken", "breaks"}},
	{Canonical: "bug", Variants: []string{"bugs", "buggy", "glitch", "glitches", "glitchy"}},
	{Canonical: "slow", Variants: []string{"slower", "slowly", "slowness", "sluggish", "lag", "lags", "laggy", "lagging", "delay", "delays", "delayed"}},
	{Canonical: "confusing", Variants: []string{"confused", "confuse", "confusion", "unclear", "unintuitive"}},
	{Canonical: "difficult", Variants: []string{"difficulty", "complicated", "cumbersome"}},
	{Canonical: "issue", Variants: []string{"issues", "problem", "problems"}},
	{Canonical: "great", Variants: []string{"awesome", "amazing", "excellent", "fantastic", "wonderful"}},
	{Canonical: "love", Variants: []string{"loved", "loves", "loving"}},
	{Canonical: "helpful", Variants: []string{"useful", "supportive"}},
	{Canonical: "fast", Variants: []string{"faster", "quick", "quickly", "snappy", "speedy"}},
	{Canonical: "docs", Variants: []string{"doc", "documentation", "manual", "guide", "guides"}},
	{Canonical: "login", Variants: []string{"logins", "signin", "logon"}},
	{Canonical: "price", Variants: []string{"prices", "pricing", "cost", "costs"}},
}

var defaultLexicon = MustNew(defaultGroups...)

// Default returns the built-in feedback synonym lexicon. The returned value
// is shared and must be treated as read-only.
func Default() *Lexicon {
	return defaultLexicon
}

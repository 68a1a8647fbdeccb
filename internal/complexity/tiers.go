package complexity

import "strings"

// tierRule maps a score tier to the name patterns that place a technology
// in it. Rules are evaluated top-down (highest tier first) so a name that
// could match several tiers lands in the highest one.
type tierRule struct {
	tier     int
	patterns []string
}

// Frontend tiers (max 3). Tier 0 is the no-code bucket: it contributes
// nothing to the score but still drives factors and the explanation.
var frontendTiers = []tierRule{
	{3, []string{"angular", "ember", "backbone", "ext js", "knockout"}},
	{2, []string{"react", "vue", "svelte", "next", "nuxt", "remix"}},
	{1, []string{"jekyll", "hugo", "gatsby", "eleventy", "11ty"}},
	{0, []string{"webflow", "wix", "squarespace", "weebly", "bubble", "carrd", "shopify"}},
}

// Backend tiers (max 4). Tier 4 is container-orchestration and
// microservices tooling; its presence also flips the infrastructure
// factor to high.
var backendTiers = []tierRule{
	{4, []string{"kubernetes", "docker swarm", "istio", "linkerd", "kafka", "rabbitmq", "consul", "nomad", "microservice"}},
	{3, []string{"node", "django", "rails", "spring", "laravel", "asp.net", "nestjs", "phoenix"}},
	{2, []string{"express", "fastify", "flask", "sinatra", "koa", "hapi"}},
	{1, []string{"firebase", "supabase", "appwrite", "parse", "amplify", "lambda", "cloud functions", "serverless"}},
}

// Infrastructure tiers (max 3). Tier 0 is managed all-in-one hosting.
var infraTiers = []tierRule{
	{3, []string{"kubernetes", "docker swarm", "openshift", "nomad", "eks", "gke", "aks"}},
	{2, []string{"aws", "amazon web services", "azure", "google cloud", "gcp", "digitalocean", "linode"}},
	{1, []string{"netlify", "vercel", "heroku", "render", "railway", "fly.io", "github pages", "cloudflare pages"}},
	{0, []string{"webflow", "wix", "squarespace", "weebly", "shopify"}},
}

// commercialNames flags technologies with enterprise licensing terms.
var commercialNames = []string{
	"oracle", "sap", "salesforce", "sitecore", "adobe experience manager",
	"microsoft dynamics", "websphere", "teradata", "informatica",
}

// matchesPattern reports whether a detected name belongs to a pattern.
// Detected names carry version suffixes ("Next.js 13.4.1"), so containment
// is checked on the lowercased name.
func matchesPattern(lowerName, pattern string) bool {
	return strings.Contains(lowerName, pattern)
}

// classify returns the tier for a name, or (-1, false) when no rule matches.
func classify(name string, rules []tierRule) (int, bool) {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, p := range rule.patterns {
			if matchesPattern(lower, p) {
				return rule.tier, true
			}
		}
	}
	return -1, false
}

// axisResult aggregates tier classification for one axis across the whole
// technology list.
type axisResult struct {
	score     int          // highest matching tier (0 when nothing matched)
	matched   []string     // names that matched any tier, detection order
	tiersSeen map[int]bool // which tiers matched at least once
}

func classifyAxis(names []string, rules []tierRule) axisResult {
	res := axisResult{tiersSeen: make(map[int]bool)}
	for _, name := range names {
		tier, ok := classify(name, rules)
		if !ok {
			continue
		}
		res.matched = append(res.matched, name)
		res.tiersSeen[tier] = true
		if tier > res.score {
			res.score = tier
		}
	}
	return res
}

func hasCommercial(names []string) bool {
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, c := range commercialNames {
			if strings.Contains(lower, c) {
				return true
			}
		}
	}
	return false
}

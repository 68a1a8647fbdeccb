package complexity

import (
	"fmt"
	"strings"
)

// explain assembles the human-readable narrative for an enhanced result:
// one sentence per axis, an overall tier sentence, and conditional
// sentences for technology count and licensing.
func explain(score int, f Factors, frontend, backend, infra axisResult) string {
	var sentences []string

	switch {
	case frontend.tiersSeen[0]:
		sentences = append(sentences, "The frontend runs on a no-code platform, so it can be replicated without custom frontend development.")
	case frontend.score == 3:
		sentences = append(sentences, fmt.Sprintf("The frontend uses a complex framework (%s) that calls for experienced frontend developers.", firstMatch(frontend)))
	case frontend.score == 2:
		sentences = append(sentences, fmt.Sprintf("The frontend is built with a modern framework (%s), a mainstream and well-documented stack.", firstMatch(frontend)))
	case frontend.score == 1:
		sentences = append(sentences, "The frontend is a static site, one of the simplest architectures to reproduce.")
	default:
		sentences = append(sentences, "No notable frontend framework was detected.")
	}

	switch backend.score {
	case 4:
		sentences = append(sentences, fmt.Sprintf("The backend relies on container orchestration or microservices tooling (%s), the most demanding tier to rebuild.", firstMatch(backend)))
	case 3:
		sentences = append(sentences, fmt.Sprintf("The backend uses a full-featured framework (%s) that requires solid server-side experience.", firstMatch(backend)))
	case 2:
		sentences = append(sentences, fmt.Sprintf("The backend is a lightweight framework (%s), straightforward to reimplement.", firstMatch(backend)))
	case 1:
		sentences = append(sentences, "The backend is serverless or backend-as-a-service, which keeps server work minimal.")
	default:
		sentences = append(sentences, "No backend technology was detected.")
	}

	switch infra.score {
	case 3:
		sentences = append(sentences, "Infrastructure runs on a container-orchestration platform, which adds significant operational overhead.")
	case 2:
		sentences = append(sentences, "Infrastructure sits on a general cloud platform, requiring some DevOps capability.")
	case 1:
		sentences = append(sentences, "Infrastructure uses a simple managed hosting platform.")
	default:
		if infra.tiersSeen[0] {
			sentences = append(sentences, "Hosting is bundled into a managed all-in-one platform.")
		} else {
			sentences = append(sentences, "No dedicated infrastructure platform was detected.")
		}
	}

	switch {
	case score <= 3:
		sentences = append(sentences, "Overall this is a low-complexity product that should be easy to clone.")
	case score <= 6:
		sentences = append(sentences, "Overall this is a moderate-complexity product; cloning it takes solid development skills.")
	default:
		sentences = append(sentences, "Overall this is a high-complexity product; cloning it will be challenging.")
	}

	switch {
	case f.TechnologyCount > 20:
		sentences = append(sentences, fmt.Sprintf("The stack is very broad (%d technologies), which raises integration effort substantially.", f.TechnologyCount))
	case f.TechnologyCount > 10:
		sentences = append(sentences, fmt.Sprintf("The stack is fairly broad (%d technologies), which adds integration effort.", f.TechnologyCount))
	}

	if f.LicensingComplexity {
		sentences = append(sentences, "Commercially licensed technology is present; budget for licensing costs or replacement work.")
	}

	return strings.Join(sentences, " ")
}

func firstMatch(a axisResult) string {
	if len(a.matched) == 0 {
		return "unknown"
	}
	return a.matched[0]
}

package ai

import "math/rand"

// Canned coaching turns used when the live model is unreachable, so a
// conversation always gets a reply.
var fallbackReplies = []string{
	"That is a profound perspective. Tell me more about how that impacts your daily flow.",
	"I see. To achieve clarity here, we must strip away the non-essential. What is the core blocker?",
	"Interesting. Let's reframe this constraint as an opportunity. How can we turn this into a strength?",
	"I am listening. In the context of your goals, how does this align with your long-term vision?",
}

func localFallback(_ string) string {
	return fallbackReplies[rand.Intn(len(fallbackReplies))]
}

package challenge

// Default returns the built-in challenge table.
// Keep IDs stable: the history view groups by challenge text, and the
// selector's day mapping shifts for everyone whenever the length changes.
func Default() []Challenge {
	return []Challenge{
		// Warm & gentle
		{ID: 1, Text: "Ask someone how they really are — and give them time to answer.", Category: CategoryWarm, Difficulty: 1},
		{ID: 2, Text: "Send a message to a friend you haven’t talked to in a while: “You crossed my mind today.”", Category: CategoryConnection, Difficulty: 1},
		{ID: 3, Text: "Give a genuine compliment to someone’s personality or energy.", Category: CategoryWarm, Difficulty: 1},

		// Confidence
		{ID: 4, Text: "Ask a coworker or classmate what they’re looking forward to this week.", Category: CategoryConfidence, Difficulty: 1},
		{ID: 5, Text: "Share one small personal update with someone instead of saying “nothing much.”", Category: CategoryConfidence, Difficulty: 1},

		// Charisma
		{ID: 6, Text: "Use someone’s name naturally in conversation at least once.", Category: CategoryCharisma, Difficulty: 1},
		{ID: 7, Text: "Ask one follow-up question today instead of switching topics.", Category: CategoryCharisma, Difficulty: 1},

		// Connection-deepening
		{ID: 8, Text: "Ask someone: “What’s something good that happened this week?”", Category: CategoryConnection, Difficulty: 1},
		{ID: 9, Text: "Tell a close friend or family member one thing you appreciate about them.", Category: CategoryConnection, Difficulty: 2},
		{ID: 10, Text: "Send a voice note instead of a text to someone you care about.", Category: CategoryConnection, Difficulty: 2},

		{ID: 11, Text: "Share one thing that made you smile today with someone nearby.", Category: CategoryWarm, Difficulty: 1},
		{ID: 12, Text: "Ask a friend: “What’s something you’re excited about this month?”", Category: CategoryConnection, Difficulty: 1},
		{ID: 13, Text: "Offer a specific, genuine compliment about someone’s effort or kindness.", Category: CategoryWarm, Difficulty: 1},
		{ID: 14, Text: "Send a short “thinking of you” voice note to someone you appreciate.", Category: CategoryConnection, Difficulty: 1},
		{ID: 15, Text: "Invite someone to share a small win from their week—and celebrate it.", Category: CategoryConnection, Difficulty: 1},
		{ID: 16, Text: "Practice a confident hello: smile, eye contact, and their name.", Category: CategoryConfidence, Difficulty: 1},
		{ID: 17, Text: "Ask a curious follow-up like “Tell me more about that.” and really listen.", Category: CategoryCharisma, Difficulty: 1},
		{ID: 18, Text: "Share one encouraging thought with someone who seems a bit stressed.", Category: CategoryWarm, Difficulty: 2},
		{ID: 19, Text: "Invite a quick walk-and-talk or coffee with someone you’d like to know better.", Category: CategoryConfidence, Difficulty: 2},
		{ID: 20, Text: "Ask: “What’s something you’re proud of lately?” and celebrate their answer.", Category: CategoryConnection, Difficulty: 2},
		{ID: 21, Text: "Tell someone exactly why you appreciate having them in your life.", Category: CategoryConnection, Difficulty: 2},
		{ID: 22, Text: "Share a small, positive personal story to invite deeper conversation.", Category: CategoryCharisma, Difficulty: 2},
		{ID: 23, Text: "Offer to help with one tiny task for a friend or colleague today.", Category: CategoryWarm, Difficulty: 2},
		{ID: 24, Text: "Reach out to someone you admire and tell them what you’ve learned from them.", Category: CategoryConfidence, Difficulty: 2},
		{ID: 25, Text: "Ask: “What’s something you’re looking forward to?” and match their enthusiasm.", Category: CategoryConnection, Difficulty: 1},
	}
}

package core

// DefaultGuides are substituted when the best-practices store is
// unavailable. The fallback is recorded in the validation metadata as
// bestPracticesSource "defaults".
func DefaultGuides() []BestPracticeGuide {
	return []BestPracticeGuide{
		{
			ID:       "email-copy-basics",
			Title:    "Email Copy Basics",
			Category: "copy",
			Content: `Keep subject lines between 20 and 60 characters and personalize them with merge fields.
Write short, skimmable bodies with one clear call to action.
Avoid spam trigger words (free, act now, limited time, guarantee) and all-caps words.
Use at most one exclamation mark per email and never fake a reply or forward prefix.`,
		},
		{
			ID:       "lead-list-basics",
			Title:    "Lead List Basics",
			Category: "leads",
			Content: `Every lead needs a valid business email address.
Titles, companies, and industries should match the stated ideal customer profile.
Remove role accounts (info@, sales@) and obviously stale records before launch.
A list where fewer than half the leads fit the ICP should not be sent.`,
		},
	}
}

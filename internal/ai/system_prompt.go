package ai

// System instructions, one per prompt family.
const (
	CourseSystemPrompt = "You are an assistant generating course recommendations for employees."

	PartnerSystemPrompt = "You are an assistant that helps find matching partners based on shared hobbies or complementary skills."

	TaskSystemPrompt = "You are an assistant that generates employee tasks in JSON format."
)

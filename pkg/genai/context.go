package genai

// Turn is one stored prompt/response exchange, already ordered by its
// position in the conversation.
type Turn struct {
	Prompt   string
	Response string
}

// BuildContents rebuilds the multi-turn payload for generateContent. Each
// prior turn becomes a user message followed by a model message, then the
// new prompt closes the list as a user message. With no history the result
// is the single new prompt.
func BuildContents(history []Turn, prompt string) []*ChatContent {
	contents := make([]*ChatContent, 0, len(history)*2+1)
	for _, turn := range history {
		contents = append(contents, &ChatContent{
			Parts: []*ChatPart{{Text: turn.Prompt}},
			Role:  RoleUser,
		})
		contents = append(contents, &ChatContent{
			Parts: []*ChatPart{{Text: turn.Response}},
			Role:  RoleModel,
		})
	}
	contents = append(contents, &ChatContent{
		Parts: []*ChatPart{{Text: prompt}},
		Role:  RoleUser,
	})
	return contents
}

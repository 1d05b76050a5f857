package constant

import "fmt"

const (
	// WelcomeMessageTemplate seeds the first assistant turn after a
	// successful extraction. The verb references the document label so the
	// user knows which file the conversation is grounded in.
	welcomeMessageTemplate = "I've finished reading \"%s\". Ask me anything about it."

	// ApologyMessage is appended as the assistant turn when the answer
	// service fails. The session stays usable; the user can simply retry.
	ApologyMessage = "Sorry, something went wrong while processing your request. Please try again."
)

func WelcomeMessage(documentLabel string) string {
	return fmt.Sprintf(welcomeMessageTemplate, documentLabel)
}

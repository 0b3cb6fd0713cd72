package api

// Messages returned with 200 for expected caller-side problems.
const (
	GreetingMessage      = "Epic AI Magic"
	MissingTokenMessage  = "Auth token has not been set. Try logging in."
	UserNotFoundMessage  = "User not found! Try logging in again."
	PromptTooLongMessage = "Prompt is too long. Try a shorter one."
)

type HealthResponse struct {
	Status   string `json:"status" description:"Service status"`
	Version  string `json:"version" description:"API version"`
	Database string `json:"database,omitempty" description:"Database status when auth is enabled"`
}

package router

// MaxHistoryTurns is the number of most recent turns rendered into a prompt.
const MaxHistoryTurns = 5

// TimestampLayout is the ISO-8601 layout of workflow payload timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// General agent prompts
const (
	PromptPersona = `You are the concierge assistant of a private aviation charter company. ` +
		`You speak with clients about flights, aircraft, travel logistics and anything else they ask, ` +
		`in a warm, precise and discreet tone.`

	PromptUserMessage = `User message: "%s"`

	PromptGeneralInstructions = `Instructions:
- Answer the message directly and concisely.
- If the request involves flying, offer to prepare a charter quote with the operations team.
- Never invent prices, availability or aircraft registrations.`

	PromptHybridInstructions = `Instructions:
- Structured %s data for this request is being fetched by the workflow backend and will be appended below.
- Wait for that data, then summarize the key findings and notable patterns.
- Close with concrete next steps. Do not invent records that are not in the data.`

	PromptWebSearchOn  = "- You may use web search to ground time-sensitive facts."
	PromptWebSearchOff = "- Do not browse the web; answer from what you know."

	PromptHistoryHeader = "Recent conversation:"
	PromptHistoryLine   = "%s: %s"
)

// Reasoning templates
const (
	ReasoningHybrid          = "Structured data request detected (%s, confidence %.2f); workflow fetches data, general agent narrates"
	ReasoningWorkflow        = "Domain request routed to workflow (confidence %.2f): %s"
	ReasoningDomainNotRouted = "Mode %q does not route domain requests (confidence %.2f): %s"
	ReasoningGeneral         = "No domain or structured-data intent (confidence %.2f): %s"
)

// Follow-up actions
const (
	ActionFetchStructuredData = "fetch structured data"
	ActionGenerateCommentary  = "generate commentary"
	ActionProvideNextSteps    = "provide next steps"
	ActionProcessDomain       = "process domain request"
	ActionReturnWorkflow      = "return workflow result"
	ActionWebSearch           = "augment with web search"
	ActionGenerateResponse    = "generate response"
)

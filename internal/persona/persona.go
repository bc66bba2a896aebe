package persona

// Persona is a named behavioral template governing the system prompt sent to
// the generation model. The set is closed and defined statically; selecting
// a persona never touches ingested data.
type Persona struct {
	Label        string
	Title        string
	Placeholder  string
	SystemPrompt string
}

var personas = []Persona{
	{
		Label:        "Medical Appeal Shark",
		Title:        "AppealOS: Denial Crusher",
		Placeholder:  "Describe the denied claim...",
		SystemPrompt: "You are a Senior Medical Billing Advocate. Write an aggressive, formal appeal letter. Cite the uploaded policy explicitly. Demand payment.",
	},
	{
		Label:        "Wall Street Analyst",
		Title:        "MarketMind: Stock Analyst",
		Placeholder:  "Ask about the stock...",
		SystemPrompt: "You are a Hedge Fund Analyst. Analyze the report. Look for risks and 'Golden Crossover' signals. Give a clear BUY/SELL recommendation.",
	},
	{
		Label:        "SaaS Customer Support",
		Title:        "SaaS-Hero: Retention Expert",
		Placeholder:  "Paste the angry customer email here...",
		SystemPrompt: "You are a Senior Customer Success Manager. De-escalate the angry customer. REFUSE the refund if policy says 'No Refunds'. Offer a 'VIP Training Session' instead.",
	},
}

// All returns the closed set of available personas.
func All() []Persona {
	out := make([]Persona, len(personas))
	copy(out, personas)
	return out
}

// Default returns the persona selected at startup.
func Default() Persona { return personas[0] }

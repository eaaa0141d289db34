package domain

// Formatos JSON pedidos ao modelo em cada prompt

type LeadScore struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
	Factors   []struct {
		Factor string `json:"factor"`
		Impact string `json:"impact"`
		Weight int    `json:"weight"`
	} `json:"factors"`
}

type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type DealPrediction struct {
	WinProbability  int      `json:"winProbability"`
	Reasoning       string   `json:"reasoning"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"riskFactors"`
}

type Insights struct {
	Summary           string   `json:"summary"`
	KeyPoints         []string `json:"keyPoints"`
	SentimentAnalysis string   `json:"sentimentAnalysis"`
	NextActions       []string `json:"nextActions"`
}

type NextAction struct {
	Action        string `json:"action"`
	Priority      string `json:"priority"`
	Reasoning     string `json:"reasoning"`
	SuggestedDate string `json:"suggestedDate"`
}

type ChatAction struct {
	Type   string         `json:"type"`
	Entity string         `json:"entity"`
	ID     string         `json:"id"`
	Data   map[string]any `json:"data"`
}

type ChatReply struct {
	Response string      `json:"response"`
	Action   *ChatAction `json:"action"`
}

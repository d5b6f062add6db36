package excuse

// Metadata describes how a generated excuse was produced. It is populated
// only by the AI-backed repository provider; the static bank returns no
// metadata.
type Metadata struct {
	// Model is the identifier of the model that produced the excuse.
	Model string `json:"model"`

	// Tokens is the total token count the generation consumed.
	Tokens int `json:"tokens"`
}

// Generation is the result of one excuse request: the excuse text plus
// optional provenance metadata.
type Generation struct {
	Excuse   string    `json:"excuse"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

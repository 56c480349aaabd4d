package dynamicaction

// ConvertInput represents convert action input
type ConvertInput struct {
	Value interface{} `json:"value,omitempty" description:"raw value to convert"`
	Type  string      `json:"type" description:"registered type name, e.g. boolean or number"`
}

// ConvertOutput represents convert action output
type ConvertOutput struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value,omitempty"`
	// Special is set when Value holds the text form of NaN or an infinity.
	Special bool `json:"special,omitempty"`
}

// SupportsInput represents supports action input
type SupportsInput struct {
	Type string `json:"type" description:"type name to check"`
}

// SupportsOutput represents supports action output
type SupportsOutput struct {
	Supported bool `json:"supported"`
}

// TypesInput represents types action input
type TypesInput struct{}

// TypesOutput represents types action output
type TypesOutput struct {
	Types []string `json:"types"`
}

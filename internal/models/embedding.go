package models

import "encoding/json"

// ModelName is the pretrained sentence-embedding model used for every
// encode run. It is fixed, not configuration.
const ModelName = "sentence-transformers/all-MiniLM-L6-v2"

// OllamaModelName is the Ollama packaging of the same model.
const OllamaModelName = "all-minilm"

// ModelDimension is the vector width ModelName produces.
const ModelDimension = 384

// EmbeddingModelDimensions maps known model names to their dimensions.
var EmbeddingModelDimensions = map[string]int{
	ModelName:       384,
	OllamaModelName: 384,
}

// EncodeRequest is the envelope read from standard input.
type EncodeRequest struct {
	Texts []string
}

// UnmarshalJSON decodes the input envelope. A missing "texts" field, a
// non-list value, or a list that is not all strings downgrades to an empty
// list rather than an error; only malformed JSON fails.
func (r *EncodeRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Texts json.RawMessage `json:"texts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Texts = []string{}
	if len(raw.Texts) == 0 {
		return nil
	}

	var texts []string
	if err := json.Unmarshal(raw.Texts, &texts); err != nil || texts == nil {
		return nil
	}
	r.Texts = texts
	return nil
}

// EncodeResult is the envelope written to standard output on success.
type EncodeResult struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// EncodeError is the envelope written to standard output on failure.
type EncodeError struct {
	Error string `json:"error"`
}
